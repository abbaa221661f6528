package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/ui"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List company tags in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		companies := reg.Companies()

		if isJSONOutput() {
			type companyView struct {
				Name     string `json:"name"`
				Projects int    `json:"projects"`
			}
			views := make([]companyView, 0, len(companies))
			for _, c := range companies {
				views = append(views, companyView{Name: c, Projects: len(reg.ProjectsForCompany(c))})
			}
			outputSuccess(views, &Meta{Count: len(views)})
			return nil
		}

		if len(companies) == 0 {
			fmt.Println("No company tags in use.")
			return nil
		}
		for _, c := range companies {
			n := len(reg.ProjectsForCompany(c))
			fmt.Printf("%s %s\n", ui.ProjectName(c), ui.Hint(ui.Count(n, "project", "projects")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(companiesCmd)
}
