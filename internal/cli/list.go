package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/paths"
	"github.com/prjtool/prj/internal/search"
	"github.com/prjtool/prj/internal/ui"
)

var listCompany string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered projects",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects := search.FilterCompany(reg.Projects(), listCompany)

		if isJSONOutput() {
			outputSuccess(viewsOf(projects), &Meta{Count: len(projects)})
			return nil
		}

		if len(projects) == 0 {
			if listCompany != "" {
				fmt.Printf("No projects for company %q.\n", listCompany)
			} else {
				fmt.Println("No projects registered. Add one with: prj add <name> <path>")
			}
			return nil
		}

		// Plain cells; styling would skew the width bookkeeping.
		home := homeDir()
		tbl := ui.NewTable(3)
		for _, p := range projects {
			tbl.AddRow(p.Name, p.Company, paths.ShortenHome(p.Path, home))
		}
		fmt.Print(tbl.String())
		fmt.Println(ui.Hint(ui.Count(len(projects), "project", "projects")))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCompany, "company", "", "Only list projects with this company tag")
	rootCmd.AddCommand(listCmd)
}
