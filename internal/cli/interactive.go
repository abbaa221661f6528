package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/search"
	"github.com/prjtool/prj/internal/tui"
	"github.com/prjtool/prj/internal/ui"
)

var interactiveCompany string

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Pick a project with live fuzzy search",
	Long: `Opens the interactive picker: type to narrow projects by fuzzy
name match, enter opens the selection, tab cycles company filters, esc
cancels. Running prj with no arguments does the same.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(interactiveCompany)
	},
}

func runInteractive(company string) error {
	if !canPrompt() {
		return handleErrorMsg(ErrNotInteractive,
			"interactive mode needs a terminal",
			"Use 'prj search <query>' or 'prj list' instead")
	}

	pool := search.FilterCompany(reg.Projects(), company)
	if len(pool) == 0 {
		if company != "" {
			fmt.Printf("No projects for company %q.\n", company)
		} else {
			fmt.Println("No projects registered. Add one with: prj add <name> <path>")
		}
		return nil
	}

	// With a fixed --company there is nothing for tab to cycle through.
	var companies []string
	if company == "" {
		companies = reg.Companies()
	}

	p, chosen, err := tui.Run(pool, companies, homeDir())
	if err != nil {
		return err
	}
	if !chosen {
		// Abandoning the picker is a normal outcome and never launches
		// the editor.
		fmt.Println(ui.Hint("cancelled"))
		return nil
	}
	return openProject(p)
}

func init() {
	interactiveCmd.Flags().StringVar(&interactiveCompany, "company", "", "Only pick among projects with this company tag")
	rootCmd.AddCommand(interactiveCmd)
}
