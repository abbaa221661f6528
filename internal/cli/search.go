package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/paths"
	"github.com/prjtool/prj/internal/registry"
	"github.com/prjtool/prj/internal/search"
	"github.com/prjtool/prj/internal/ui"
)

var searchCompany string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search projects and open the result",
	Long: `Searches name, path, and company for the query (case-insensitive
substring, results in registry order).

A single hit asks for confirmation before opening; multiple hits present a
numbered choice. With --json the matches are printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		pool := search.FilterCompany(reg.Projects(), searchCompany)
		matches := search.FilterSubstring(pool, query)

		if isJSONOutput() {
			outputSuccess(viewsOf(matches), &Meta{Count: len(matches)})
			return nil
		}

		switch outcome := search.Select(matches); outcome.Kind {
		case search.NoMatch:
			fmt.Printf("No projects match %q.\n", query)
			return nil

		case search.SingleMatch:
			p := outcome.Project
			if !canPrompt() {
				printMatches(matches)
				return nil
			}
			prompt := fmt.Sprintf("Open %s %s?", ui.ProjectName(p.Name), ui.Hint(paths.ShortenHome(p.Path, homeDir())))
			if !promptForConfirm(prompt) {
				return nil
			}
			return openProject(p)

		default: // MultipleMatches: an explicit choice is required.
			if !canPrompt() {
				printMatches(matches)
				return nil
			}
			p, chosen := promptChooseProject(
				fmt.Sprintf("%s match %q:", ui.Count(len(matches), "project", "projects"), query),
				outcome.Candidates,
			)
			if !chosen {
				return nil
			}
			return openProject(p)
		}
	},
}

// printMatches lists matches without prompting (non-TTY output).
func printMatches(matches []registry.Project) {
	home := homeDir()
	tbl := ui.NewTable(3)
	for _, p := range matches {
		tbl.AddRow(p.Name, p.Company, paths.ShortenHome(p.Path, home))
	}
	fmt.Print(tbl.String())
}

func init() {
	searchCmd.Flags().StringVar(&searchCompany, "company", "", "Restrict the search to this company tag")
	rootCmd.AddCommand(searchCmd)
}
