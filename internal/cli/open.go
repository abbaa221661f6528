package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/search"
	"github.com/prjtool/prj/internal/ui"
)

var openCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a project in your editor",
	Long: `Opens a project in the configured editor (see set-vscode-cmd).

An exact name opens directly. Otherwise the name is treated as a substring
of project names: one hit opens, several hits ask which one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := args[0]

		if p, ok := reg.Find(ref); ok {
			return openProject(p)
		}

		switch outcome := search.Select(nameMatches(ref)); outcome.Kind {
		case search.NoMatch:
			return handleErrorMsg(ErrProjectNotFound,
				fmt.Sprintf("project %q not found", ref),
				"Run 'prj list' to see registered projects")

		case search.SingleMatch:
			return openProject(outcome.Project)

		default:
			// Never auto-pick among several candidates.
			if !canPrompt() {
				if isJSONOutput() {
					outputError(ErrProjectAmbiguous,
						fmt.Sprintf("%q matches %d projects", ref, len(outcome.Candidates)), "")
					return nil
				}
				printMatches(outcome.Candidates)
				return fmt.Errorf("%q is ambiguous", ref)
			}
			p, chosen := promptChooseProject(
				fmt.Sprintf("%q matches %s:", ref, ui.Count(len(outcome.Candidates), "project", "projects")),
				outcome.Candidates,
			)
			if !chosen {
				return nil
			}
			return openProject(p)
		}
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
