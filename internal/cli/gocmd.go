package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/search"
)

var goCmd = &cobra.Command{
	Use:   "go <name>",
	Short: "Print a project's path",
	Long: `Prints the bare path of a project to standard output, for shell
integration:

  cd "$(prj go api)"

Or add a function to your ~/.zshrc:

  p() { cd "$(prj go "$1")" }

Unknown or ambiguous names report on standard error and exit non-zero, so
the surrounding cd fails instead of changing to the wrong place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := args[0]

		if p, ok := reg.Find(ref); ok {
			fmt.Println(p.Path)
			return nil
		}

		// No prompting here: stdout must stay a bare path.
		switch outcome := search.Select(nameMatches(ref)); outcome.Kind {
		case search.SingleMatch:
			fmt.Println(outcome.Project.Path)
			return nil
		case search.MultipleMatches:
			names := make([]string, 0, len(outcome.Candidates))
			for _, p := range outcome.Candidates {
				names = append(names, p.Name)
			}
			return fmt.Errorf("%q is ambiguous: %s", ref, strings.Join(names, ", "))
		default:
			return fmt.Errorf("project %q not found", ref)
		}
	},
}

func init() {
	rootCmd.AddCommand(goCmd)
}
