package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/paths"
	"github.com/prjtool/prj/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a project's details and README",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := reg.Find(args[0])
		if !ok {
			return handleErrorMsg(ErrProjectNotFound,
				fmt.Sprintf("project %q not found", args[0]),
				"Run 'prj list' to see registered projects")
		}

		readme, _ := os.ReadFile(filepath.Join(p.Path, "README.md"))

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"project":    viewOf(p),
				"has_readme": len(readme) > 0,
			}, nil)
			return nil
		}

		fmt.Println(ui.Header(p.Name))
		if p.Company != "" {
			fmt.Printf("company: %s\n", p.Company)
		}
		fmt.Printf("path: %s\n", ui.Hint(paths.ShortenHome(p.Path, homeDir())))

		if len(readme) == 0 {
			fmt.Println(ui.Hint("(no README.md)"))
			return nil
		}

		display := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(string(readme), display.TermWidth)
		if err != nil {
			// Fall back to the raw text rather than failing the command.
			fmt.Println(string(readme))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
