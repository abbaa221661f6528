package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/paths"
	"github.com/prjtool/prj/internal/ui"
)

var setVSCodeCmdCmd = &cobra.Command{
	Use:   "set-vscode-cmd <command>",
	Short: "Set the editor launch command",
	Long: `Sets the command used to open projects. The project path is passed
as the sole argument; commands containing spaces run through the shell.

Examples:
  prj set-vscode-cmd code
  prj set-vscode-cmd "open -a Cursor"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		command := strings.TrimSpace(args[0])
		if command == "" {
			return handleErrorMsg(ErrInvalidInput, "editor command must not be empty", "")
		}

		reg.VSCodeCommand = command
		if err := saveRegistry(); err != nil {
			return err
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"vscodeCommand": command}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Editor command set to %q", command))
		return nil
	},
}

var setBasePathCmd = &cobra.Command{
	Use:   "set-base-path <path>",
	Short: "Set the default directory scanned for projects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := paths.Normalize(args[0], workDir(), homeDir())

		// Unlike add, a missing base path is rejected outright.
		if !pathExists(path) {
			return handleErrorMsg(ErrPathNotFound,
				fmt.Sprintf("directory does not exist: %s", path), "")
		}

		reg.ProjectsBasePath = path
		if err := saveRegistry(); err != nil {
			return err
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"projectsBasePath": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Base path set to %s", ui.Hint(paths.ShortenHome(path, homeDir()))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setVSCodeCmdCmd)
	rootCmd.AddCommand(setBasePathCmd)
}
