package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/paths"
	"github.com/prjtool/prj/internal/ui"
)

var (
	addCompany string
	addYes     bool
)

var addCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "Register a project",
	Long: `Registers a project under a name. The path may be absolute,
home-relative (~/code/x) or relative to the current directory; it is stored
in canonical absolute form.

Re-adding an existing name updates its path and company in place.

Examples:
  prj add api ~/code/api
  prj add billing ../billing --company acme`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return handleErrorMsg(ErrInvalidInput, "project name must not be empty", "")
		}

		path := paths.Normalize(args[1], workDir(), homeDir())

		// A missing path is a warning, not a blocker.
		if !pathExists(path) {
			if canPrompt() && !addYes {
				fmt.Println(ui.Warningf("path does not exist: %s", path))
				if !promptForConfirm("Register anyway?") {
					fmt.Println("Cancelled.")
					return nil
				}
			} else if !isJSONOutput() {
				fmt.Println(ui.Warningf("path does not exist: %s", path))
			}
		}

		created := reg.Upsert(name, path, addCompany)
		if err := saveRegistry(); err != nil {
			return err
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"project":     projectView{Name: name, Path: path, Company: addCompany},
				"created":     created,
				"path_exists": pathExists(path),
			}, nil)
			return nil
		}

		verb := "Added"
		if !created {
			verb = "Updated"
		}
		msg := fmt.Sprintf("%s %s %s", verb, ui.ProjectName(name), ui.Hint(paths.ShortenHome(path, homeDir())))
		if addCompany != "" {
			msg += " " + ui.Muted.Render("("+addCompany+")")
		}
		fmt.Println(ui.Success(msg))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addCompany, "company", "", "Company tag for the project")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Skip the missing-path confirmation")
	rootCmd.AddCommand(addCmd)
}
