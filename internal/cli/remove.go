package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/ui"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a project from the registry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		removed := reg.Remove(name)
		if removed {
			if err := saveRegistry(); err != nil {
				return err
			}
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"name":    name,
				"removed": removed,
			}, nil)
			return nil
		}

		if !removed {
			// Not an error: removing an unknown name is a reported no-op.
			fmt.Println(ui.Warningf("project %q is not registered", name))
			return nil
		}
		fmt.Println(ui.Successf("Removed %s", ui.ProjectName(name)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
