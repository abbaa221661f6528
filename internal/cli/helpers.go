package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/prjtool/prj/internal/editor"
	"github.com/prjtool/prj/internal/paths"
	"github.com/prjtool/prj/internal/registry"
	"github.com/prjtool/prj/internal/ui"
)

// Seams for tests; add and set-base-path only probe existence.
var (
	statPath     = os.Stat
	launchEditor = editor.Launch
)

func pathExists(path string) bool {
	_, err := statPath(path)
	return err == nil
}

// nameMatches returns the projects whose name contains ref,
// case-insensitively, in registry order.
func nameMatches(ref string) []registry.Project {
	q := strings.ToLower(ref)
	var out []registry.Project
	for _, p := range reg.Projects() {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// openProject launches the configured editor on the project path. Launch
// failures never touch the persisted registry.
func openProject(p registry.Project) error {
	logger.Debug("launching editor", "command", reg.VSCodeCommand, "path", p.Path)
	if err := launchEditor(reg.VSCodeCommand, p.Path); err != nil {
		return handleErrorMsg(ErrEditorLaunch, err.Error(),
			"Set the editor command with: prj set-vscode-cmd <command>")
	}
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"opened": viewOf(p),
			"editor": reg.VSCodeCommand,
		}, nil)
		return nil
	}
	fmt.Printf("Opening %s %s\n", ui.ProjectName(p.Name), ui.Hint(paths.ShortenHome(p.Path, homeDir())))
	return nil
}
