package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/prjtool/prj/internal/paths"
	"github.com/prjtool/prj/internal/registry"
	"github.com/prjtool/prj/internal/ui"
)

// Seams for tests.
var (
	stdinIsTerminal  = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
	stdoutIsTerminal = func() bool { return isatty.IsTerminal(os.Stdout.Fd()) }
)

// canPrompt reports whether interactive prompting is appropriate.
func canPrompt() bool {
	if isJSONOutput() {
		return false
	}
	return stdinIsTerminal() && stdoutIsTerminal()
}

// promptForConfirm asks a yes/no question. Anything but y/yes declines.
var promptForConfirm = func(message string) bool {
	fmt.Printf("%s %s ", message, ui.Hint("[y/N]"))
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// promptChooseProject renders a numbered candidate list and reads a choice.
// An empty or invalid answer chooses nothing; that is a normal outcome, not
// an error.
var promptChooseProject = func(message string, candidates []registry.Project) (registry.Project, bool) {
	fmt.Println(message)
	home := homeDir()
	for i, p := range candidates {
		line := fmt.Sprintf("  %d) %s", i+1, ui.ProjectName(p.Name))
		if p.Company != "" {
			line += "  " + ui.Muted.Render("("+p.Company+")")
		}
		line += "  " + ui.Hint(paths.ShortenHome(p.Path, home))
		fmt.Println(line)
	}
	fmt.Printf("Choose %s: ", ui.Hint(fmt.Sprintf("[1-%d, empty to cancel]", len(candidates))))

	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(response)
	if response == "" {
		return registry.Project{}, false
	}
	n, err := strconv.Atoi(response)
	if err != nil || n < 1 || n > len(candidates) {
		fmt.Println(ui.Hint("invalid choice"))
		return registry.Project{}, false
	}
	return candidates[n-1], true
}
