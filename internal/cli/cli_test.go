package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/prjtool/prj/internal/registry"
)

// setupTest swaps every seam for a deterministic stand-in and restores the
// originals on cleanup. Tests run against a fresh in-memory registry backed
// by a file under t.TempDir(); prompts fail the test unless a test installs
// its own stub.
func setupTest(t *testing.T) {
	t.Helper()

	prevReg, prevPath := reg, regPath
	prevJSON := jsonOutput
	prevStdin, prevStdout := stdinIsTerminal, stdoutIsTerminal
	prevConfirm, prevChoose := promptForConfirm, promptChooseProject
	prevStat, prevLaunch := statPath, launchEditor
	prevAddCompany, prevAddYes := addCompany, addYes
	prevSearchCompany := searchCompany
	prevScanCompany, prevScanYes := scanCompany, scanYes
	t.Cleanup(func() {
		reg, regPath = prevReg, prevPath
		jsonOutput = prevJSON
		stdinIsTerminal, stdoutIsTerminal = prevStdin, prevStdout
		promptForConfirm, promptChooseProject = prevConfirm, prevChoose
		statPath, launchEditor = prevStat, prevLaunch
		addCompany, addYes = prevAddCompany, prevAddYes
		searchCompany = prevSearchCompany
		scanCompany, scanYes = prevScanCompany, prevScanYes
	})

	reg = registry.New(homeDir())
	regPath = filepath.Join(t.TempDir(), "registry.json")
	jsonOutput = false
	addCompany, addYes = "", false
	searchCompany = ""
	scanCompany, scanYes = "", false
	stdinIsTerminal = func() bool { return false }
	stdoutIsTerminal = func() bool { return false }
	promptForConfirm = func(message string) bool {
		t.Fatalf("unexpected confirm prompt: %s", message)
		return false
	}
	promptChooseProject = func(message string, candidates []registry.Project) (registry.Project, bool) {
		t.Fatalf("unexpected choice prompt: %s", message)
		return registry.Project{}, false
	}
	statPath = func(string) (os.FileInfo, error) { return nil, nil }
	launchEditor = func(command, path string) error { return nil }
}

// interactiveTerminal makes canPrompt() return true.
func interactiveTerminal() {
	stdinIsTerminal = func() bool { return true }
	stdoutIsTerminal = func() bool { return true }
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	prev := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = prev }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	return string(out)
}

// captureStderr mirrors captureStdout for error reporting.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	prev := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = prev }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	return string(out)
}

func seed(t *testing.T, entries ...registry.Project) {
	t.Helper()
	for _, p := range entries {
		reg.Upsert(p.Name, p.Path, p.Company)
	}
}
