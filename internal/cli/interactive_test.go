package cli

import (
	"strings"
	"testing"

	"github.com/prjtool/prj/internal/registry"
)

func TestInteractiveNeedsTerminal(t *testing.T) {
	setupTest(t)
	seed(t, registry.Project{Name: "api", Path: "/code/api"})

	err := runInteractive("")
	if err == nil || !strings.Contains(err.Error(), "needs a terminal") {
		t.Fatalf("err = %v, want terminal requirement", err)
	}
}

func TestInteractiveEmptyRegistry(t *testing.T) {
	setupTest(t)
	interactiveTerminal()

	out := captureStdout(t, func() {
		if err := runInteractive(""); err != nil {
			t.Fatalf("interactive: %v", err)
		}
	})

	if !strings.Contains(out, "No projects registered") {
		t.Errorf("output %q missing empty-registry hint", out)
	}
}

func TestInteractiveEmptyCompanyPool(t *testing.T) {
	setupTest(t)
	interactiveTerminal()
	seed(t, registry.Project{Name: "api", Path: "/code/api", Company: "acme"})

	out := captureStdout(t, func() {
		if err := runInteractive("initech"); err != nil {
			t.Fatalf("interactive: %v", err)
		}
	})

	if !strings.Contains(out, `No projects for company "initech"`) {
		t.Errorf("output %q missing empty-pool message", out)
	}
}
