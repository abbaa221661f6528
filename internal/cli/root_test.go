package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadRegistryInitializesMissingFile(t *testing.T) {
	setupTest(t)
	prev := registryPathFlag
	t.Cleanup(func() { registryPathFlag = prev })
	registryPathFlag = filepath.Join(t.TempDir(), "nested", "registry.json")

	if err := loadRegistry(); err != nil {
		t.Fatalf("loadRegistry: %v", err)
	}

	if reg.Len() != 0 {
		t.Errorf("fresh registry has %d projects", reg.Len())
	}
	if _, err := os.Stat(registryPathFlag); err != nil {
		t.Errorf("registry file not initialized: %v", err)
	}
}

func TestExecuteReportsErrorsInHouseStyle(t *testing.T) {
	setupTest(t)
	prev := registryPathFlag
	t.Cleanup(func() {
		registryPathFlag = prev
		rootCmd.SetArgs([]string{})
	})
	registryPathFlag = filepath.Join(t.TempDir(), "registry.json")

	rootCmd.SetArgs([]string{"go", "ghost"})
	var err error
	stderr := captureStderr(t, func() {
		err = Execute()
	})

	if err == nil {
		t.Fatal("Execute should propagate the failure for the exit code")
	}
	if !strings.Contains(stderr, "not found") {
		t.Errorf("stderr %q missing the error message", stderr)
	}
	if !strings.Contains(stderr, "✗") {
		t.Errorf("stderr %q missing the error symbol", stderr)
	}
	if strings.Contains(stderr, "Error:") {
		t.Errorf("stderr %q still carries cobra's default prefix", stderr)
	}
}

func TestLoadRegistryCorruptFileKeptOnDisk(t *testing.T) {
	setupTest(t)
	prev := registryPathFlag
	t.Cleanup(func() { registryPathFlag = prev })
	registryPathFlag = filepath.Join(t.TempDir(), "registry.json")

	corrupt := []byte("{not json")
	if err := os.WriteFile(registryPathFlag, corrupt, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := loadRegistry(); err != nil {
		t.Fatalf("loadRegistry: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("fallback registry has %d projects", reg.Len())
	}

	// The corrupt document stays untouched until the next mutation.
	data, err := os.ReadFile(registryPathFlag)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(corrupt) {
		t.Error("corrupt registry was overwritten on load")
	}
}
