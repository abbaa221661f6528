// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/registry"
	"github.com/prjtool/prj/internal/ui"
)

var (
	// Global flags
	registryPathFlag string
	verbose          bool

	// Resolved per invocation
	regPath string
	reg     *registry.Registry

	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "prj",
	Short: "prj - a personal registry of local projects",
	Long: `prj keeps a registry of your local projects (name, path, optional
company tag) and gets you into them fast: fuzzy-search, pick, and the
project opens in your editor.

Running prj with no arguments starts the interactive picker.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}

		// Commands that never touch the registry.
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		return loadRegistry()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive("")
	},
}

// loadRegistry resolves the registry path and loads (or initializes) the
// document. A corrupt file is reported and replaced by an in-memory empty
// registry; it is not overwritten on disk until the next successful mutation.
func loadRegistry() error {
	regPath = registry.DefaultPath()
	if registryPathFlag != "" {
		regPath = registryPathFlag
	}

	home := homeDir()
	r, err := registry.Load(regPath, home)
	switch {
	case err == nil:
		reg = r
		logger.Debug("loaded registry", "path", regPath, "projects", reg.Len())
	case errors.Is(err, fs.ErrNotExist):
		reg = registry.New(home)
		if saveErr := registry.Save(regPath, reg); saveErr != nil {
			return fmt.Errorf("initialize registry: %w", saveErr)
		}
		logger.Debug("initialized registry", "path", regPath)
	default:
		fmt.Fprintln(os.Stderr, ui.Warningf("%v (continuing with an empty registry)", err))
		reg = registry.New(home)
	}
	return nil
}

// saveRegistry persists the registry after a mutation. Every mutating
// command calls this before returning.
func saveRegistry() error {
	if err := registry.Save(regPath, reg); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	logger.Debug("saved registry", "path", regPath, "projects", reg.Len())
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func workDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// Execute runs the CLI. Errors are reported here in the house style rather
// than through cobra's default "Error:" prefix.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&registryPathFlag, "registry", "", "Path to the registry file (default ~/.config/prj/registry.json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
