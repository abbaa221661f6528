package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prjtool/prj/internal/paths"
	"github.com/prjtool/prj/internal/scan"
	"github.com/prjtool/prj/internal/ui"
)

var (
	scanCompany string
	scanYes     bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Find projects under a directory and register them",
	Long: `Scans the immediate subdirectories of a directory (default: the
configured base path, see set-base-path) for things that look like project
roots: a .git directory, go.mod, package.json, Cargo.toml, pyproject.toml,
a Makefile, or a .project.yaml manifest.

A .project.yaml inside a project may override the suggested name and
company:

  name: billing
  company: acme
  description: invoicing service

Each candidate is confirmed before registering; --yes registers all of
them. With --json candidates are reported without registering anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := reg.ProjectsBasePath
		if len(args) == 1 {
			dir = paths.Normalize(args[0], workDir(), homeDir())
		}

		candidates, err := scan.Scan(dir)
		if err != nil {
			return handleErrorMsg(ErrPathNotFound, err.Error(), "")
		}

		registered := make(map[string]string, reg.Len()) // path -> name
		for _, p := range reg.Projects() {
			registered[p.Path] = p.Name
		}

		if isJSONOutput() {
			type candidateView struct {
				Name        string `json:"name"`
				Path        string `json:"path"`
				Company     string `json:"company,omitempty"`
				Description string `json:"description,omitempty"`
				Registered  bool   `json:"registered"`
			}
			views := make([]candidateView, 0, len(candidates))
			for _, c := range candidates {
				_, known := registered[c.Path]
				views = append(views, candidateView{
					Name:        c.Name,
					Path:        c.Path,
					Company:     c.Company,
					Description: c.Description,
					Registered:  known,
				})
			}
			outputSuccess(views, &Meta{Count: len(views)})
			return nil
		}

		if len(candidates) == 0 {
			fmt.Printf("Nothing that looks like a project under %s.\n", ui.Hint(paths.ShortenHome(dir, homeDir())))
			return nil
		}

		added, listedOnly := 0, 0
		for _, c := range candidates {
			if name, known := registered[c.Path]; known {
				fmt.Println(ui.Hint(fmt.Sprintf("  %s already registered as %q", paths.ShortenHome(c.Path, homeDir()), name)))
				continue
			}

			company := scanCompany
			if company == "" {
				company = c.Company
			}

			line := fmt.Sprintf("%s %s", ui.ProjectName(c.Name), ui.Hint(paths.ShortenHome(c.Path, homeDir())))
			if company != "" {
				line += " " + ui.Muted.Render("("+company+")")
			}
			if c.Description != "" {
				line += "\n    " + ui.Muted.Render(c.Description)
			}
			fmt.Println(line)

			switch {
			case scanYes:
			case canPrompt():
				if !promptForConfirm("  Register?") {
					continue
				}
			default:
				// Listing only; registering needs a terminal or --yes.
				listedOnly++
				continue
			}
			reg.Upsert(c.Name, c.Path, company)
			added++
		}

		if added > 0 {
			if err := saveRegistry(); err != nil {
				return err
			}
		}
		if listedOnly > 0 {
			fmt.Println(ui.Info(fmt.Sprintf("%s listed; run again with --yes to register",
				ui.Count(listedOnly, "candidate", "candidates"))))
			return nil
		}
		fmt.Println(ui.Successf("Registered %s", ui.Count(added, "project", "projects")))
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanCompany, "company", "", "Company tag for registered projects (overrides manifests)")
	scanCmd.Flags().BoolVarP(&scanYes, "yes", "y", false, "Register every candidate without prompting")
	rootCmd.AddCommand(scanCmd)
}
