package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prjtool/prj/internal/atomicfile"
)

// Persisted document layout. The company index is written alongside the
// project list for compatibility, but the project list is the source of
// truth: Load rebuilds the index from it.
type persistedRegistry struct {
	Projects         []persistedProject  `json:"projects"`
	Companies        map[string][]string `json:"companies"`
	VSCodeCommand    string              `json:"vscodeCommand"`
	ProjectsBasePath string              `json:"projectsBasePath"`
}

type persistedProject struct {
	Name    string  `json:"name"`
	Path    string  `json:"path"`
	Company *string `json:"company"`
}

// DefaultPath returns the default registry file location,
// ~/.config/prj/registry.json. The PRJ_REGISTRY environment variable
// overrides it.
func DefaultPath() string {
	if env := os.Getenv("PRJ_REGISTRY"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "prj", "registry.json")
}

// Load reads the registry document at path. A missing file surfaces as an
// fs.ErrNotExist-wrapped error so callers can initialize defaults; any other
// error means the file exists but could not be used.
func Load(path, home string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}

	var doc persistedRegistry
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}

	r := New(home)
	if doc.VSCodeCommand != "" {
		r.VSCodeCommand = doc.VSCodeCommand
	}
	if doc.ProjectsBasePath != "" {
		r.ProjectsBasePath = doc.ProjectsBasePath
	}
	for _, p := range doc.Projects {
		if p.Name == "" {
			continue
		}
		company := ""
		if p.Company != nil {
			company = *p.Company
		}
		r.Upsert(p.Name, p.Path, company)
	}
	return r, nil
}

// Save writes the whole registry document to path atomically. Every mutating
// command rewrites the full document, so a failed write leaves the previous
// file intact.
func Save(path string, r *Registry) error {
	doc := persistedRegistry{
		Projects:         make([]persistedProject, 0, len(r.projects)),
		Companies:        make(map[string][]string, len(r.companies)),
		VSCodeCommand:    r.VSCodeCommand,
		ProjectsBasePath: r.ProjectsBasePath,
	}
	for _, p := range r.projects {
		pp := persistedProject{Name: p.Name, Path: p.Path}
		if p.Company != "" {
			company := p.Company
			pp.Company = &company
		}
		doc.Projects = append(doc.Projects, pp)
	}
	for company, names := range r.companies {
		doc.Companies[company] = append([]string(nil), names...)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write registry %s: %w", path, err)
	}
	return nil
}
