// Package scan discovers project roots under a base directory.
//
// A directory counts as a project root when it contains one of a fixed set of
// indicator entries (a .git directory, a build manifest, and so on). A
// .project.yaml manifest inside the directory may override the suggested
// name and company and provide a description; otherwise a description is
// pulled from the README when one exists.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// ManifestName is the per-project override file read during scanning.
const ManifestName = ".project.yaml"

// Candidate is a directory that looks like a project root.
type Candidate struct {
	Name        string
	Path        string
	Company     string
	Description string
}

// Manifest is the optional .project.yaml inside a project directory.
type Manifest struct {
	Name        string `yaml:"name"`
	Company     string `yaml:"company"`
	Description string `yaml:"description"`
}

// indicatorEntries mark a directory as a project root.
var indicatorEntries = []string{
	".git",
	"go.mod",
	"package.json",
	"Cargo.toml",
	"pyproject.toml",
	"Makefile",
	ManifestName,
}

// skipDirs are never offered as candidates.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	"__pycache__":  {},
	".venv":        {},
	"venv":         {},
}

var safeName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Scan inspects the immediate subdirectories of dir and returns the ones
// that look like project roots, in directory listing order.
func Scan(dir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var out []Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, skip := skipDirs[name]; skip {
			continue
		}

		path := filepath.Join(dir, name)
		if !IsProjectDir(path) {
			continue
		}
		out = append(out, newCandidate(name, path))
	}
	return out, nil
}

// IsProjectDir reports whether dir contains one of the indicator entries.
func IsProjectDir(dir string) bool {
	for _, indicator := range indicatorEntries {
		if _, err := os.Stat(filepath.Join(dir, indicator)); err == nil {
			return true
		}
	}
	return false
}

func newCandidate(name, path string) Candidate {
	c := Candidate{Name: suggestName(name), Path: path}

	if m, err := readManifest(path); err == nil && m != nil {
		if m.Name != "" {
			c.Name = m.Name
		}
		c.Company = m.Company
		c.Description = m.Description
	}
	if c.Description == "" {
		c.Description = readmeDescription(path)
	}
	return c
}

// suggestName turns a directory name into a registry-friendly key. Plain
// names pass through untouched; anything with spaces or exotic characters is
// slugified.
func suggestName(dirName string) string {
	if safeName.MatchString(dirName) {
		return dirName
	}
	if s := slug.Make(dirName); s != "" {
		return s
	}
	return dirName
}

func readManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	m.Name = strings.TrimSpace(m.Name)
	m.Company = strings.TrimSpace(m.Company)
	m.Description = strings.TrimSpace(m.Description)
	return &m, nil
}
