// Package registry holds the in-memory project registry: an ordered list of
// projects, a company index derived from their tags, and the two persisted
// settings (editor command and scan base path).
//
// The Registry owns its records. All mutation goes through Upsert and Remove,
// which keep the company index consistent:
//   - every tagged project appears under its company
//   - no company entry is ever empty
//   - no company entry contains duplicate names
package registry

import "strings"

// DefaultVSCodeCommand is the editor command used when none is configured.
const DefaultVSCodeCommand = "code"

// Project is a named, path-addressed unit of work with an optional company tag.
// Identity is Name; Path is always absolute.
type Project struct {
	Name    string
	Path    string
	Company string
}

// Registry is the aggregate of all projects plus settings.
// It is not safe for concurrent use; a process loads it, mutates it from a
// single command invocation, and saves it back.
type Registry struct {
	projects  []Project
	companies map[string][]string

	VSCodeCommand    string
	ProjectsBasePath string
}

// New returns an empty registry with the given defaults applied.
func New(home string) *Registry {
	return &Registry{
		companies:        make(map[string][]string),
		VSCodeCommand:    DefaultVSCodeCommand,
		ProjectsBasePath: home,
	}
}

// Upsert adds a project or replaces the path and company of an existing one.
// It reports whether a new project was created (callers use this only for
// messaging, never for control flow).
func (r *Registry) Upsert(name, path, company string) (created bool) {
	name = strings.TrimSpace(name)
	company = strings.TrimSpace(company)

	for i := range r.projects {
		if r.projects[i].Name != name {
			continue
		}
		old := r.projects[i].Company
		r.projects[i].Path = path
		r.projects[i].Company = company
		if old != company {
			if old != "" {
				r.dropFromCompany(old, name)
			}
			if company != "" {
				r.addToCompany(company, name)
			}
		}
		return false
	}

	r.projects = append(r.projects, Project{Name: name, Path: path, Company: company})
	if company != "" {
		r.addToCompany(company, name)
	}
	return true
}

// Remove deletes the project with the given name and reports whether anything
// was removed. Removing an unknown name is a no-op.
func (r *Registry) Remove(name string) bool {
	for i := range r.projects {
		if r.projects[i].Name != name {
			continue
		}
		if c := r.projects[i].Company; c != "" {
			r.dropFromCompany(c, name)
		}
		r.projects = append(r.projects[:i], r.projects[i+1:]...)
		return true
	}
	return false
}

// Find returns the project with the given name.
func (r *Registry) Find(name string) (Project, bool) {
	for _, p := range r.projects {
		if p.Name == name {
			return p, true
		}
	}
	return Project{}, false
}

// Projects returns all projects in insertion order. The returned slice is a
// copy; mutating it does not affect the registry.
func (r *Registry) Projects() []Project {
	out := make([]Project, len(r.projects))
	copy(out, r.projects)
	return out
}

// ProjectsForCompany returns the projects tagged with the given company,
// preserving overall registry order.
func (r *Registry) ProjectsForCompany(company string) []Project {
	var out []Project
	for _, p := range r.projects {
		if p.Company == company {
			out = append(out, p)
		}
	}
	return out
}

// Companies returns the company names currently present, in the order their
// first project was inserted.
func (r *Registry) Companies() []string {
	seen := make(map[string]struct{}, len(r.companies))
	var out []string
	for _, p := range r.projects {
		if p.Company == "" {
			continue
		}
		if _, ok := seen[p.Company]; ok {
			continue
		}
		seen[p.Company] = struct{}{}
		out = append(out, p.Company)
	}
	return out
}

// Len returns the number of registered projects.
func (r *Registry) Len() int {
	return len(r.projects)
}

func (r *Registry) addToCompany(company, name string) {
	if r.companies == nil {
		r.companies = make(map[string][]string)
	}
	for _, n := range r.companies[company] {
		if n == name {
			return
		}
	}
	r.companies[company] = append(r.companies[company], name)
}

func (r *Registry) dropFromCompany(company, name string) {
	names := r.companies[company]
	for i, n := range names {
		if n == name {
			names = append(names[:i], names[i+1:]...)
			break
		}
	}
	if len(names) == 0 {
		delete(r.companies, company)
		return
	}
	r.companies[company] = names
}
