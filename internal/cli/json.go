package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prjtool/prj/internal/registry"
)

// Global JSON output flag
var jsonOutput bool

// Response is the standard JSON envelope for all CLI output.
type Response struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
	Meta  *Meta       `json:"meta,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Meta contains metadata about the response.
type Meta struct {
	Count int `json:"count,omitempty"`
}

// projectView is the JSON shape of a project.
type projectView struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Company string `json:"company,omitempty"`
}

func viewOf(p registry.Project) projectView {
	return projectView{Name: p.Name, Path: p.Path, Company: p.Company}
}

func viewsOf(projects []registry.Project) []projectView {
	out := make([]projectView, 0, len(projects))
	for _, p := range projects {
		out = append(out, viewOf(p))
	}
	return out
}

func outputJSON(resp Response) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful JSON response.
func outputSuccess(data interface{}, meta *Meta) {
	outputJSON(Response{OK: true, Data: data, Meta: meta})
}

// outputError outputs an error JSON response.
func outputError(code, message, suggestion string) {
	outputJSON(Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
		},
	})
}

// handleErrorMsg reports an error in the active output mode. In JSON mode
// the envelope carries the failure and the command itself succeeds.
func handleErrorMsg(code, message, suggestion string) error {
	if jsonOutput {
		outputError(code, message, suggestion)
		return nil
	}
	return fmt.Errorf("%s", message)
}

// isJSONOutput returns true if JSON output is enabled.
func isJSONOutput() bool {
	return jsonOutput
}
