package cli

// Error codes for structured error responses. These are stable and can be
// relied on by scripts using --json.
const (
	ErrProjectNotFound  = "PROJECT_NOT_FOUND"
	ErrProjectAmbiguous = "PROJECT_AMBIGUOUS"
	ErrInvalidInput     = "INVALID_INPUT"
	ErrPathNotFound     = "PATH_NOT_FOUND"
	ErrRegistryIO       = "REGISTRY_IO"
	ErrEditorLaunch     = "EDITOR_LAUNCH_FAILED"
	ErrNotInteractive   = "NOT_INTERACTIVE"
)
