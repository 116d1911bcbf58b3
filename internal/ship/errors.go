package ship

import "fmt"

// MissingFieldError reports a required derived field that could not be
// resolved from config or repository inspection.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s could not be resolved from config", e.Field)
}

// ExitError reports an external command that ran but exited non-zero.
type ExitError struct {
	CommandLine string
	Code        int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.CommandLine, e.Code)
}

// NotImplementedError reports a lifecycle method invoked on a plugin that
// does not override the abstract default.
type NotImplementedError struct {
	Op   string // lifecycle method: build, test, or ship
	Kind string // concrete plugin name
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s is not implemented by the %s plugin", e.Op, e.Kind)
}
