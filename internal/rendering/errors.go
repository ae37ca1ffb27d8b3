// Package rendering turns template archives and field mappings into finished documents.
package rendering

import "fmt"

// ArchiveError represents template bytes that cannot be opened as a valid
// archive container. Callers treat this as a corrupt upload and retry with
// the embedded last-resort template.
type ArchiveError struct {
	Message string
	Cause   error
}

func (e *ArchiveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("archive error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("archive error: %s", e.Message)
}

func (e *ArchiveError) Unwrap() error {
	return e.Cause
}

// RenderError represents a directive-engine failure during a substitution pass.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
