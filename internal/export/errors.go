package export

import "fmt"

// EmptySelectionError reports that no mission fell inside the requested
// date range. No archive is produced.
type EmptySelectionError struct {
	Start string
	End   string
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("no missions between %s and %s", e.Start, e.End)
}

// NoOutputError reports that every selected mission failed to render.
type NoOutputError struct {
	Attempted int
}

func (e *NoOutputError) Error() string {
	return fmt.Sprintf("all %d selected missions failed to render", e.Attempted)
}
