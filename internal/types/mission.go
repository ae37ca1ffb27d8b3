// Package types provides type definitions for structured data used throughout the mission-reporter system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// MissionRecord represents one time-boxed work event recorded in the field.
// Dates are calendar dates in "2006-01-02" form with no time component.
// Records are never mutated by rendering.
type MissionRecord struct {
	ID         string    `json:"id"`
	Title      string    `json:"title" validate:"required,min=1"`
	Location   string    `json:"location"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	FinishDate string    `json:"finish_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime  string    `json:"start_time,omitempty"`
	FinishTime string    `json:"finish_time,omitempty"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate validates the MissionRecord using the validator.
func (m *MissionRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// EffectiveFinishDate returns FinishDate, defaulting to Date when absent.
func (m *MissionRecord) EffectiveFinishDate() string {
	if m.FinishDate == "" {
		return m.Date
	}
	return m.FinishDate
}
