package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayout is the calendar-date form used by mission dates and ranges.
const dateLayout = "2006-01-02"

// DateRange is an inclusive calendar-date range. The end boundary covers the
// whole end day, so a mission dated exactly on End is inside the range.
type DateRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end" validate:"required,datetime=2006-01-02"`
}

// Validate validates the DateRange using the validator and checks ordering.
func (r *DateRange) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	start, end, err := r.Bounds()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return &RangeOrderError{Start: r.Start, End: r.End}
	}
	return nil
}

// Bounds returns the instant bounds of the range: midnight of the start day
// and 23:59:59.999 of the end day.
func (r *DateRange) Bounds() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(dateLayout, r.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = end.Add(24*time.Hour - time.Millisecond)
	return start, end, nil
}

// Contains reports whether the given calendar date falls inside the range.
func (r *DateRange) Contains(date string) (bool, error) {
	start, end, err := r.Bounds()
	if err != nil {
		return false, err
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false, err
	}
	return !day.Before(start) && !day.After(end), nil
}

// RangeOrderError reports a range whose end precedes its start.
type RangeOrderError struct {
	Start string
	End   string
}

func (e *RangeOrderError) Error() string {
	return "date range end " + e.End + " precedes start " + e.Start
}
