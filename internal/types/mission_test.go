package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionRecord_Validate_Valid(t *testing.T) {
	m := MissionRecord{
		ID:    "m1",
		Title: "Site inspection",
		Date:  "2024-03-15",
	}
	assert.NoError(t, m.Validate())
}

func TestMissionRecord_Validate_MissingTitle(t *testing.T) {
	m := MissionRecord{ID: "m1", Date: "2024-03-15"}
	assert.Error(t, m.Validate())
}

func TestMissionRecord_Validate_BadDate(t *testing.T) {
	m := MissionRecord{ID: "m1", Title: "x", Date: "15/03/2024"}
	assert.Error(t, m.Validate())
}

func TestMissionRecord_EffectiveFinishDate(t *testing.T) {
	m := MissionRecord{Date: "2024-03-15"}
	assert.Equal(t, "2024-03-15", m.EffectiveFinishDate())

	m.FinishDate = "2024-03-17"
	assert.Equal(t, "2024-03-17", m.EffectiveFinishDate())
}

func TestDateRange_Contains(t *testing.T) {
	rng := DateRange{Start: "2024-01-02", End: "2024-01-04"}

	inside, err := rng.Contains("2024-01-03")
	require.NoError(t, err)
	assert.True(t, inside)

	// End day is inclusive.
	onEnd, err := rng.Contains("2024-01-04")
	require.NoError(t, err)
	assert.True(t, onEnd)

	after, err := rng.Contains("2024-01-05")
	require.NoError(t, err)
	assert.False(t, after)

	before, err := rng.Contains("2024-01-01")
	require.NoError(t, err)
	assert.False(t, before)
}

func TestDateRange_Validate_Reversed(t *testing.T) {
	rng := DateRange{Start: "2024-01-04", End: "2024-01-02"}
	err := rng.Validate()
	require.Error(t, err)
	var orderErr *RangeOrderError
	assert.ErrorAs(t, err, &orderErr)
}

func TestDateRange_Validate_BadFormat(t *testing.T) {
	rng := DateRange{Start: "Jan 2", End: "2024-01-02"}
	assert.Error(t, rng.Validate())
}
