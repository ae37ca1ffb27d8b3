package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/mission-reporter/internal/types"
)

func TestBuildFields_AllKeys(t *testing.T) {
	mission := types.MissionRecord{
		ID:         "m1",
		Title:      "Pump check",
		Location:   "North wing",
		Date:       "2024-03-15",
		FinishDate: "2024-03-16",
		StartTime:  "08:00",
		FinishTime: "17:30",
		Notes:      "replaced seal",
	}
	profile := types.UserProfile{
		FullName:   "Alice Martin",
		Profession: "Field engineer",
		CNI:        "CNI-42",
		PPN:        "PPN-7",
	}

	fields := BuildFields(mission, profile)
	assert.Equal(t, map[string]string{
		"title":      "Pump check",
		"location":   "North wing",
		"date":       "2024-03-15",
		"finishDate": "2024-03-16",
		"startTime":  "08:00",
		"finishTime": "17:30",
		"notes":      "replaced seal",
		"fullName":   "Alice Martin",
		"profession": "Field engineer",
		"cni":        "CNI-42",
		"ppn":        "PPN-7",
	}, fields)
}

func TestBuildFields_DefaultsAndEmptyValues(t *testing.T) {
	mission := types.MissionRecord{Title: "Quick check", Date: "2024-03-15"}

	fields := BuildFields(mission, types.UserProfile{})

	// finishDate defaults to date; absent fields are empty strings, not missing keys.
	assert.Equal(t, "2024-03-15", fields["finishDate"])
	assert.Equal(t, "", fields["startTime"])
	assert.Equal(t, "", fields["fullName"])
	assert.Len(t, fields, 11)
}
