// Package export drives the renderer over mission collections and packs the
// results into a single downloadable archive.
package export

import (
	"github.com/jonathan/mission-reporter/internal/types"
)

// BuildFields merges a mission and the reporter profile into the flat
// fixed-key mapping the renderer consumes. The renderer knows nothing about
// mission or profile shapes; this mapping is the only interface between them.
// Absent fields map to empty strings.
func BuildFields(mission types.MissionRecord, profile types.UserProfile) map[string]string {
	return map[string]string{
		"title":      mission.Title,
		"location":   mission.Location,
		"date":       mission.Date,
		"finishDate": mission.EffectiveFinishDate(),
		"startTime":  mission.StartTime,
		"finishTime": mission.FinishTime,
		"notes":      mission.Notes,
		"fullName":   profile.FullName,
		"profession": profile.Profession,
		"cni":        profile.CNI,
		"ppn":        profile.PPN,
	}
}
