package export

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/jonathan/mission-reporter/internal/rendering"
	"github.com/jonathan/mission-reporter/internal/templates"
	"github.com/jonathan/mission-reporter/internal/types"
)

// ArchiveContentType is the MIME type of the batch export archive.
const ArchiveContentType = "application/zip"

// maxTitleChars bounds the sanitized title inside an entry name.
const maxTitleChars = 30

var titleSanitizer = regexp.MustCompile(`[^A-Za-z0-9]+`)

// ItemOutcome records the result of one mission's render within a batch.
type ItemOutcome struct {
	MissionID string
	Title     string
	EntryName string
	Err       error
}

// Report aggregates per-item outcomes for one export call.
type Report struct {
	Selected int
	Items    []ItemOutcome
}

// Succeeded returns the number of missions that produced a document.
func (r *Report) Succeeded() int {
	n := 0
	for _, item := range r.Items {
		if item.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of missions skipped due to render failures.
func (r *Report) Failed() int {
	return len(r.Items) - r.Succeeded()
}

// ExportResult is the finished batch artifact handed to the download layer.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
	Report      Report
}

// Exporter composes the resolver and renderer into single-document and batch
// flows. Both collaborators are injected; the exporter owns no ambient state.
type Exporter struct {
	resolver *templates.Resolver
	renderer *rendering.Renderer
}

// NewExporter returns an Exporter over the given resolver and renderer.
func NewExporter(resolver *templates.Resolver, renderer *rendering.Renderer) *Exporter {
	return &Exporter{resolver: resolver, renderer: renderer}
}

// RenderMission produces one document for a single mission, retrying with the
// embedded template when the resolved template cannot be opened.
func (e *Exporter) RenderMission(ctx context.Context, mission types.MissionRecord, cfg types.ExportConfiguration, profile types.UserProfile) ([]byte, error) {
	template := e.resolver.Resolve(ctx, cfg)
	fields := BuildFields(mission, profile)
	return e.renderer.RenderWithFallback(template, e.resolver.Embedded(), fields)
}

// DocumentName returns the deterministic entry name for one mission document.
func DocumentName(mission types.MissionRecord) string {
	return fmt.Sprintf("%s_%s%s", mission.Date, sanitizeTitle(mission.Title), rendering.DocumentExt)
}

// ExportBatch renders every mission within the date range and packs the
// successes into one archive. Missions are processed sequentially in filtered
// order; a per-item failure is recorded and skipped, never aborting the batch.
func (e *Exporter) ExportBatch(ctx context.Context, missions []types.MissionRecord, rng types.DateRange, cfg types.ExportConfiguration, profile types.UserProfile) (*ExportResult, error) {
	if err := rng.Validate(); err != nil {
		return nil, fmt.Errorf("invalid date range: %w", err)
	}

	selected := filterByRange(missions, rng)
	if len(selected) == 0 {
		return nil, &EmptySelectionError{Start: rng.Start, End: rng.End}
	}

	result := &ExportResult{
		Filename:    fmt.Sprintf("Reports_%s_to_%s.zip", rng.Start, rng.End),
		ContentType: ArchiveContentType,
		Report:      Report{Selected: len(selected)},
	}

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)
	usedNames := make(map[string]bool)

	for _, mission := range selected {
		outcome := ItemOutcome{MissionID: mission.ID, Title: mission.Title}

		doc, err := e.RenderMission(ctx, mission, cfg, profile)
		if err != nil {
			outcome.Err = err
			result.Report.Items = append(result.Report.Items, outcome)
			continue
		}

		name := DocumentName(mission)
		if usedNames[name] {
			name = disambiguate(name, mission.ID)
		}
		usedNames[name] = true
		outcome.EntryName = name

		entry, err := archive.Create(name)
		if err != nil {
			outcome.Err = fmt.Errorf("failed to add %s to archive: %w", name, err)
			result.Report.Items = append(result.Report.Items, outcome)
			continue
		}
		if _, err := entry.Write(doc); err != nil {
			outcome.Err = fmt.Errorf("failed to write %s to archive: %w", name, err)
			result.Report.Items = append(result.Report.Items, outcome)
			continue
		}
		result.Report.Items = append(result.Report.Items, outcome)
	}

	if result.Report.Succeeded() == 0 {
		return nil, &NoOutputError{Attempted: len(selected)}
	}

	if err := archive.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize export archive: %w", err)
	}
	result.Data = buf.Bytes()
	return result, nil
}

func filterByRange(missions []types.MissionRecord, rng types.DateRange) []types.MissionRecord {
	var selected []types.MissionRecord
	for _, mission := range missions {
		inside, err := rng.Contains(mission.Date)
		if err != nil {
			// A mission with an unparseable date cannot match any range.
			continue
		}
		if inside {
			selected = append(selected, mission)
		}
	}
	return selected
}

// sanitizeTitle strips everything outside [A-Za-z0-9] and truncates to a
// filesystem-safe length.
func sanitizeTitle(title string) string {
	clean := titleSanitizer.ReplaceAllString(title, "")
	if len(clean) > maxTitleChars {
		clean = clean[:maxTitleChars]
	}
	return clean
}

// disambiguate appends a short id suffix when two missions in one export
// would otherwise collide on the same entry name.
func disambiguate(name, id string) string {
	suffix := id
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	ext := rendering.DocumentExt
	return name[:len(name)-len(ext)] + "_" + suffix + ext
}
