package observability

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/mission-reporter/internal/export"
	"github.com/jonathan/mission-reporter/internal/types"
)

func TestPrintConfiguration(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintConfiguration(&types.ExportConfiguration{
		ActiveTemplateID: "tpl_1",
		CustomTemplates: []types.TemplateDescriptor{
			{ID: "tpl_1", Name: "Monthly report"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Template Configuration")
	assert.Contains(t, out, "tpl_1")
	assert.Contains(t, out, "Monthly report")
}

func TestPrintConfiguration_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintConfiguration(nil)
	assert.Empty(t, buf.String())
}

func TestPrintExportReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintExportReport(&export.ExportResult{
		Filename: "Reports_2024-01-01_to_2024-01-31.zip",
		Report: export.Report{
			Selected: 3,
			Items: []export.ItemOutcome{
				{MissionID: "m1", Title: "Pump check"},
				{MissionID: "m2", Title: "Broken one", Err: errors.New("render failed")},
				{MissionID: "m3", Title: "Valve check"},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Batch Export")
	assert.Contains(t, out, "Selected:  3")
	assert.Contains(t, out, "Rendered:  2")
	assert.Contains(t, out, "Skipped:   1")
	assert.Contains(t, out, "Broken one")
}
