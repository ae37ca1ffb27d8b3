package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTemplate_Found(t *testing.T) {
	cfg := ExportConfiguration{
		ActiveTemplateID: "tpl_1",
		CustomTemplates: []TemplateDescriptor{
			{ID: "tpl_1", Name: "Custom", Data: "AAAA"},
		},
	}

	desc, ok := cfg.FindTemplate("tpl_1")
	require.True(t, ok)
	assert.Equal(t, "Custom", desc.Name)
}

func TestFindTemplate_NotFound(t *testing.T) {
	cfg := ExportConfiguration{}
	_, ok := cfg.FindTemplate("missing")
	assert.False(t, ok)
}

func TestNormalize_DanglingActiveID(t *testing.T) {
	cfg := ExportConfiguration{ActiveTemplateID: "gone"}
	cfg.Normalize()
	assert.Equal(t, DefaultTemplateID, cfg.ActiveTemplateID)
}

func TestNormalize_EmptyActiveID(t *testing.T) {
	cfg := ExportConfiguration{}
	cfg.Normalize()
	assert.Equal(t, DefaultTemplateID, cfg.ActiveTemplateID)
}

func TestNormalize_ValidActiveID(t *testing.T) {
	cfg := ExportConfiguration{
		ActiveTemplateID: "tpl_1",
		CustomTemplates:  []TemplateDescriptor{{ID: "tpl_1"}},
	}
	cfg.Normalize()
	assert.Equal(t, "tpl_1", cfg.ActiveTemplateID)
}

func TestRemoveTemplate_ResetsActiveSelection(t *testing.T) {
	cfg := ExportConfiguration{
		ActiveTemplateID: "tpl_2",
		CustomTemplates: []TemplateDescriptor{
			{ID: "tpl_1"},
			{ID: "tpl_2"},
		},
	}

	removed := cfg.RemoveTemplate("tpl_2")
	require.True(t, removed)
	assert.Equal(t, DefaultTemplateID, cfg.ActiveTemplateID)
	assert.Len(t, cfg.CustomTemplates, 1)
}

func TestRemoveTemplate_InactiveKeepsSelection(t *testing.T) {
	cfg := ExportConfiguration{
		ActiveTemplateID: "tpl_1",
		CustomTemplates: []TemplateDescriptor{
			{ID: "tpl_1"},
			{ID: "tpl_2"},
		},
	}

	removed := cfg.RemoveTemplate("tpl_2")
	require.True(t, removed)
	assert.Equal(t, "tpl_1", cfg.ActiveTemplateID)
}

func TestRemoveTemplate_Missing(t *testing.T) {
	cfg := ExportConfiguration{ActiveTemplateID: DefaultTemplateID}
	assert.False(t, cfg.RemoveTemplate("nope"))
}
