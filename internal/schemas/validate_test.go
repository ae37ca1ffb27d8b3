package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExportConfiguration_Valid(t *testing.T) {
	doc := `{
		"active_template_id": "tpl_1",
		"custom_templates": [
			{"id": "tpl_1", "name": "Custom", "data": "UEsDBA=="}
		]
	}`
	assert.NoError(t, ValidateExportConfiguration(doc))
}

func TestValidateExportConfiguration_DefaultOnly(t *testing.T) {
	assert.NoError(t, ValidateExportConfiguration(`{"active_template_id": "default"}`))
}

func TestValidateExportConfiguration_MissingActiveID(t *testing.T) {
	err := ValidateExportConfiguration(`{"custom_templates": []}`)
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateExportConfiguration_ReservedCustomID(t *testing.T) {
	doc := `{
		"active_template_id": "default",
		"custom_templates": [{"id": "default", "data": "UEsDBA=="}]
	}`
	err := ValidateExportConfiguration(doc)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
