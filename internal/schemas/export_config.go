package schemas

// ExportConfigurationSchema constrains the template-selection document the
// CLI accepts. The reserved "default" id designates the built-in template and
// never appears as a custom entry.
const ExportConfigurationSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["active_template_id"],
  "properties": {
    "active_template_id": {
      "type": "string",
      "minLength": 1
    },
    "custom_templates": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "data"],
        "properties": {
          "id": {
            "type": "string",
            "minLength": 1,
            "not": {"const": "default"}
          },
          "name": {"type": "string"},
          "data": {
            "type": "string",
            "minLength": 4
          }
        }
      }
    }
  }
}`

// ValidateExportConfiguration validates an export-configuration JSON document.
func ValidateExportConfiguration(jsonContent string) error {
	return ValidateJSONString(ExportConfigurationSchema, jsonContent)
}
