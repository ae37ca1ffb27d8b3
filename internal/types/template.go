package types

// DefaultTemplateID is the reserved template id designating the built-in
// default template. It never appears in the user-editable template list and
// has no Data entry.
const DefaultTemplateID = "default"

// TemplateDescriptor represents one user-uploaded document template.
// Data is the base64-encoded binary archive.
type TemplateDescriptor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Data string `json:"data"`
}

// ExportConfiguration selects which template renders are performed with.
// ActiveTemplateID is either DefaultTemplateID or the id of one entry in
// CustomTemplates.
type ExportConfiguration struct {
	ActiveTemplateID string               `json:"active_template_id"`
	CustomTemplates  []TemplateDescriptor `json:"custom_templates"`
}

// FindTemplate looks up a custom template descriptor by id.
func (c *ExportConfiguration) FindTemplate(id string) (*TemplateDescriptor, bool) {
	for i := range c.CustomTemplates {
		if c.CustomTemplates[i].ID == id {
			return &c.CustomTemplates[i], true
		}
	}
	return nil, false
}

// Normalize resets ActiveTemplateID to DefaultTemplateID when it is empty or
// references a template that is not in CustomTemplates. A dangling selection
// must never fail a render.
func (c *ExportConfiguration) Normalize() {
	if c.ActiveTemplateID == "" || c.ActiveTemplateID == DefaultTemplateID {
		c.ActiveTemplateID = DefaultTemplateID
		return
	}
	if _, ok := c.FindTemplate(c.ActiveTemplateID); !ok {
		c.ActiveTemplateID = DefaultTemplateID
	}
}

// RemoveTemplate deletes the descriptor with the given id. Deleting the
// currently active template resets the selection to DefaultTemplateID.
func (c *ExportConfiguration) RemoveTemplate(id string) bool {
	for i := range c.CustomTemplates {
		if c.CustomTemplates[i].ID == id {
			c.CustomTemplates = append(c.CustomTemplates[:i], c.CustomTemplates[i+1:]...)
			if c.ActiveTemplateID == id {
				c.ActiveTemplateID = DefaultTemplateID
			}
			return true
		}
	}
	return false
}
