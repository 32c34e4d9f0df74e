// pkg/registry/schema.go
package registry

import "edilia-assistant/internal/models"

// Field describes one required slot of an intent: its canonical name, the
// display label used in replies and the follow-up question asked when missing.
type Field struct {
	Name     string
	Label    string
	Question string
}

// IntentSpec is the compile-time description of one recognizable intent:
// classification keywords, the ordered required-field schema and presentation
// data for the response composer.
type IntentSpec struct {
	Type      models.IntentType
	Label     string
	Keywords  []string
	Required  []Field
	URLPrefix string
}

// RequiredNames returns the field names in declared schema order.
func (s IntentSpec) RequiredNames() []string {
	names := make([]string, len(s.Required))
	for i, f := range s.Required {
		names[i] = f.Name
	}
	return names
}

// FieldByName looks up a required field by its canonical name.
func (s IntentSpec) FieldByName(name string) (Field, bool) {
	for _, f := range s.Required {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
