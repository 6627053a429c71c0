// Package format normalizes heterogeneous ClickUp field data into canonical
// display forms.
package format

// file: internal/format/field.go

import (
	"github.com/dkoosis/clickup-mcp/internal/clickup"
)

// CustomFieldValue extracts the display value for a custom field.
// Phone-classified fields are run through NormalizePhone, so an invalid or
// empty phone value yields the empty string. Every other field returns its
// natural string form unchanged: no trimming, no case changes.
func CustomFieldValue(field clickup.CustomField) string {
	if field.IsPhoneField() {
		return NormalizePhone(field.Value.String())
	}
	return field.Value.String()
}
