// Package clickup implements the client and data model for the ClickUp REST API.
package clickup

// file: internal/clickup/types.go

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FieldType enumerates the ClickUp custom-field types this server understands.
// Unrecognized types map to FieldTypeUnknown so classification logic operates
// over a closed set.
type FieldType string

// Known custom-field types.
const (
	FieldTypePhone       FieldType = "phone"
	FieldTypePhoneNumber FieldType = "phone_number"
	FieldTypeText        FieldType = "text"
	FieldTypeShortText   FieldType = "short_text"
	FieldTypeEmail       FieldType = "email"
	FieldTypeNumber      FieldType = "number"
	FieldTypeDropDown    FieldType = "drop_down"
	FieldTypeLabels      FieldType = "labels"
	FieldTypeDate        FieldType = "date"
	FieldTypeURL         FieldType = "url"
	FieldTypeCurrency    FieldType = "currency"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeUnknown     FieldType = "unknown"
)

// knownFieldTypes is the closed set ParseFieldType recognizes.
var knownFieldTypes = map[FieldType]struct{}{
	FieldTypePhone:       {},
	FieldTypePhoneNumber: {},
	FieldTypeText:        {},
	FieldTypeShortText:   {},
	FieldTypeEmail:       {},
	FieldTypeNumber:      {},
	FieldTypeDropDown:    {},
	FieldTypeLabels:      {},
	FieldTypeDate:        {},
	FieldTypeURL:         {},
	FieldTypeCurrency:    {},
	FieldTypeCheckbox:    {},
}

// ParseFieldType maps an upstream type string onto the FieldType enumeration,
// falling back to FieldTypeUnknown for anything unrecognized.
func ParseFieldType(s string) FieldType {
	ft := FieldType(s)
	if _, ok := knownFieldTypes[ft]; ok {
		return ft
	}
	return FieldTypeUnknown
}

// ValueKind tags the dynamic shape of a custom-field value.
type ValueKind int

// Value kinds, in rough order of how often ClickUp produces them.
const (
	ValueEmpty ValueKind = iota
	ValueString
	ValueNumber
	ValueBool
	ValueList
	ValueObject
)

// FieldValue is a tagged variant over the JSON shapes ClickUp returns for
// custom-field values: string, number, boolean, array, object, or absent.
type FieldValue struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
	List []string
	Raw  json.RawMessage
}

// UnmarshalJSON decodes any JSON value into the matching variant.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	v.Raw = append(v.Raw[:0], data...)
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		v.Kind = ValueEmpty
		return nil
	}
	switch trimmed[0] {
	case '"':
		v.Kind = ValueString
		return json.Unmarshal(data, &v.Str)
	case 't', 'f':
		v.Kind = ValueBool
		return json.Unmarshal(data, &v.Bool)
	case '[':
		v.Kind = ValueList
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		v.List = make([]string, 0, len(items))
		for _, item := range items {
			var elem FieldValue
			if err := elem.UnmarshalJSON(item); err != nil {
				return err
			}
			v.List = append(v.List, elem.String())
		}
		return nil
	case '{':
		v.Kind = ValueObject
		return nil
	default:
		v.Kind = ValueNumber
		return json.Unmarshal(data, &v.Num)
	}
}

// MarshalJSON writes the originally received JSON back out.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if len(v.Raw) == 0 {
		return []byte("null"), nil
	}
	return v.Raw, nil
}

// String returns the natural string form of the value: strings unchanged,
// numbers without a trailing ".0", booleans as "true"/"false", lists joined
// with ", ", objects as their raw JSON.
func (v FieldValue) String() string {
	switch v.Kind {
	case ValueString:
		return v.Str
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueList:
		return strings.Join(v.List, ", ")
	case ValueObject:
		return string(v.Raw)
	default:
		return ""
	}
}

// IsEmpty reports whether the value is absent or null.
func (v FieldValue) IsEmpty() bool { return v.Kind == ValueEmpty }

// CustomField is one custom field attached to a task.
type CustomField struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Type  FieldType  `json:"-"`
	Value FieldValue `json:"value,omitempty"`
}

// customFieldWire is the upstream JSON shape; Type passes through
// ParseFieldType so downstream logic sees the closed enumeration.
type customFieldWire struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Type  string     `json:"type"`
	Value FieldValue `json:"value"`
}

// UnmarshalJSON decodes the wire shape and normalizes the type tag.
func (f *CustomField) UnmarshalJSON(data []byte) error {
	var wire customFieldWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	f.ID = wire.ID
	f.Name = wire.Name
	f.Type = ParseFieldType(wire.Type)
	f.Value = wire.Value
	return nil
}

// MarshalJSON writes the wire shape back out.
func (f CustomField) MarshalJSON() ([]byte, error) {
	return json.Marshal(customFieldWire{
		ID:    f.ID,
		Name:  f.Name,
		Type:  string(f.Type),
		Value: f.Value,
	})
}

// IsPhoneField reports whether the field should be treated as holding a phone
// number: either it is phone-typed, or it is a plain text field whose name
// contains "phone" (case-insensitive).
func (f CustomField) IsPhoneField() bool {
	switch f.Type {
	case FieldTypePhone, FieldTypePhoneNumber:
		return true
	case FieldTypeText, FieldTypeShortText:
		return strings.Contains(strings.ToLower(f.Name), "phone")
	default:
		return false
	}
}

// User identifies a ClickUp member.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Color    string `json:"color,omitempty"`
	Initials string `json:"initials,omitempty"`
}

// Status is a task's workflow status.
type Status struct {
	Status string `json:"status"`
	Color  string `json:"color,omitempty"`
	Type   string `json:"type,omitempty"`
}

// Priority is a task's priority level.
type Priority struct {
	ID       string `json:"id,omitempty"`
	Priority string `json:"priority"`
	Color    string `json:"color,omitempty"`
}

// Tag is a task tag.
type Tag struct {
	Name    string `json:"name"`
	TagFg   string `json:"tag_fg,omitempty"`
	TagBg   string `json:"tag_bg,omitempty"`
	Creator int64  `json:"creator,omitempty"`
}

// ListRef is the embedded reference to a task's containing list.
type ListRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Task is a ClickUp task as returned by the task endpoints. Timestamps are
// upstream millisecond-epoch strings and are passed through untouched.
type Task struct {
	ID           string        `json:"id"`
	CustomID     string        `json:"custom_id,omitempty"`
	Name         string        `json:"name"`
	TextContent  string        `json:"text_content,omitempty"`
	Description  string        `json:"description,omitempty"`
	Status       Status        `json:"status"`
	DateCreated  string        `json:"date_created,omitempty"`
	DateUpdated  string        `json:"date_updated,omitempty"`
	DateClosed   string        `json:"date_closed,omitempty"`
	DueDate      string        `json:"due_date,omitempty"`
	StartDate    string        `json:"start_date,omitempty"`
	Creator      User          `json:"creator"`
	Assignees    []User        `json:"assignees,omitempty"`
	Tags         []Tag         `json:"tags,omitempty"`
	Priority     *Priority     `json:"priority,omitempty"`
	TimeEstimate int64         `json:"time_estimate,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty"`
	List         ListRef       `json:"list"`
	URL          string        `json:"url,omitempty"`
	Parent       string        `json:"parent,omitempty"`
}

// List is a ClickUp list.
type List struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TaskCount int     `json:"task_count,omitempty"`
	Archived  bool    `json:"archived,omitempty"`
	Folder    ListRef `json:"folder,omitempty"`
	Space     ListRef `json:"space,omitempty"`
}

// Folder groups lists inside a space.
type Folder struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Hidden   bool   `json:"hidden,omitempty"`
	Archived bool   `json:"archived,omitempty"`
	Lists    []List `json:"lists,omitempty"`
}

// Space is a ClickUp space.
type Space struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Private  bool     `json:"private,omitempty"`
	Archived bool     `json:"archived,omitempty"`
	Statuses []Status `json:"statuses,omitempty"`
}

// Team is a ClickUp workspace (the API still calls it a team).
type Team struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
	Members []struct {
		User User `json:"user"`
	} `json:"members,omitempty"`
}

// Comment is a task comment.
type Comment struct {
	ID          string `json:"id"`
	CommentText string `json:"comment_text"`
	User        User   `json:"user"`
	Resolved    bool   `json:"resolved,omitempty"`
	Date        string `json:"date,omitempty"`
}

// TimeEntry is a tracked time interval.
type TimeEntry struct {
	ID          string  `json:"id"`
	Task        ListRef `json:"task,omitempty"`
	User        User    `json:"user"`
	Billable    bool    `json:"billable,omitempty"`
	Start       string  `json:"start,omitempty"`
	End         string  `json:"end,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Description string  `json:"description,omitempty"`
}
