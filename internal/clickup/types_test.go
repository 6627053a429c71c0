// Package clickup implements the client and data model for the ClickUp REST API.
package clickup

// file: internal/clickup/types_test.go

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValueVariants(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		raw      string
		wantKind ValueKind
		wantStr  string
	}{
		{name: "string", raw: `"(623) 258-3673"`, wantKind: ValueString, wantStr: "(623) 258-3673"},
		{name: "integer keeps integral form", raw: `42`, wantKind: ValueNumber, wantStr: "42"},
		{name: "float keeps fraction", raw: `3.5`, wantKind: ValueNumber, wantStr: "3.5"},
		{name: "boolean", raw: `true`, wantKind: ValueBool, wantStr: "true"},
		{name: "null is empty", raw: `null`, wantKind: ValueEmpty, wantStr: ""},
		{name: "list joined", raw: `["red","blue"]`, wantKind: ValueList, wantStr: "red, blue"},
		{name: "mixed list stringifies elements", raw: `["a",1,true]`, wantKind: ValueList, wantStr: "a, 1, true"},
		{name: "object passes raw JSON through", raw: `{"id":"u1"}`, wantKind: ValueObject, wantStr: `{"id":"u1"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var v FieldValue
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &v))
			assert.Equal(t, tc.wantKind, v.Kind)
			assert.Equal(t, tc.wantStr, v.String())
		})
	}
}

func TestFieldValueMarshalRoundTrip(t *testing.T) {
	t.Parallel()
	raw := `{"orderindex":2,"name":"EMEA"}`
	var v FieldValue
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestParseFieldType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, FieldTypePhone, ParseFieldType("phone"))
	assert.Equal(t, FieldTypeShortText, ParseFieldType("short_text"))
	assert.Equal(t, FieldTypeUnknown, ParseFieldType("formula"))
	assert.Equal(t, FieldTypeUnknown, ParseFieldType(""))
}

func TestCustomFieldWireDecode(t *testing.T) {
	t.Parallel()
	raw := `{"id":"f1","name":"Contact Phone","type":"short_text","value":"555-0100"}`
	var f CustomField
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	assert.Equal(t, "f1", f.ID)
	assert.Equal(t, FieldTypeShortText, f.Type)
	assert.Equal(t, "555-0100", f.Value.Str)
}

func TestIsPhoneField(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		fieldName string
		fieldType FieldType
		want      bool
	}{
		{name: "phone type regardless of name", fieldName: "Mobile", fieldType: FieldTypePhone, want: true},
		{name: "phone_number type", fieldName: "Mobile", fieldType: FieldTypePhoneNumber, want: true},
		{name: "text field named phone", fieldName: "Work Phone", fieldType: FieldTypeText, want: true},
		{name: "short text named phone, case-insensitive", fieldName: "PHONE (backup)", fieldType: FieldTypeShortText, want: true},
		{name: "text field without phone in name", fieldName: "Notes", fieldType: FieldTypeText, want: false},
		{name: "number field named phone is not a phone", fieldName: "Phone count", fieldType: FieldTypeNumber, want: false},
		{name: "unknown type", fieldName: "Phone", fieldType: FieldTypeUnknown, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := CustomField{Name: tc.fieldName, Type: tc.fieldType}
			assert.Equal(t, tc.want, f.IsPhoneField())
		})
	}
}
