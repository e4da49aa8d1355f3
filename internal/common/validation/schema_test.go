package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string"},
    "age": {"type": "integer", "minimum": 0}
  }
}`

func TestSchema_ValidateBytes(t *testing.T) {
	s := MustCompile(personSchema)

	tests := []struct {
		name      string
		doc       string
		valid     bool
		wantField string
	}{
		{name: "valid", doc: `{"name":"a","age":3}`, valid: true},
		{name: "missing required", doc: `{"age":3}`, valid: false, wantField: "(root)"},
		{name: "wrong type", doc: `{"name":"a","age":"three"}`, valid: false, wantField: "age"},
		{name: "malformed", doc: `{"name":`, valid: false, wantField: "(root)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.ValidateBytes([]byte(tt.doc))
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				require.NotEmpty(t, res.Errors)
				assert.Equal(t, tt.wantField, res.Errors[0].Field)
				assert.NotEmpty(t, res.Summary())
			}
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile(`{"type": 12}`)
	assert.Error(t, err)
}
