package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"hp": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"schemas/test.schema.json": {Data: []byte(testSchema)},
		"data/valid.json":          {Data: []byte(`{"name": "sword", "hp": 10}`)},
		"data/invalid.json":        {Data: []byte(`{"hp": 10}`)},
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(newTestFS())

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "sword", "hp": 30}`},
		{name: "valid data without optional field", data: `{"name": "shield"}`},
		{name: "missing required field", data: `{"hp": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "axe", "hp": "thirty"}`, wantError: true, errorMsg: "/hp"},
		{name: "constraint violation", data: `{"name": "axe", "hp": -5}`, wantError: true, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "axe", "hp": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "schemas/test.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator(newTestFS())

	assert.NoError(t, v.ValidateFile("data/valid.json", "schemas/test.schema.json"))

	err := v.ValidateFile("data/invalid.json", "schemas/test.schema.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaValidation)

	err = v.ValidateFile("data/missing.json", "schemas/test.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator(newTestFS())

	err := v.ValidateBytes([]byte(`{}`), "schemas/nope.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator(newTestFS()).(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "a"}`), "schemas/test.schema.json"))
	require.NoError(t, v.ValidateBytes([]byte(`{"name": "b"}`), "schemas/test.schema.json"))
	assert.Len(t, v.schemas, 1)
}
