package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentSchemaPath = "../../schemas/document.schema.json"

func TestValidateJSON_ValidDocument(t *testing.T) {
	err := ValidateJSON(documentSchemaPath, filepath.Join("testdata", "valid_document.json"))
	assert.NoError(t, err)
}

func TestValidateJSON_MissingFields(t *testing.T) {
	err := ValidateJSON(documentSchemaPath, filepath.Join("testdata", "missing_lists.json"))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Len(t, validationErr.Errors, 3)
}

func TestValidateJSON_WrongType(t *testing.T) {
	err := ValidateJSON(documentSchemaPath, filepath.Join("testdata", "type_mismatch.json"))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "personalInfo.fullName")
	assert.Contains(t, fields, "skills")
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	err := ValidateJSON("testdata/nonexistent_schema.json", filepath.Join("testdata", "valid_document.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(documentSchemaPath, "testdata/nonexistent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	tmpDir := t.TempDir()
	malformed := filepath.Join(tmpDir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{ invalid json }"), 0644))

	assert.Error(t, ValidateJSON(documentSchemaPath, malformed))
}

func TestValidateDocument(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "valid_document.json"))
	require.NoError(t, err)
	assert.NoError(t, ValidateDocument(data))

	data, err = os.ReadFile(filepath.Join("testdata", "type_mismatch.json"))
	require.NoError(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, ValidateDocument(data), &validationErr)
}

func TestValidateDocument_Unparsable(t *testing.T) {
	var validationErr *ValidationError
	assert.ErrorAs(t, ValidateDocument([]byte("{not json")), &validationErr)
}
