//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalInfo_SetField(t *testing.T) {
	p := PersonalInfo{FullName: "Old"}

	updated, err := p.SetField(FieldFullName, "New")
	require.NoError(t, err)
	assert.Equal(t, "New", updated.FullName)
	assert.Equal(t, "Old", p.FullName, "receiver must not change")

	_, err = p.SetField("nickname", "x")
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "nickname", fieldErr.Field)
}

func TestExperience_SetField(t *testing.T) {
	e := Experience{ID: "a"}

	for _, field := range []string{FieldCompany, FieldJobTitle, FieldStartDate, FieldEndDate, FieldCity, FieldDescription} {
		updated, err := e.SetField(field, "v")
		require.NoError(t, err, field)
		assert.NotEqual(t, e, updated, field)
	}

	_, err := e.SetField(FieldID, "b")
	assert.Error(t, err)
}

func TestEducation_SetField(t *testing.T) {
	e := Education{ID: "a"}

	updated, err := e.SetField(FieldGrade, "3.9 GPA")
	require.NoError(t, err)
	assert.Equal(t, "3.9 GPA", updated.Grade)

	_, err = e.SetField(FieldCompany, "x")
	assert.Error(t, err)
}

func TestSkill_SetField(t *testing.T) {
	s := Skill{ID: "a", Name: "Go", Level: LevelIntermediate}

	updated, err := s.SetField(FieldLevel, "Expert")
	require.NoError(t, err)
	assert.Equal(t, LevelExpert, updated.Level)

	_, err = s.SetField(FieldLevel, "Wizard")
	assert.Error(t, err)

	updated, err = s.SetField(FieldName, "Rust")
	require.NoError(t, err)
	assert.Equal(t, "Rust", updated.Name)
}

func TestThemeRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ThemeRequest{Color: "#16a34a"}).Validate())
	assert.Error(t, (&ThemeRequest{Color: "green"}).Validate())
	assert.Error(t, (&ThemeRequest{}).Validate())
}

func TestTranscriptRequest_Validate(t *testing.T) {
	assert.NoError(t, (&TranscriptRequest{Transcript: "add skill Go"}).Validate())
	assert.Error(t, (&TranscriptRequest{}).Validate())
}
