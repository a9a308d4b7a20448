//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Field names accepted by the SetField methods. They match the JSON keys of the snapshot.
const (
	FieldFullName    = "fullName"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldCity        = "city"
	FieldLink        = "link"
	FieldJobTitle    = "jobTitle"
	FieldSummary     = "summary"
	FieldCompany     = "company"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
	FieldDescription = "description"
	FieldSchool      = "school"
	FieldDegree      = "degree"
	FieldGrade       = "grade"
	FieldName        = "name"
	FieldLevel       = "level"
	FieldID          = "id"
)

// FieldError reports an edit addressed to a field that cannot take the value.
type FieldError struct {
	Entity  string
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field error: %s.%s: %s", e.Entity, e.Field, e.Message)
}

func unknownField(entity, field string) error {
	if field == FieldID {
		return &FieldError{Entity: entity, Field: field, Message: "ids are assigned at creation and cannot be edited"}
	}
	return &FieldError{Entity: entity, Field: field, Message: "unknown field"}
}

// SetField returns a copy of p with the named field replaced.
func (p PersonalInfo) SetField(field, value string) (PersonalInfo, error) {
	switch field {
	case FieldFullName:
		p.FullName = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	case FieldCity:
		p.City = value
	case FieldLink:
		p.Link = value
	case FieldJobTitle:
		p.JobTitle = value
	case FieldSummary:
		p.Summary = value
	default:
		return p, unknownField("personalInfo", field)
	}
	return p, nil
}

// SetField returns a copy of e with the named field replaced.
func (e Experience) SetField(field, value string) (Experience, error) {
	switch field {
	case FieldCompany:
		e.Company = value
	case FieldJobTitle:
		e.JobTitle = value
	case FieldStartDate:
		e.StartDate = value
	case FieldEndDate:
		e.EndDate = value
	case FieldCity:
		e.City = value
	case FieldDescription:
		e.Description = value
	default:
		return e, unknownField("experience", field)
	}
	return e, nil
}

// SetField returns a copy of e with the named field replaced.
func (e Education) SetField(field, value string) (Education, error) {
	switch field {
	case FieldSchool:
		e.School = value
	case FieldDegree:
		e.Degree = value
	case FieldStartDate:
		e.StartDate = value
	case FieldEndDate:
		e.EndDate = value
	case FieldCity:
		e.City = value
	case FieldDescription:
		e.Description = value
	case FieldGrade:
		e.Grade = value
	default:
		return e, unknownField("education", field)
	}
	return e, nil
}

// SetField returns a copy of s with the named field replaced. Levels outside
// SkillLevels are rejected.
func (s Skill) SetField(field, value string) (Skill, error) {
	switch field {
	case FieldName:
		s.Name = value
	case FieldLevel:
		level, ok := ParseSkillLevel(value)
		if !ok {
			return s, &FieldError{Entity: "skills", Field: field, Message: fmt.Sprintf("invalid level %q", value)}
		}
		s.Level = level
	default:
		return s, unknownField("skills", field)
	}
	return s, nil
}

// ParseSkillLevel matches value against the known levels, ignoring case.
func ParseSkillLevel(value string) (SkillLevel, bool) {
	for _, l := range SkillLevels {
		if strings.EqualFold(string(l), strings.TrimSpace(value)) {
			return l, true
		}
	}
	return "", false
}
