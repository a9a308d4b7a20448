package voice

import (
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

// Intent is the kind of a voice command.
type Intent string

// Intents understood by the classifier.
const (
	IntentUpdatePersonal Intent = "UPDATE_PERSONAL"
	IntentAddExperience  Intent = "ADD_EXPERIENCE"
	IntentAddEducation   Intent = "ADD_EDUCATION"
	IntentAddSkill       Intent = "ADD_SKILL"
	IntentUnknown        Intent = "UNKNOWN"
)

// Defaults used when a command omits a field.
const (
	DefaultCompany  = "Company"
	DefaultJobTitle = "Job Title"
	DefaultSchool   = "University"
	DefaultDegree   = "Degree"
	DefaultSkill    = "New Skill"
)

// Command is a classified voice command. Apply never fails: fields the user
// did not mention fall back to defaults.
type Command interface {
	Intent() Intent
	Apply(doc types.Document) types.Document
}

// Edit adapts cmd to a store edit.
func Edit(cmd Command) document.Edit {
	return func(doc types.Document) (types.Document, error) {
		return cmd.Apply(doc), nil
	}
}

// UpdatePersonal overwrites the personal fields that were mentioned. Nil
// fields are left untouched.
type UpdatePersonal struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	City     *string `json:"city,omitempty"`
	Link     *string `json:"link,omitempty"`
	JobTitle *string `json:"jobTitle,omitempty"`
	Summary  *string `json:"summary,omitempty"`
}

// Intent implements Command.
func (UpdatePersonal) Intent() Intent { return IntentUpdatePersonal }

// Apply implements Command.
func (c UpdatePersonal) Apply(doc types.Document) types.Document {
	next := doc.Clone()
	p := &next.PersonalInfo
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.FullName, c.FullName)
	set(&p.Email, c.Email)
	set(&p.Phone, c.Phone)
	set(&p.City, c.City)
	set(&p.Link, c.Link)
	set(&p.JobTitle, c.JobTitle)
	set(&p.Summary, c.Summary)
	return next
}

// AddExperience appends a new experience entry.
type AddExperience struct {
	Company     string `json:"company"`
	JobTitle    string `json:"jobTitle"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	City        string `json:"city"`
	Description string `json:"description"`
}

// Intent implements Command.
func (AddExperience) Intent() Intent { return IntentAddExperience }

// Apply implements Command.
func (c AddExperience) Apply(doc types.Document) types.Document {
	next, _ := document.AddExperience(types.Experience{
		Company:     orDefault(c.Company, DefaultCompany),
		JobTitle:    orDefault(c.JobTitle, DefaultJobTitle),
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		City:        c.City,
		Description: c.Description,
	})(doc)
	return next
}

// AddEducation appends a new education entry.
type AddEducation struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	City      string `json:"city"`
	Grade     string `json:"grade"`
}

// Intent implements Command.
func (AddEducation) Intent() Intent { return IntentAddEducation }

// Apply implements Command.
func (c AddEducation) Apply(doc types.Document) types.Document {
	next, _ := document.AddEducation(types.Education{
		School:    orDefault(c.School, DefaultSchool),
		Degree:    orDefault(c.Degree, DefaultDegree),
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		City:      c.City,
		Grade:     c.Grade,
	})(doc)
	return next
}

// AddSkill appends a new skill. An unrecognized level becomes Intermediate.
type AddSkill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Intent implements Command.
func (AddSkill) Intent() Intent { return IntentAddSkill }

// Apply implements Command.
func (c AddSkill) Apply(doc types.Document) types.Document {
	level, ok := types.ParseSkillLevel(c.Level)
	if !ok {
		level = types.LevelIntermediate
	}
	next, _ := document.AddSkill(types.Skill{
		Name:  orDefault(c.Name, DefaultSkill),
		Level: level,
	})(doc)
	return next
}

// Unknown is a transcript that matched no intent. Applying it changes nothing.
type Unknown struct {
	Transcript string
}

// Intent implements Command.
func (Unknown) Intent() Intent { return IntentUnknown }

// Apply implements Command.
func (Unknown) Apply(doc types.Document) types.Document { return doc }

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
