// Package types provides the resume document model shared by every component of the builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SkillLevel is the self-assessed proficiency attached to a skill.
type SkillLevel string

// Skill levels offered by the editor.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// SkillLevels lists the levels in the order the editor presents them.
var SkillLevels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// Density selects the spacing profile of the rendered preview.
type Density string

// Layout densities.
const (
	DensityCompact     Density = "compact"
	DensityComfortable Density = "comfortable"
)

// DefaultThemeColor is the accent color of a fresh document.
const DefaultThemeColor = "#2563eb"

// Palette is the fixed set of theme colors a user can pick from.
var Palette = []string{"#2563eb", "#0f172a", "#dc2626", "#16a34a", "#9333ea", "#ea580c"}

// InPalette reports whether color is one of the selectable theme colors.
func InPalette(color string) bool {
	for _, c := range Palette {
		if strings.EqualFold(c, color) {
			return true
		}
	}
	return false
}

// PersonalInfo holds the header and profile data of a resume. It is always present.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Link     string `json:"link"`     // Portfolio/LinkedIn
	JobTitle string `json:"jobTitle"` // Target job title
	Summary  string `json:"summary"`
}

// Experience is one work history entry.
type Experience struct {
	ID          string `json:"id" validate:"required"`
	Company     string `json:"company"`
	JobTitle    string `json:"jobTitle"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	City        string `json:"city"`
	Description string `json:"description"` // newline-delimited bullets
}

// Education is one school entry.
type Education struct {
	ID          string `json:"id" validate:"required"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	City        string `json:"city"`
	Description string `json:"description"`
	Grade       string `json:"grade"` // CGPA or percentage
}

// Skill is one named skill with a level.
type Skill struct {
	ID    string     `json:"id" validate:"required"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level" validate:"oneof=Beginner Intermediate Advanced Expert"`
}

// Entry is implemented by every list element of a Document.
type Entry interface {
	EntryID() string
}

// EntryID returns the stable id of the entry.
func (e Experience) EntryID() string { return e.ID }

// EntryID returns the stable id of the entry.
func (e Education) EntryID() string { return e.ID }

// EntryID returns the stable id of the entry.
func (s Skill) EntryID() string { return s.ID }

// Document is the aggregate root of a resume. Values are treated as immutable:
// every edit produces a new Document.
type Document struct {
	PersonalInfo  PersonalInfo `json:"personalInfo"`
	Experience    []Experience `json:"experience" validate:"dive"`
	Education     []Education  `json:"education" validate:"dive"`
	Skills        []Skill      `json:"skills" validate:"dive"`
	ThemeColor    string       `json:"themeColor" validate:"required,hexcolor"`
	LayoutDensity Density      `json:"layoutDensity" validate:"oneof=compact comfortable"`
}

// Empty returns the initial document: blank personal info, no entries and default presentation.
func Empty() Document {
	return Document{
		Experience:    []Experience{},
		Education:     []Education{},
		Skills:        []Skill{},
		ThemeColor:    DefaultThemeColor,
		LayoutDensity: DensityComfortable,
	}
}

// Clone returns a deep copy whose slices share no backing arrays with d.
func (d Document) Clone() Document {
	out := d
	out.Experience = append(make([]Experience, 0, len(d.Experience)), d.Experience...)
	out.Education = append(make([]Education, 0, len(d.Education)), d.Education...)
	out.Skills = append(make([]Skill, 0, len(d.Skills)), d.Skills...)
	return out
}

// Normalize fills fields that older snapshots may lack: nil lists become empty,
// a missing theme or density falls back to the defaults and blank skill levels
// become Intermediate.
func (d Document) Normalize() Document {
	out := d.Clone()
	if out.ThemeColor == "" {
		out.ThemeColor = DefaultThemeColor
	}
	if out.LayoutDensity == "" {
		out.LayoutDensity = DensityComfortable
	}
	for i := range out.Skills {
		if out.Skills[i].Level == "" {
			out.Skills[i].Level = LevelIntermediate
		}
	}
	return out
}

// Validate checks the structural invariants of the document: level and density
// enums, a hex theme color, and a non-empty id on every entry.
func (d Document) Validate() error {
	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		return err
	}
	return checkUniqueIDs(d)
}

func checkUniqueIDs(d Document) error {
	seen := make(map[string]struct{})
	check := func(list string, id string) error {
		if _, dup := seen[list+"/"+id]; dup {
			return &FieldError{Entity: list, Field: "id", Message: "duplicate id " + id}
		}
		seen[list+"/"+id] = struct{}{}
		return nil
	}
	for _, e := range d.Experience {
		if err := check("experience", e.ID); err != nil {
			return err
		}
	}
	for _, e := range d.Education {
		if err := check("education", e.ID); err != nil {
			return err
		}
	}
	for _, s := range d.Skills {
		if err := check("skills", s.ID); err != nil {
			return err
		}
	}
	return nil
}
