package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Edit computes the next document from the current one. Edits are pure: they
// never modify their argument.
type Edit func(types.Document) (types.Document, error)

// List names one of the three entry lists of a document.
type List string

// Entry lists.
const (
	ListExperience List = "experience"
	ListEducation  List = "education"
	ListSkills     List = "skills"
)

// ParseList maps a path segment to a List.
func ParseList(s string) (List, error) {
	switch List(s) {
	case ListExperience, ListEducation, ListSkills:
		return List(s), nil
	}
	return "", fmt.Errorf("unknown list %q", s)
}

// labelled attaches the list name to index and not-found errors raised by the
// generic primitives.
func labelled(list List, err error) error {
	var idxErr *IndexError
	if errors.As(err, &idxErr) {
		idxErr.List = string(list)
	}
	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		nfErr.List = string(list)
	}
	return err
}

// Chain applies edits in order, stopping at the first error.
func Chain(edits ...Edit) Edit {
	return func(doc types.Document) (types.Document, error) {
		var err error
		for _, edit := range edits {
			if doc, err = edit(doc); err != nil {
				return doc, err
			}
		}
		return doc, nil
	}
}

// ReplaceWith discards the current document in favour of next.
func ReplaceWith(next types.Document) Edit {
	return func(types.Document) (types.Document, error) {
		return next.Clone(), nil
	}
}

// SetPersonalField replaces one field of the personal info.
func SetPersonalField(field, value string) Edit {
	return func(doc types.Document) (types.Document, error) {
		info, err := doc.PersonalInfo.SetField(field, value)
		if err != nil {
			return doc, err
		}
		next := doc.Clone()
		next.PersonalInfo = info
		return next, nil
	}
}

// ApplySummary writes a generated summary into the personal info.
func ApplySummary(summary string) Edit {
	return SetPersonalField(types.FieldSummary, summary)
}

// AddExperience appends e under a freshly generated id.
func AddExperience(e types.Experience) Edit {
	return func(doc types.Document) (types.Document, error) {
		e.ID = NewID()
		next := doc.Clone()
		next.Experience = Append(doc.Experience, e)
		return next, nil
	}
}

// UpdateExperience replaces one field of the experience entry with the given id.
func UpdateExperience(id, field, value string) Edit {
	return func(doc types.Document) (types.Document, error) {
		list, err := UpdateByID(doc.Experience, id, func(e types.Experience) (types.Experience, error) {
			return e.SetField(field, value)
		})
		if err != nil {
			return doc, labelled(ListExperience, err)
		}
		next := doc.Clone()
		next.Experience = list
		return next, nil
	}
}

// RemoveExperience drops the experience entry with the given id.
func RemoveExperience(id string) Edit {
	return func(doc types.Document) (types.Document, error) {
		list, err := RemoveByID(doc.Experience, id)
		if err != nil {
			return doc, labelled(ListExperience, err)
		}
		next := doc.Clone()
		next.Experience = list
		return next, nil
	}
}

// ApplyDescription writes an enhanced description into the experience entry with
// the given id. An entry removed while the text was being produced leaves the
// document unchanged.
func ApplyDescription(id, description string) Edit {
	return func(doc types.Document) (types.Document, error) {
		if IndexOf(doc.Experience, id) < 0 {
			return doc, nil
		}
		return UpdateExperience(id, types.FieldDescription, description)(doc)
	}
}

// AddEducation appends e under a freshly generated id.
func AddEducation(e types.Education) Edit {
	return func(doc types.Document) (types.Document, error) {
		e.ID = NewID()
		next := doc.Clone()
		next.Education = Append(doc.Education, e)
		return next, nil
	}
}

// UpdateEducation replaces one field of the education entry with the given id.
func UpdateEducation(id, field, value string) Edit {
	return func(doc types.Document) (types.Document, error) {
		list, err := UpdateByID(doc.Education, id, func(e types.Education) (types.Education, error) {
			return e.SetField(field, value)
		})
		if err != nil {
			return doc, labelled(ListEducation, err)
		}
		next := doc.Clone()
		next.Education = list
		return next, nil
	}
}

// RemoveEducation drops the education entry with the given id.
func RemoveEducation(id string) Edit {
	return func(doc types.Document) (types.Document, error) {
		list, err := RemoveByID(doc.Education, id)
		if err != nil {
			return doc, labelled(ListEducation, err)
		}
		next := doc.Clone()
		next.Education = list
		return next, nil
	}
}

// AddSkill appends s under a freshly generated id. A blank level becomes Intermediate.
func AddSkill(s types.Skill) Edit {
	return func(doc types.Document) (types.Document, error) {
		s.ID = NewID()
		if s.Level == "" {
			s.Level = types.LevelIntermediate
		}
		next := doc.Clone()
		next.Skills = Append(doc.Skills, s)
		return next, nil
	}
}

// UpdateSkill replaces one field of the skill with the given id.
func UpdateSkill(id, field, value string) Edit {
	return func(doc types.Document) (types.Document, error) {
		list, err := UpdateByID(doc.Skills, id, func(s types.Skill) (types.Skill, error) {
			return s.SetField(field, value)
		})
		if err != nil {
			return doc, labelled(ListSkills, err)
		}
		next := doc.Clone()
		next.Skills = list
		return next, nil
	}
}

// RemoveSkill drops the skill with the given id.
func RemoveSkill(id string) Edit {
	return func(doc types.Document) (types.Document, error) {
		list, err := RemoveByID(doc.Skills, id)
		if err != nil {
			return doc, labelled(ListSkills, err)
		}
		next := doc.Clone()
		next.Skills = list
		return next, nil
	}
}

// MergeSkills appends every suggested name not already present, comparing names
// case-insensitively against existing skills and earlier names of the batch.
// New skills get the Intermediate level.
func MergeSkills(names []string) Edit {
	return func(doc types.Document) (types.Document, error) {
		seen := make(map[string]struct{}, len(doc.Skills)+len(names))
		for _, s := range doc.Skills {
			seen[strings.ToLower(s.Name)] = struct{}{}
		}
		next := doc.Clone()
		for _, name := range names {
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			next.Skills = append(next.Skills, types.Skill{ID: NewID(), Name: name, Level: types.LevelIntermediate})
		}
		return next, nil
	}
}

// AddEntry appends a blank entry to the named list.
func AddEntry(list List) Edit {
	switch list {
	case ListExperience:
		return AddExperience(types.Experience{})
	case ListEducation:
		return AddEducation(types.Education{})
	case ListSkills:
		return AddSkill(types.Skill{})
	}
	return unknownList(list)
}

// UpdateEntry replaces one field of the entry with the given id in the named list.
func UpdateEntry(list List, id, field, value string) Edit {
	switch list {
	case ListExperience:
		return UpdateExperience(id, field, value)
	case ListEducation:
		return UpdateEducation(id, field, value)
	case ListSkills:
		return UpdateSkill(id, field, value)
	}
	return unknownList(list)
}

// RemoveEntry drops the entry with the given id from the named list.
func RemoveEntry(list List, id string) Edit {
	switch list {
	case ListExperience:
		return RemoveExperience(id)
	case ListEducation:
		return RemoveEducation(id)
	case ListSkills:
		return RemoveSkill(id)
	}
	return unknownList(list)
}

// EntryIDAt resolves an index of the named list in doc to the entry's id.
func EntryIDAt(doc types.Document, list List, index int) (string, error) {
	var (
		id  string
		err error
	)
	switch list {
	case ListExperience:
		id, err = IDAt(doc.Experience, index)
	case ListEducation:
		id, err = IDAt(doc.Education, index)
	case ListSkills:
		id, err = IDAt(doc.Skills, index)
	default:
		return "", fmt.Errorf("unknown list %q", list)
	}
	return id, labelled(list, err)
}

func unknownList(list List) Edit {
	return func(doc types.Document) (types.Document, error) {
		return doc, fmt.Errorf("unknown list %q", list)
	}
}

// SetThemeColor switches the accent color. Only palette colors are accepted.
func SetThemeColor(color string) Edit {
	return func(doc types.Document) (types.Document, error) {
		if !types.InPalette(color) {
			return doc, &types.FieldError{Entity: "document", Field: "themeColor", Message: fmt.Sprintf("%q is not in the palette", color)}
		}
		next := doc.Clone()
		next.ThemeColor = strings.ToLower(color)
		return next, nil
	}
}

// SetDensity selects the layout density.
func SetDensity(density types.Density) Edit {
	return func(doc types.Document) (types.Document, error) {
		if density != types.DensityCompact && density != types.DensityComfortable {
			return doc, &types.FieldError{Entity: "document", Field: "layoutDensity", Message: fmt.Sprintf("invalid density %q", density)}
		}
		next := doc.Clone()
		next.LayoutDensity = density
		return next, nil
	}
}

// ToggleDensity flips between compact and comfortable.
func ToggleDensity() Edit {
	return func(doc types.Document) (types.Document, error) {
		if doc.LayoutDensity == types.DensityCompact {
			return SetDensity(types.DensityComfortable)(doc)
		}
		return SetDensity(types.DensityCompact)(doc)
	}
}
