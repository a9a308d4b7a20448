package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Page geometry of the preview (A4 portrait).
const (
	PageWidth  = "210mm"
	PageHeight = "297mm"
)

// Header placeholders shown before the user has typed anything.
const (
	PlaceholderName  = "Your Name"
	PlaceholderTitle = "Professional Title"
)

// SectionKind identifies a preview section.
type SectionKind string

// Sections in their fixed display order.
const (
	SectionProfile    SectionKind = "profile"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
)

// Options are the presentation parameters that are not stored on the document.
type Options struct {
	Zoom     float64
	ForPrint bool
}

// VisualTree is the laid-out preview of a document.
type VisualTree struct {
	Width      string
	MinHeight  string
	Scale      float64 // always 1 for print trees
	ForPrint   bool
	ThemeColor string
	Density    types.Density
	Tokens     Tokens
	Header     Header
	Primary    []Section
	Secondary  []Section
}

// Header is the name block at the top of the page.
type Header struct {
	Name     string
	Title    string
	Contacts []Contact
}

// Contact is one item of the contact line. Href is empty for plain text items.
type Contact struct {
	Kind string // email, phone, city, link
	Text string
	Href string
}

// Section is one titled block of the preview.
type Section struct {
	Kind    SectionKind
	Title   string
	Icon    string
	Text    string   // profile summary
	Entries []Entry  // experience and education
	Tags    []string // skill names
}

// Entry is one experience or education item.
type Entry struct {
	ID      string
	Heading string
	Dates   string
	SubLine string
	Aside   string
	Badge   string
	Body    string
}

// Render lays out doc. It is a pure function of its arguments: the same document
// and options always produce the same tree. Zoom only affects the interactive
// view; print trees are unscaled so page breaks can be computed.
func Render(doc types.Document, opts Options) *VisualTree {
	scale := 1.0
	if !opts.ForPrint {
		scale = ClampZoom(opts.Zoom)
	}

	tree := &VisualTree{
		Width:      PageWidth,
		MinHeight:  PageHeight,
		Scale:      scale,
		ForPrint:   opts.ForPrint,
		ThemeColor: doc.ThemeColor,
		Density:    doc.LayoutDensity,
		Tokens:     TokensFor(doc.LayoutDensity),
		Header:     renderHeader(doc.PersonalInfo),
	}

	if doc.PersonalInfo.Summary != "" {
		tree.Primary = append(tree.Primary, Section{
			Kind:  SectionProfile,
			Title: "Profile",
			Icon:  "user",
			Text:  doc.PersonalInfo.Summary,
		})
	}
	if len(doc.Experience) > 0 {
		tree.Primary = append(tree.Primary, experienceSection(doc.Experience))
	}
	if len(doc.Education) > 0 {
		tree.Primary = append(tree.Primary, educationSection(doc.Education))
	}
	if len(doc.Skills) > 0 {
		tags := make([]string, 0, len(doc.Skills))
		for _, s := range doc.Skills {
			tags = append(tags, s.Name)
		}
		tree.Secondary = append(tree.Secondary, Section{
			Kind:  SectionSkills,
			Title: "Skills",
			Icon:  "tools",
			Tags:  tags,
		})
	}

	return tree
}

func renderHeader(info types.PersonalInfo) Header {
	h := Header{Name: info.FullName, Title: info.JobTitle}
	if h.Name == "" {
		h.Name = PlaceholderName
	}
	if h.Title == "" {
		h.Title = PlaceholderTitle
	}
	if info.Email != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "email", Text: info.Email, Href: "mailto:" + info.Email})
	}
	if info.Phone != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "phone", Text: info.Phone})
	}
	if info.City != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "city", Text: info.City})
	}
	if info.Link != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "link", Text: info.Link, Href: SafeLink(info.Link)})
	}
	return h
}

func experienceSection(list []types.Experience) Section {
	s := Section{Kind: SectionExperience, Title: "Experience", Icon: "briefcase"}
	for _, e := range list {
		s.Entries = append(s.Entries, Entry{
			ID:      e.ID,
			Heading: e.JobTitle,
			Dates:   DateRange(e.StartDate, e.EndDate),
			SubLine: e.Company,
			Aside:   e.City,
			Body:    e.Description,
		})
	}
	return s
}

func educationSection(list []types.Education) Section {
	s := Section{Kind: SectionEducation, Title: "Education", Icon: "graduation-cap"}
	for _, e := range list {
		entry := Entry{
			ID:      e.ID,
			Heading: e.School,
			Dates:   DateRange(e.StartDate, e.EndDate),
			SubLine: e.Degree,
			Aside:   e.City,
			Body:    e.Description,
		}
		if e.Grade != "" {
			entry.Badge = "Grade: " + e.Grade
		}
		s.Entries = append(s.Entries, entry)
	}
	return s
}

// DateRange joins two opaque date strings; neither is parsed, so values such as
// "Present" pass through.
func DateRange(start, end string) string {
	return start + " - " + end
}

// SafeLink returns the hyperlink target for a user-entered link, assuming https
// when no http(s) scheme is present. The displayed text is never changed.
func SafeLink(link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return "https://" + link
}

// Section returns the section of the given kind, or nil when it is not rendered.
func (t *VisualTree) Section(kind SectionKind) *Section {
	for _, column := range [][]Section{t.Primary, t.Secondary} {
		for i := range column {
			if column[i].Kind == kind {
				return &column[i]
			}
		}
	}
	return nil
}
