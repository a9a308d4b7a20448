// Package observability provides logging, metrics and formatted output for
// verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, part := range fitLine(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, part)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// fitLine breaks line into pieces of at most width runes. Continuation
// pieces are indented two columns past the original line's indent.
func fitLine(line string, width int) []string {
	if len([]rune(line)) <= width {
		return []string{line}
	}
	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	hang := indent + "  "

	var out []string
	current := indent
	for _, word := range strings.Fields(line) {
		for len([]rune(hang))+len([]rune(word)) > width {
			// word alone is wider than a line
			r := []rune(word)
			n := width - len([]rune(hang))
			if strings.TrimSpace(current) != "" {
				out = append(out, current)
			}
			out = append(out, hang+string(r[:n]))
			current, word = hang, string(r[n:])
		}
		switch {
		case strings.TrimSpace(current) == "":
			current += word
		case len([]rune(current))+1+len([]rune(word)) > width:
			out = append(out, current)
			current = hang + word
		default:
			current += " " + word
		}
	}
	if strings.TrimSpace(current) != "" {
		out = append(out, current)
	}
	return out
}

// PrintDocument outputs a human-readable summary of a resume document.
func (p *Printer) PrintDocument(doc types.Document) {
	var sb strings.Builder

	name := doc.PersonalInfo.FullName
	if name == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if doc.PersonalInfo.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", doc.PersonalInfo.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Theme:    %s (%s)\n", doc.ThemeColor, doc.LayoutDensity))
	sb.WriteString("\n")

	if len(doc.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(doc.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := doc.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s (%s - %s)\n", e.JobTitle, e.Company, e.StartDate, e.EndDate))
		}
		if len(doc.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(doc.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, e := range doc.Education {
			sb.WriteString(fmt.Sprintf("  • %s\n", e.School))
			if e.Degree != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", e.Degree))
			}
		}
		sb.WriteString("\n")
	}

	if len(doc.Skills) > 0 {
		names := make([]string, 0, len(doc.Skills))
		for _, s := range doc.Skills {
			names = append(names, s.Name)
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", strings.Join(names, ", ")))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs suggested skill names.
func (p *Printer) PrintSuggestions(title string, items []string) {
	if len(items) == 0 {
		return
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("• %s\n", item))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintText outputs a block of generated text, wrapped to the box width.
func (p *Printer) PrintText(title, text string) {
	if text == "" {
		return
	}
	p.printBox(title, wrap(text, boxWidth-4))
}

func wrap(text string, width int) string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var line string
		for _, word := range strings.Fields(paragraph) {
			switch {
			case line == "":
				line = word
			case len([]rune(line))+1+len([]rune(word)) > width:
				lines = append(lines, line)
				line = word
			default:
				line += " " + word
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
