package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument(types.Demo())
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "Pratima Singh")
	assert.Contains(t, output, "Senior Product Designer at TechFlow Solutions")
	assert.Contains(t, output, "California College of the Arts")
	assert.Contains(t, output, "Figma, Prototyping")
}

func TestPrintDocument_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument(types.Empty())
	output := buf.String()

	assert.Contains(t, output, "(no name)")
	assert.NotContains(t, output, "Experience:")
	assert.NotContains(t, output, "Skills:")
}

func TestPrintDocument_TruncatesLongExperienceList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.Empty()
	for i := 0; i < 7; i++ {
		doc.Experience = append(doc.Experience, types.Experience{ID: string(rune('a' + i)), Company: "Acme", JobTitle: "Engineer"})
	}
	p.PrintDocument(doc)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestions("SUGGESTED SKILLS", []string{"Go", "SQL"})

	assert.Contains(t, buf.String(), "SUGGESTED SKILLS")
	assert.Contains(t, buf.String(), "• Go")

	buf.Reset()
	NewPrinter(&buf).PrintSuggestions("SUGGESTED SKILLS", nil)
	assert.Empty(t, buf.String())
}

func TestPrintText_Wraps(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintText("SUMMARY", strings.Repeat("word ", 40))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}

func TestPrintDocument_WrapsLongEntries(t *testing.T) {
	var buf bytes.Buffer
	doc := types.Empty()
	doc.Education = []types.Education{{ID: "1", School: "Rheinisch-Westfälische Technische Hochschule Aachen University", Degree: "MSc"}}
	NewPrinter(&buf).PrintDocument(doc)
	output := buf.String()

	assert.Contains(t, output, "Rheinisch-Westfälische Technische Hochschule Aachen")
	assert.Contains(t, output, "│     University")
	assert.NotContains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
}

func TestFitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"short", "  • Go", []string{"  • Go"}},
		{"hanging indent", "  • alpha beta gamma", []string{"  • alpha", "    beta", "    gamma"}},
		{"long word split", "abcdefghijkl", []string{"  abcdefgh", "  ijkl"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitLine(tt.line, 10))
		})
	}
}
