package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, doc types.Document, opts Options) *goquery.Document {
	t.Helper()
	page, err := HTML(doc, opts)
	require.NoError(t, err)
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return parsed
}

func TestHTML_ExperienceScenario(t *testing.T) {
	page := parseHTML(t, docWithExperience(), Options{Zoom: 1})

	exp := page.Find(`section[data-section="experience"]`)
	require.Equal(t, 1, exp.Length())
	assert.Equal(t, "Engineer", exp.Find(".heading").First().Text())
	assert.Equal(t, "Acme", exp.Find(".subline").First().Text())
	assert.Equal(t, 0, page.Find(`section[data-section="education"]`).Length())
}

func TestHTML_Demo(t *testing.T) {
	page := parseHTML(t, types.Demo(), Options{Zoom: 0.9})

	assert.Equal(t, "Pratima Singh", page.Find("h1.name").Text())
	assert.Equal(t, 5, page.Find(".secondary .tag").Length())
	assert.Equal(t, "Grade: 3.9 GPA", page.Find(".badge").Text())

	link := page.Find("a.contact-link")
	href, _ := link.Attr("href")
	assert.Equal(t, "https://linkedin.com/in/pratima-singh", href)
	assert.Equal(t, "linkedin.com/in/pratima-singh", link.Text())

	mail, _ := page.Find("a.contact-email").Attr("href")
	assert.Equal(t, "mailto:pratima.singh@example.com", mail)
}

func TestHTML_ScaleOnlyOnInteractive(t *testing.T) {
	interactive, err := HTML(types.Demo(), Options{Zoom: 0.7})
	require.NoError(t, err)
	assert.Contains(t, interactive, "scale(0.7)")

	print1, err := HTML(types.Demo(), Options{Zoom: 0.7, ForPrint: true})
	require.NoError(t, err)
	print2, err := HTML(types.Demo(), Options{Zoom: 1.3, ForPrint: true})
	require.NoError(t, err)
	assert.NotContains(t, print1, "scale(")
	assert.Equal(t, print1, print2)
	assert.Contains(t, print1, "resume-pdf-target")
}

func TestHTML_EscapesUserText(t *testing.T) {
	doc := types.Empty()
	doc.PersonalInfo.FullName = `<script>alert(1)</script>`

	page, err := HTML(doc, Options{})
	require.NoError(t, err)
	assert.NotContains(t, page, "<script>alert(1)</script>")
}

func TestWriteHTML_NilTree(t *testing.T) {
	var sb strings.Builder
	err := WriteHTML(&sb, nil)

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}
