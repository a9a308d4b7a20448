// Package llm - extractor.go describes structured JSON responses and builds
// prompts that ask for them.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the JSON object a prompt asks the model to return.
type ExtractionSchema struct {
	Name         string        // Schema name (e.g., "Summary", "VoiceIntent")
	Description  string        // Preamble describing the task
	Fields       []SchemaField // Expected output fields
	Instructions []string      // Extra rules appended after the structure
}

// SchemaField defines a single field in the response object.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[\"string\"]", "{...}"
	Description string // Description for the model
	Required    bool
}

// BuildExtractionPrompt constructs the prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "\"string\""
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	for _, rule := range schema.Instructions {
		sb.WriteString("- ")
		sb.WriteString(rule)
		sb.WriteString("\n")
	}
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---
// The task description comes from the prompts package so wording can change
// without touching the response structure.

// EnhanceDescriptionSchema asks for a rewritten job description.
func EnhanceDescriptionSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "EnhanceDescription",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "improvedDescription",
				Type:        "\"string\"",
				Description: "The rewritten description, bullet points separated by newlines",
				Required:    true,
			},
		},
		Instructions: []string{
			"Use strong action verbs and keep every fact from the original.",
			"Do not invent metrics, employers or technologies.",
		},
	}
}

// SummarySchema asks for a professional summary paragraph.
func SummarySchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "Summary",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "summary",
				Type:        "\"string\"",
				Description: "The summary paragraph",
				Required:    true,
			},
		},
		Instructions: []string{
			"Write in the first person without using the word \"I\".",
			"Focus on the target role and the listed experience and skills.",
		},
	}
}

// SkillsSchema asks for a short list of skills for a job title.
func SkillsSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "Skills",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Skill names, each one to three words",
				Required:    true,
			},
		},
	}
}

// VoiceIntentSchema asks the model to classify a spoken resume command.
func VoiceIntentSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "VoiceIntent",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "intent",
				Type:        "\"UPDATE_PERSONAL\" | \"ADD_EXPERIENCE\" | \"ADD_EDUCATION\" | \"ADD_SKILL\" | \"UNKNOWN\"",
				Description: "The classified intent",
				Required:    true,
			},
			{
				Name:        "data",
				Type:        "{\"field\": \"value\"}",
				Description: "Only the fields the user actually mentioned",
				Required:    false,
			},
		},
		Instructions: []string{
			"Omit fields the user did not mention; never fill in placeholders.",
		},
	}
}
