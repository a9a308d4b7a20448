package voice

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
)

// Classifier maps a final transcript to a Command.
type Classifier interface {
	Classify(ctx context.Context, transcript string) (Command, error)
}

// LLMClassifier classifies transcripts with a language model.
type LLMClassifier struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewLLMClassifier creates a classifier backed by client.
func NewLLMClassifier(client llm.Client) *LLMClassifier {
	return &LLMClassifier{client: client, tier: llm.TierLite}
}

type intentResponse struct {
	Intent string          `json:"intent"`
	Data   json.RawMessage `json:"data"`
}

// Classify implements Classifier. An unrecognized intent yields Unknown
// without an error.
func (c *LLMClassifier) Classify(ctx context.Context, transcript string) (Command, error) {
	if c.client == nil {
		return Unknown{Transcript: transcript}, &ClassifyError{Message: "no model configured"}
	}

	input, err := prompts.Render("voice.json", "command-context", map[string]string{"Transcript": transcript})
	if err != nil {
		return Unknown{Transcript: transcript}, &ClassifyError{Message: "missing prompt", Cause: err}
	}
	schema := llm.VoiceIntentSchema(prompts.MustGet("voice.json", "classify-intent"))

	raw, err := c.client.GenerateJSON(ctx, llm.BuildExtractionPrompt(schema, input), c.tier)
	if err != nil {
		return Unknown{Transcript: transcript}, &ClassifyError{Message: "model call failed", Cause: err}
	}

	resp, err := llm.DecodeJSON[intentResponse](raw)
	if err != nil {
		return Unknown{Transcript: transcript}, &ClassifyError{Message: "malformed response", Cause: err}
	}

	cmd, err := DecodeCommand(Intent(resp.Intent), resp.Data)
	if err != nil {
		return Unknown{Transcript: transcript}, err
	}
	if u, ok := cmd.(Unknown); ok {
		u.Transcript = transcript
		return u, nil
	}
	return cmd, nil
}

// DecodeCommand builds the typed command for intent from its JSON data.
// Intent names match case-insensitively. Missing or null data is treated
// as an empty object.
func DecodeCommand(intent Intent, data json.RawMessage) (Command, error) {
	switch Intent(strings.ToUpper(strings.TrimSpace(string(intent)))) {
	case IntentUpdatePersonal:
		return decodeData[UpdatePersonal](data)
	case IntentAddExperience:
		return decodeData[AddExperience](data)
	case IntentAddEducation:
		return decodeData[AddEducation](data)
	case IntentAddSkill:
		return decodeData[AddSkill](data)
	default:
		return Unknown{}, nil
	}
}

func decodeData[T Command](data json.RawMessage) (Command, error) {
	var cmd T
	if len(data) == 0 || string(data) == "null" {
		return cmd, nil
	}
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Unknown{}, &ClassifyError{Message: "invalid command data", Cause: err}
	}
	return cmd, nil
}
