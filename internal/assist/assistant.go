package assist

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// Operation names used in logs and metrics.
const (
	OpEnhance = "enhance"
	OpSummary = "summary"
	OpSkills  = "skills"
)

// minEnhanceLength is the shortest description worth sending to the model.
const minEnhanceLength = 5

// Observer receives one event per model call.
type Observer interface {
	ObserveAssist(operation, outcome string, d time.Duration)
}

// Assistant performs AI text assist calls. A zero timeout means the client's
// own timeout applies.
type Assistant struct {
	client   llm.Client
	tier     llm.ModelTier
	timeout  time.Duration
	logger   *zap.Logger
	observer Observer
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithTimeout bounds every call. An expired call is an ordinary failure.
func WithTimeout(d time.Duration) Option {
	return func(a *Assistant) { a.timeout = d }
}

// WithLogger sets the logger used for failed calls.
func WithLogger(l *zap.Logger) Option {
	return func(a *Assistant) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithObserver records call outcomes, typically into metrics.
func WithObserver(o Observer) Option {
	return func(a *Assistant) { a.observer = o }
}

// WithTier selects the model tier used for all calls.
func WithTier(tier llm.ModelTier) Option {
	return func(a *Assistant) { a.tier = tier }
}

// New returns an Assistant backed by client. A nil client yields a disabled
// assistant.
func New(client llm.Client, opts ...Option) *Assistant {
	a := &Assistant{
		client:  client,
		tier:    llm.TierStandard,
		timeout: llm.DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Disabled returns an assistant without a model. Its operations return the
// fallback values and never make a call.
func Disabled() *Assistant {
	return New(nil)
}

// Available reports whether a model is configured. Callers hide AI triggers
// when it is false.
func (a *Assistant) Available() bool {
	return a != nil && a.client != nil
}

// EnhanceDescription returns an improved version of a job description. Text
// shorter than five characters is returned unchanged without a call, as is the
// input on any failure.
func (a *Assistant) EnhanceDescription(ctx context.Context, text string) string {
	if len(text) < minEnhanceLength || !a.Available() {
		return text
	}

	schema := llm.EnhanceDescriptionSchema(prompts.MustGet("assist.json", "enhance-description"))
	type response struct {
		ImprovedDescription string `json:"improvedDescription"`
	}
	resp, err := call[response](ctx, a, OpEnhance, llm.BuildExtractionPrompt(schema, text))
	if err != nil {
		return text
	}
	improved := strings.TrimSpace(resp.ImprovedDescription)
	if improved == "" {
		a.fail(OpEnhance, &APICallError{Operation: OpEnhance, Message: "empty improvedDescription"})
		return text
	}
	return improved
}

// GenerateSummary drafts a profile summary from the document's name, target
// role, experience and skills. It returns "" on failure.
func (a *Assistant) GenerateSummary(ctx context.Context, doc types.Document) string {
	if !a.Available() {
		return ""
	}

	input := prompts.Format(prompts.MustGet("assist.json", "summary-context"), SummaryContext(doc))
	schema := llm.SummarySchema(prompts.MustGet("assist.json", "generate-summary"))
	type response struct {
		Summary string `json:"summary"`
	}
	resp, err := call[response](ctx, a, OpSummary, llm.BuildExtractionPrompt(schema, input))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(resp.Summary)
}

// SuggestSkills proposes skill names for a job title. A blank title returns an
// empty list without a call, as does any failure. Blank names are dropped.
func (a *Assistant) SuggestSkills(ctx context.Context, jobTitle string) []string {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" || !a.Available() {
		return []string{}
	}

	input := prompts.Format(prompts.MustGet("assist.json", "skills-context"), map[string]string{"JobTitle": jobTitle})
	schema := llm.SkillsSchema(prompts.MustGet("assist.json", "suggest-skills"))
	type response struct {
		Skills []string `json:"skills"`
	}
	resp, err := call[response](ctx, a, OpSkills, llm.BuildExtractionPrompt(schema, input))
	if err != nil {
		return []string{}
	}

	skills := make([]string, 0, len(resp.Skills))
	for _, s := range resp.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// SummaryContext builds the template data for the summary prompt.
func SummaryContext(doc types.Document) map[string]string {
	jobs := make([]string, 0, len(doc.Experience))
	for _, e := range doc.Experience {
		jobs = append(jobs, e.JobTitle+" at "+e.Company)
	}
	skills := make([]string, 0, len(doc.Skills))
	for _, s := range doc.Skills {
		skills = append(skills, s.Name)
	}
	return map[string]string{
		"Name":       doc.PersonalInfo.FullName,
		"Role":       doc.PersonalInfo.JobTitle,
		"Experience": strings.Join(jobs, ", "),
		"Skills":     strings.Join(skills, ", "),
	}
}

// call runs one JSON generation under the assistant's timeout and decodes the
// response into T.
func call[T any](ctx context.Context, a *Assistant, op, prompt string) (T, error) {
	var zero T
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := a.client.GenerateJSON(ctx, prompt, a.tier)
	if err != nil {
		err = &APICallError{Operation: op, Message: "model call failed", Cause: err}
		a.observe(op, outcome(err), start)
		a.fail(op, err)
		return zero, err
	}

	out, err := llm.DecodeJSON[T](raw)
	if err != nil {
		err = &APICallError{Operation: op, Message: "malformed response", Cause: err}
		a.observe(op, "malformed", start)
		a.fail(op, err)
		return zero, err
	}
	a.observe(op, "ok", start)
	return out, nil
}

func outcome(err error) string {
	switch {
	case llm.IsBreakerOpen(err):
		return "rejected"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}

func (a *Assistant) observe(op, outcome string, start time.Time) {
	if a.observer != nil {
		a.observer.ObserveAssist(op, outcome, time.Since(start))
	}
}

func (a *Assistant) fail(op string, err error) {
	a.logger.Warn("assist call failed, using fallback", zap.String("operation", op), zap.Error(err))
}
