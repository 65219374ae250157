package optimization

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"github.com/artem13815/resume-optimizer/pkg/llm"
	"github.com/artem13815/resume-optimizer/pkg/nlp"
)

const (
	optimizeInputChars  = 3000
	optimizeMaxTokens   = 4000
	optimizeTemperature = 0.7
	fallbackScore       = 0.5
)

var errNoJSON = errors.New("no JSON object in model reply")

const optimizeSystem = "You are an expert resume writer and career coach. Return only valid JSON."

const optimizePromptFmt = `Optimize the resume below for the job posting.

Guidelines:
1. Highlight experience and skills that are relevant to the posting.
2. Use keywords from the job posting where they truthfully apply.
3. Stay truthful: only reorganize and emphasize existing content, never invent experience.
4. Follow resume best practices: clear sections, strong action verbs, quantified results.

Job posting:
%s

Resume:
%s

Respond with a JSON object with exactly these fields:
{
  "optimized_resume": "the full optimized resume text",
  "suggestions": ["short, actionable suggestion", "..."],
  "match_score": 0.0
}
match_score is a number between 0 and 1 describing how well the resume matches the posting.
Return only valid JSON.`

const replySchemaJSON = `{
  "type": "object",
  "required": ["optimized_resume", "suggestions", "match_score"],
  "properties": {
    "optimized_resume": {"type": "string"},
    "suggestions": {"type": "array", "items": {"type": "string"}},
    "match_score": {"type": "number"}
  }
}`

var replySchema = mustSchema(replySchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile reply schema: %v", err))
	}
	return s
}

// Optimizer просит LLM подогнать резюме под вакансию. Ошибок не возвращает:
// любой сбой превращается в деградированный Outcome с исходным резюме.
type Optimizer struct {
	llm    llm.Client
	logger logrus.FieldLogger
}

func NewOptimizer(client llm.Client, logger logrus.FieldLogger) *Optimizer {
	return &Optimizer{llm: client, logger: logger}
}

func (o *Optimizer) Optimize(ctx context.Context, jobText, resumeText string) Outcome {
	reply, err := o.llm.Invoke(ctx, llm.Request{
		System:      optimizeSystem,
		Prompt:      fmt.Sprintf(optimizePromptFmt, nlp.Truncate(jobText, optimizeInputChars), nlp.Truncate(resumeText, optimizeInputChars)),
		MaxTokens:   optimizeMaxTokens,
		Temperature: optimizeTemperature,
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			o.logger.Warn("llm not configured, returning fallback optimization")
			return fallback(resumeText, missingCredentialsSuggestions(), err)
		}
		o.logger.WithError(err).Warn("llm call failed, returning fallback optimization")
		return fallback(resumeText, serviceErrorSuggestions(err), err)
	}

	res, err := parseReply(reply)
	if err != nil {
		o.logger.WithError(err).WithField("reply_chars", len(reply)).Warn("unusable llm reply, returning fallback optimization")
		return fallback(resumeText, parseErrorSuggestions(err), err)
	}
	return Outcome{Result: repair(res, resumeText)}
}

func parseReply(reply string) (Result, error) {
	obj, ok := ExtractJSONObject(reply)
	if !ok {
		return Result{}, errNoJSON
	}
	v, err := replySchema.Validate(gojsonschema.NewStringLoader(obj))
	if err != nil {
		return Result{}, fmt.Errorf("decode reply: %w", err)
	}
	if !v.Valid() {
		msgs := make([]string, 0, len(v.Errors()))
		for _, e := range v.Errors() {
			msgs = append(msgs, e.String())
		}
		return Result{}, fmt.Errorf("reply does not match schema: %s", strings.Join(msgs, "; "))
	}
	var res Result
	if err := json.Unmarshal([]byte(obj), &res); err != nil {
		return Result{}, fmt.Errorf("decode reply: %w", err)
	}
	return res, nil
}

// repair доводит прошедший схему ответ до инвариантов Result.
func repair(res Result, original string) Result {
	if strings.TrimSpace(res.OptimizedResume) == "" {
		res.OptimizedResume = original
	}
	res.MatchScore = normalizeScore(res.MatchScore)
	suggestions := res.Suggestions[:0]
	for _, s := range res.Suggestions {
		if s = strings.TrimSpace(s); s != "" {
			suggestions = append(suggestions, s)
		}
	}
	if len(suggestions) == 0 {
		suggestions = []string{"Review the job requirements and align your resume with them"}
	}
	res.Suggestions = suggestions
	return res
}

func normalizeScore(v float64) float64 {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fallbackScore
	case v > 1 && v <= 100:
		// модель ответила в процентах
		v /= 100
	}
	return math.Max(0, math.Min(1, v))
}

func fallback(original string, suggestions []string, cause error) Outcome {
	return Outcome{
		Result: Result{
			OptimizedResume: original,
			Suggestions:     suggestions,
			MatchScore:      fallbackScore,
		},
		Degraded: true,
		Cause:    cause,
	}
}

func missingCredentialsSuggestions() []string {
	return []string{
		"Add an LLM API key (OPENROUTER_API_KEY or ANTHROPIC_API_KEY) to the .env file for AI-powered optimization",
		"Review job requirements and align your skills",
		"Highlight relevant experience",
		"Use keywords from the job posting",
	}
}

func parseErrorSuggestions(err error) []string {
	return []string{
		"AI response parsing error",
		"Please review job requirements manually",
		"Consider adding keywords from the job posting",
		"JSON Error: " + err.Error(),
	}
}

func serviceErrorSuggestions(err error) []string {
	return []string{
		"Could not connect to the LLM service",
		"Please check the LLM API key and permissions",
		"Ensure the configured model is available to your account",
		"Error: " + err.Error(),
	}
}
