package optimization

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-optimizer/pkg/llm"
)

const resumeText = "5 years Python, AWS"

func TestOptimize_ValidReply(t *testing.T) {
	model := &fakeLLM{reply: "Here you go:\n```json\n" +
		`{"optimized_resume":"Python and AWS engineer, 5 years","suggestions":["Mention Docker"],"match_score":0.72}` +
		"\n```"}

	out := NewOptimizer(model, quietLogger()).Optimize(context.Background(), "needs Python, AWS, Docker", resumeText)

	require.False(t, out.Degraded)
	assert.NoError(t, out.Cause)
	assert.Equal(t, "Python and AWS engineer, 5 years", out.Result.OptimizedResume)
	assert.Equal(t, []string{"Mention Docker"}, out.Result.Suggestions)
	assert.InDelta(t, 0.72, out.Result.MatchScore, 1e-9)

	require.Len(t, model.reqs, 1)
	assert.Equal(t, 4000, model.reqs[0].MaxTokens)
	assert.InDelta(t, 0.7, model.reqs[0].Temperature, 1e-9)
}

func TestOptimize_TruncatesInputs(t *testing.T) {
	model := &fakeLLM{err: errors.New("boom")}
	job := strings.Repeat("j", 4000)
	res := strings.Repeat("r", 4000)

	NewOptimizer(model, quietLogger()).Optimize(context.Background(), job, res)

	require.Len(t, model.reqs, 1)
	p := model.reqs[0].Prompt
	assert.Contains(t, p, strings.Repeat("j", 3000))
	assert.NotContains(t, p, strings.Repeat("j", 3001))
	assert.NotContains(t, p, strings.Repeat("r", 3001))
}

func TestOptimize_Repairs(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		wantScore float64
		wantSugg  []string
		wantText  string
	}{
		{
			name:      "percent score",
			reply:     `{"optimized_resume":"x","suggestions":["a"],"match_score":85}`,
			wantScore: 0.85, wantSugg: []string{"a"}, wantText: "x",
		},
		{
			name:      "score above 100 clamps",
			reply:     `{"optimized_resume":"x","suggestions":["a"],"match_score":250}`,
			wantScore: 1, wantSugg: []string{"a"}, wantText: "x",
		},
		{
			name:      "negative score clamps",
			reply:     `{"optimized_resume":"x","suggestions":["a"],"match_score":-0.3}`,
			wantScore: 0, wantSugg: []string{"a"}, wantText: "x",
		},
		{
			name:      "empty suggestions",
			reply:     `{"optimized_resume":"x","suggestions":["  "],"match_score":0.4}`,
			wantScore: 0.4,
			wantSugg:  []string{"Review the job requirements and align your resume with them"},
			wantText:  "x",
		},
		{
			name:      "empty resume keeps original",
			reply:     `{"optimized_resume":"","suggestions":["a"],"match_score":0.4}`,
			wantScore: 0.4, wantSugg: []string{"a"}, wantText: resumeText,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOptimizer(&fakeLLM{reply: tt.reply}, quietLogger()).Optimize(context.Background(), "job", resumeText)
			require.False(t, out.Degraded)
			assert.InDelta(t, tt.wantScore, out.Result.MatchScore, 1e-9)
			assert.Equal(t, tt.wantSugg, out.Result.Suggestions)
			assert.Equal(t, tt.wantText, out.Result.OptimizedResume)
		})
	}
}

func TestOptimize_Fallbacks(t *testing.T) {
	tests := []struct {
		name       string
		model      *fakeLLM
		wantFirst  string
		wantDetail string
	}{
		{
			name:      "not configured",
			model:     &fakeLLM{err: llm.ErrNotConfigured},
			wantFirst: "Add an LLM API key (OPENROUTER_API_KEY or ANTHROPIC_API_KEY) to the .env file for AI-powered optimization",
		},
		{
			name:       "service error",
			model:      &fakeLLM{err: errors.New("openrouter http 502: map[]")},
			wantFirst:  "Could not connect to the LLM service",
			wantDetail: "Error: openrouter http 502: map[]",
		},
		{
			name:       "no json",
			model:      &fakeLLM{reply: "Sorry, I can't do that."},
			wantFirst:  "AI response parsing error",
			wantDetail: "JSON Error: no JSON object in model reply",
		},
		{
			name:       "invalid json",
			model:      &fakeLLM{reply: `{"optimized_resume": oops}`},
			wantFirst:  "AI response parsing error",
			wantDetail: "JSON Error: decode reply",
		},
		{
			name:       "schema mismatch",
			model:      &fakeLLM{reply: `{"optimized_resume":"x","suggestions":"one","match_score":"high"}`},
			wantFirst:  "AI response parsing error",
			wantDetail: "JSON Error: reply does not match schema",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOptimizer(tt.model, quietLogger()).Optimize(context.Background(), "job", resumeText)
			require.True(t, out.Degraded)
			assert.Error(t, out.Cause)
			assert.Equal(t, resumeText, out.Result.OptimizedResume)
			assert.Equal(t, 0.5, out.Result.MatchScore)
			require.NotEmpty(t, out.Result.Suggestions)
			assert.Equal(t, tt.wantFirst, out.Result.Suggestions[0])
			if tt.wantDetail != "" {
				last := out.Result.Suggestions[len(out.Result.Suggestions)-1]
				assert.True(t, strings.HasPrefix(last, tt.wantDetail), last)
			}
		})
	}
}

func TestNormalizeScore_AlwaysInRange(t *testing.T) {
	for _, v := range []float64{-5, 0, 0.3, 1, 1.5, 99, 100, 101, 1e9} {
		got := normalizeScore(v)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}
