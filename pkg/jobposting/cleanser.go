package jobposting

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/artem13815/resume-optimizer/pkg/llm"
	"github.com/artem13815/resume-optimizer/pkg/nlp"
)

const (
	cleanseInputChars    = 8000
	cleanseFallbackChars = 5000
	cleanseMaxTokens     = 2000
	cleanseTemperature   = 0.1
)

const cleanseSystem = "You extract job postings from scraped web pages. Reply with the cleaned posting text only, no commentary."

const cleansePromptFmt = `Below is text scraped from a job posting page. It contains the posting plus unrelated page content.

Remove:
- equal opportunity employer statements and other legal disclaimers
- disability and accommodation statements
- cookie notices and privacy banners
- navigation menus, headers and footers
- generic company marketing unrelated to the role

Keep:
- job title
- job description
- required qualifications and skills
- responsibilities
- nice-to-have qualifications
- salary and benefits
- location
- job type (full-time, contract, remote, etc.)

Scraped text:
%s`

// LLMCleanser просит LLM убрать из скрапнутого текста всё лишнее.
type LLMCleanser struct {
	llm    llm.Client
	logger logrus.FieldLogger
}

func NewLLMCleanser(client llm.Client, logger logrus.FieldLogger) *LLMCleanser {
	return &LLMCleanser{llm: client, logger: logger}
}

func (c *LLMCleanser) Cleanse(ctx context.Context, raw string) string {
	reply, err := c.llm.Invoke(ctx, llm.Request{
		System:      cleanseSystem,
		Prompt:      fmt.Sprintf(cleansePromptFmt, nlp.Truncate(raw, cleanseInputChars)),
		MaxTokens:   cleanseMaxTokens,
		Temperature: cleanseTemperature,
	})
	if err != nil {
		c.logger.WithError(err).Warn("cleanse failed, using truncated raw text")
		return nlp.Truncate(raw, cleanseFallbackChars)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		c.logger.Warn("cleanse returned empty reply, using truncated raw text")
		return nlp.Truncate(raw, cleanseFallbackChars)
	}
	return reply
}
