package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/resume-optimizer/pkg/llm"
)

const defaultModel = "claude-3-5-sonnet-latest"

// Client реализует llm.Client поверх Anthropic Messages API.
type Client struct {
	client     anthropic.Client
	model      string
	configured bool
	logger     logrus.FieldLogger
}

var _ llm.Client = (*Client)(nil)

func New(apiKey, model string, logger logrus.FieldLogger) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithRequestTimeout(60*time.Second),
		),
		model:      model,
		configured: apiKey != "",
		logger:     logger,
	}
}

func (c *Client) Invoke(ctx context.Context, req llm.Request) (string, error) {
	if !c.configured {
		return "", fmt.Errorf("anthropic: %w", llm.ErrNotConfigured)
	}
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: req.Prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	c.logger.WithFields(logrus.Fields{
		"model":         c.model,
		"input_tokens":  msg.Usage.InputTokens,
		"output_tokens": msg.Usage.OutputTokens,
		"stop_reason":   msg.StopReason,
		"duration":      time.Since(start),
	}).Debug("anthropic completion")
	return b.String(), nil
}
