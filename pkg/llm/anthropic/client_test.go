package anthropic

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-optimizer/pkg/llm"
)

func TestInvoke_NoAPIKey(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	c := New("", "", logger)
	assert.Equal(t, defaultModel, c.model)

	_, err := c.Invoke(context.Background(), llm.Request{Prompt: "hello"})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}
