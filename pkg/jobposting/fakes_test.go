package jobposting

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/artem13815/resume-optimizer/pkg/llm"
)

type fakeFetcher struct {
	html  string
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.html, f.err
}

type fakeLLM struct {
	reply string
	err   error
	last  llm.Request
	calls int
}

func (f *fakeLLM) Invoke(_ context.Context, req llm.Request) (string, error) {
	f.calls++
	f.last = req
	return f.reply, f.err
}

type countingCleanser struct {
	calls int
}

func (c *countingCleanser) Cleanse(_ context.Context, raw string) string {
	c.calls++
	return "clean:" + raw[:10]
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
