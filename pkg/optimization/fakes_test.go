package optimization

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/artem13815/resume-optimizer/pkg/llm"
)

type fakeLLM struct {
	mu      sync.Mutex
	replies map[int]string // keyed by MaxTokens
	reply   string
	err     error
	reqs    []llm.Request
}

func (f *fakeLLM) Invoke(_ context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return "", f.err
	}
	if r, ok := f.replies[req.MaxTokens]; ok {
		return r, nil
	}
	return f.reply, nil
}

type memRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]Record
	err     error
}

func newMemRepo() *memRepo { return &memRepo{records: map[string]Record{}} }

func (m *memRepo) Insert(_ context.Context, rec Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Record{}, m.err
	}
	m.seq++
	rec.ID = fmt.Sprintf("%024x", m.seq)
	m.records[rec.ID] = rec
	return rec, nil
}

func (m *memRepo) List(_ context.Context, skip, limit int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Record
	for _, r := range m.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(id) != 24 {
		return Record{}, ErrInvalidID
	}
	r, ok := m.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return r, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(id) != 24 {
		return ErrInvalidID
	}
	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
