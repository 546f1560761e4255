package storage

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("storage: repository is closed")

// Memory is an in-memory Repository used by unit tests and available as a
// throwaway backend. It implements the same wholesale semantics as the
// SQLite repository.
type Memory struct {
	types       []ActivityType
	completions []Completion
	closed      bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadActivityTypes(ctx context.Context) ([]ActivityType, error) {
	if m.closed {
		return nil, ErrClosed
	}
	out := make([]ActivityType, len(m.types))
	copy(out, m.types)
	return out, nil
}

func (m *Memory) ReplaceActivityTypes(ctx context.Context, in []ActivityType) error {
	if m.closed {
		return ErrClosed
	}
	m.types = make([]ActivityType, len(in))
	copy(m.types, in)
	return nil
}

func (m *Memory) LoadCompletions(ctx context.Context) ([]Completion, error) {
	if m.closed {
		return nil, ErrClosed
	}
	out := make([]Completion, len(m.completions))
	copy(out, m.completions)
	return out, nil
}

func (m *Memory) ReplaceCompletions(ctx context.Context, in []Completion) error {
	if m.closed {
		return ErrClosed
	}
	m.completions = make([]Completion, len(in))
	copy(m.completions, in)
	return nil
}

func (m *Memory) Close() error {
	m.closed = true
	return nil
}
