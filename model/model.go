package model

import (
	"context"
	"errors"

	"github.com/hupe1980/roundtable/core"
)

// Request captures the normalized model input produced by a conversation
// agent. Instructions is the system-level prompt; History is the run log so
// far. Self identifies the requesting participant so adapters can map its own
// prior messages to the assistant role.
type Request struct {
	Instructions string         `json:"instructions,omitempty"`
	Self         string         `json:"self"`
	History      []core.Message `json:"history"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the completed generation for one turn. The scheduler awaits
// each turn before evaluating termination, so generation is synchronous.
type Response struct {
	Text  string      `json:"text"`
	Usage *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required by agents to drive generation.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples. It
// replays scripted responses in order and repeats the last one once the
// script is exhausted.
type MockModel struct {
	Responses []string
	Err       error

	calls int
}

// Generate implements Model, returning the next scripted response.
func (m *MockModel) Generate(_ context.Context, _ Request) (*Response, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Responses) == 0 {
		return nil, errors.New("mock model has no scripted responses")
	}
	idx := m.calls
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	m.calls++
	return &Response{Text: m.Responses[idx]}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info {
	return Info{Name: "mock", Provider: "mock"}
}

// Calls returns how many times Generate has been invoked.
func (m *MockModel) Calls() int { return m.calls }
