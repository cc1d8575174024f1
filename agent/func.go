package agent

import (
	"context"

	"github.com/hupe1980/roundtable/core"
)

// TurnFunc produces the messages for one turn.
type TurnFunc func(ctx context.Context, tc *core.TurnContext) ([]core.Message, error)

// FuncAgent adapts a closure into a conversation participant. Useful for
// tests, scripted participants and simple rule-based agents.
type FuncAgent struct {
	name string
	fn   TurnFunc
}

// NewFuncAgent creates a participant that delegates each turn to fn.
func NewFuncAgent(name string, fn TurnFunc) *FuncAgent {
	return &FuncAgent{name: name, fn: fn}
}

// Name implements core.Agent.
func (a *FuncAgent) Name() string { return a.name }

// ProduceTurn implements core.Agent.
func (a *FuncAgent) ProduceTurn(ctx context.Context, tc *core.TurnContext) ([]core.Message, error) {
	return a.fn(ctx, tc)
}

// NewEchoAgent creates a participant that replies to the last message with a
// fixed prefix. Intended for examples and tests.
func NewEchoAgent(name, prefix string) *FuncAgent {
	return NewFuncAgent(name, func(_ context.Context, tc *core.TurnContext) ([]core.Message, error) {
		last := tc.LastMessage()
		return []core.Message{core.NewMessage(name, prefix+last.Content)}, nil
	})
}
