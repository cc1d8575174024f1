package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/model"
)

// ModelAgent bridges a language model into a conversation participant. Each
// turn it hands the run history to the model and emits the generated text as
// a single message. When a stop marker is configured and appears in the
// output, the emitted message is tagged as a stop request so a StopRequested
// condition can end the run.
type ModelAgent struct {
	name         string
	model        model.Model
	instructions string
	stopMarker   string
}

// ModelAgentOption customizes a ModelAgent.
type ModelAgentOption func(a *ModelAgent)

// WithInstructions sets the system-level instructions sent with every turn.
func WithInstructions(instructions string) ModelAgentOption {
	return func(a *ModelAgent) { a.instructions = instructions }
}

// WithStopMarker tags produced messages as stop requests when the model
// output contains marker as a substring.
func WithStopMarker(marker string) ModelAgentOption {
	return func(a *ModelAgent) { a.stopMarker = marker }
}

// NewModelAgent creates a model-backed participant.
func NewModelAgent(name string, m model.Model, optFns ...ModelAgentOption) *ModelAgent {
	a := &ModelAgent{name: name, model: m}
	for _, fn := range optFns {
		fn(a)
	}
	return a
}

// Name implements core.Agent.
func (a *ModelAgent) Name() string { return a.name }

// ProduceTurn implements core.Agent.
func (a *ModelAgent) ProduceTurn(ctx context.Context, tc *core.TurnContext) ([]core.Message, error) {
	resp, err := a.model.Generate(ctx, model.Request{
		Instructions: a.instructions,
		Self:         a.name,
		History:      tc.History,
	})
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", a.model.Info().Name, err)
	}

	msg := core.NewMessage(a.name, resp.Text)
	if a.stopMarker != "" && strings.Contains(resp.Text, a.stopMarker) {
		msg.IsStopRequest = true
	}

	return []core.Message{msg}, nil
}
