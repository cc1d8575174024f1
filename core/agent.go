package core

import "context"

// TurnContext carries the read-only view of the conversation an agent receives
// when asked to produce its next turn. History is a snapshot of the run log up
// to and including the previous turn; agents must treat it as immutable.
type TurnContext struct {
	// RunID identifies the conversation run this turn belongs to.
	RunID string

	// Task is the initial task text the run was started with.
	Task string

	// History is the ordered run log so far, including the seeded task
	// message.
	History []Message
}

// LastMessage returns the most recent message in the history, or a zero
// Message if the history is empty.
func (tc *TurnContext) LastMessage() Message {
	if len(tc.History) == 0 {
		return Message{}
	}
	return tc.History[len(tc.History)-1]
}

// Agent is a conversation participant. ProduceTurn may be a long-latency
// operation (e.g. a model call); the scheduler awaits its completion before
// evaluating termination. Returning zero messages is valid and means the agent
// passes its turn.
type Agent interface {
	// Name returns the participant identifier used as Message.Sender.
	Name() string

	// ProduceTurn generates the agent's next zero-or-more messages given the
	// conversation so far.
	ProduceTurn(ctx context.Context, tc *TurnContext) ([]Message, error)
}
