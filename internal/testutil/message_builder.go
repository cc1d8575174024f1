package testutil

import (
	"time"

	"github.com/hupe1980/roundtable/core"
)

// MessageBuilder provides a fluent helper for constructing messages in tests.
// Example:
//
//	msg := NewMessageBuilder().Sender("agent").Content("hello").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type MessageBuilder struct {
	sender      string
	content     string
	stopRequest bool
	timestamp   time.Time
}

// NewMessageBuilder creates a builder with default sender "agent".
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{sender: "agent"}
}

// Sender sets the sender name (chainable).
func (b *MessageBuilder) Sender(s string) *MessageBuilder { b.sender = s; return b }

// Content sets the message content (chainable).
func (b *MessageBuilder) Content(c string) *MessageBuilder { b.content = c; return b }

// StopRequest marks the message as a stop request (chainable).
func (b *MessageBuilder) StopRequest() *MessageBuilder { b.stopRequest = true; return b }

// At overrides the auto-generated timestamp (chainable).
func (b *MessageBuilder) At(t time.Time) *MessageBuilder { b.timestamp = t; return b }

// Build materializes the message.
func (b *MessageBuilder) Build() core.Message {
	msg := core.NewMessage(b.sender, b.content)
	msg.IsStopRequest = b.stopRequest
	if !b.timestamp.IsZero() {
		msg.Timestamp = b.timestamp
	}
	return msg
}

// Messages builds one message per content string, all from the same sender.
func Messages(sender string, contents ...string) []core.Message {
	msgs := make([]core.Message, 0, len(contents))
	for _, c := range contents {
		msgs = append(msgs, core.NewMessage(sender, c))
	}
	return msgs
}
