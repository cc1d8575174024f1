package core

import (
	"time"

	"github.com/google/uuid"
)

// Message is the immutable unit of communication between conversation
// participants. After emission it belongs to the run log and must not be
// mutated. IsStopRequest marks a message through which the sending agent asks
// the conversation to end; the scheduler treats it purely as data and only the
// active termination condition interprets it.
type Message struct {
	ID            string    `json:"id"`
	Sender        string    `json:"sender"`
	Content       string    `json:"content"`
	IsStopRequest bool      `json:"is_stop_request,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewMessage creates a message authored by sender with a fresh id and a UTC
// timestamp.
func NewMessage(sender, content string) Message {
	return Message{
		ID:        NewID(),
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// NewStopRequestMessage creates a message flagged as a stop request.
func NewStopRequestMessage(sender, content string) Message {
	m := NewMessage(sender, content)
	m.IsStopRequest = true
	return m
}

// NewID generates a unique identifier for messages and runs.
func NewID() string { return uuid.NewString() }
