// Package roundtable provides a high-level façade over the chat scheduler and
// the condition algebra, enabling rapid construction of multi-participant
// conversations with composable termination. Most applications interact with
// this package by:
//  1. Building a termination condition (condition package or config YAML)
//  2. Creating a Roundtable via New() with its participants
//  3. Calling Run() per conversation, resetting the condition between runs
//
// The façade delegates orchestration to chat.Chat while keeping setup and
// usage ergonomics concise. Defaults are safe for local development and
// testing; production setups typically supply a structured logger and a
// transcript archive.
package roundtable

import (
	"context"

	"github.com/hupe1980/roundtable/chat"
	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/logging"
)

// Options configures the Roundtable instance.
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
	// Archive receives terminal run results (optional)
	Archive chat.Archiver
}

// WithLogger overrides the default NoOp logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// WithArchive registers an archive for terminal run results.
func WithArchive(a chat.Archiver) func(o *Options) {
	return func(o *Options) { o.Archive = a }
}

// Roundtable is the high-level façade aggregating the scheduler and its
// collaborators.
type Roundtable struct {
	chat      *chat.Chat
	condition core.Condition
}

// New creates a Roundtable for the given condition and participants.
func New(condition core.Condition, participants []core.Agent, optFns ...func(o *Options)) (*Roundtable, error) {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	chatOpts := []func(o *chat.Options){chat.WithLogger(opts.Logger)}
	if opts.Archive != nil {
		chatOpts = append(chatOpts, chat.WithArchive(opts.Archive))
	}

	c, err := chat.New(condition, participants, chatOpts...)
	if err != nil {
		return nil, err
	}

	return &Roundtable{chat: c, condition: condition}, nil
}

// Run executes one conversation for the given task.
func (r *Roundtable) Run(ctx context.Context, task string) (*chat.RunResult, error) {
	return r.chat.Run(ctx, task)
}

// RunFresh resets the termination condition and then executes a conversation.
// Use it when reusing a Roundtable across independent runs.
func (r *Roundtable) RunFresh(ctx context.Context, task string) (*chat.RunResult, error) {
	r.condition.Reset()
	return r.chat.Run(ctx, task)
}

// Condition returns the active termination condition, e.g. to inspect Fired()
// after a run.
func (r *Roundtable) Condition() core.Condition { return r.condition }
