package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/logging"
)

// UserSender is the sender recorded for the seeded initial task message.
const UserSender = "user"

// State describes the scheduler lifecycle of a Chat.
type State int

const (
	// StateIdle means no run is in progress.
	StateIdle State = iota
	// StateRunning means a run is actively selecting participants.
	StateRunning
	// StateCompleted means the last run stopped because the termination
	// condition fired.
	StateCompleted
	// StateFaulted means the last run aborted on a fault or cancellation.
	StateFaulted
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFaulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// RunResult is the ephemeral outcome of one conversation run. Log always
// contains every message appended up to completion or the fault point.
type RunResult struct {
	RunID      string         `json:"run_id"`
	Task       string         `json:"task"`
	Log        []core.Message `json:"log"`
	StopReason string         `json:"stop_reason,omitempty"`
	State      State          `json:"state"`
}

// Archiver receives terminal run results. Implementations must copy what they
// retain; the scheduler hands over its own result value.
type Archiver interface {
	Archive(res *RunResult) error
}

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Logger receives scheduler lifecycle and turn events.
	Logger logging.Logger
	// Archive, when set, receives every terminal RunResult.
	Archive Archiver
}

// WithLogger overrides the default NoOp logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// WithArchive registers an archive for terminal run results.
func WithArchive(a Archiver) func(o *Options) {
	return func(o *Options) { o.Archive = a }
}

// Chat orchestrates turn-taking among a fixed, ordered set of participants
// and enforces termination via a caller-supplied condition. The condition is
// not owned by the Chat: after a completed run it is left in fired state for
// the caller to inspect and reset. A Chat runs one conversation at a time;
// independent concurrent runs need independent Chat and condition instances.
type Chat struct {
	participants []core.Agent
	condition    core.Condition
	logger       logging.Logger
	archive      Archiver

	mu    sync.Mutex
	state State
}

// New constructs a Chat. Every conversation must be paired with a bounding
// termination condition; a nil condition or empty participant list is
// rejected.
func New(condition core.Condition, participants []core.Agent, optFns ...func(o *Options)) (*Chat, error) {
	if condition == nil {
		return nil, errors.New("chat requires a termination condition")
	}
	if len(participants) == 0 {
		return nil, errors.New("chat requires at least one participant")
	}
	for i, p := range participants {
		if p == nil {
			return nil, fmt.Errorf("participant %d is nil", i)
		}
	}

	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Chat{
		participants: participants,
		condition:    condition,
		logger:       opts.Logger,
		archive:      opts.Archive,
	}, nil
}

// State returns the current scheduler state.
func (c *Chat) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run executes one conversation from the initial task until the termination
// condition fires or a fault occurs. The task text is seeded as the first log
// entry and evaluated against the condition before any participant takes a
// turn. Participant ordering is fixed for the duration of the run.
//
// On completion the returned error is nil and RunResult.StopReason carries the
// condition's reason. On fault the partial log is still returned alongside a
// non-nil error: core.ErrConditionMisuse, *core.AgentFault or
// core.ErrCancelled, inspectable via errors.Is / errors.As.
func (c *Chat) Run(ctx context.Context, task string) (*RunResult, error) {
	if err := c.begin(); err != nil {
		return nil, err
	}

	res := &RunResult{
		RunID: core.NewID(),
		Task:  task,
	}

	c.logger.Info("run started", "run_id", res.RunID, "participants", len(c.participants))

	// The initial task is message one of the log and counts toward the
	// termination condition like any other message.
	seed := core.NewMessage(UserSender, task)
	res.Log = append(res.Log, seed)

	sig, err := c.condition.Check([]core.Message{seed})
	if err != nil {
		return c.fault(res, err)
	}
	if sig != nil {
		return c.complete(res, sig)
	}

	for turn := 0; ; turn++ {
		// Cooperative cancellation, observed between turns only.
		select {
		case <-ctx.Done():
			return c.fault(res, fmt.Errorf("%w: %v", core.ErrCancelled, ctx.Err()))
		default:
		}

		participant := c.participants[turn%len(c.participants)]

		tc := &core.TurnContext{
			RunID:   res.RunID,
			Task:    task,
			History: append([]core.Message(nil), res.Log...),
		}

		delta, err := participant.ProduceTurn(ctx, tc)
		if err != nil {
			return c.fault(res, &core.AgentFault{Agent: participant.Name(), Err: err})
		}

		for i := range delta {
			if delta[i].Sender == "" {
				delta[i].Sender = participant.Name()
			}
		}
		res.Log = append(res.Log, delta...)

		c.logger.Debug("turn completed",
			"run_id", res.RunID,
			"agent", participant.Name(),
			"messages", len(delta),
			"log_size", len(res.Log),
		)

		sig, err := c.condition.Check(delta)
		if err != nil {
			return c.fault(res, err)
		}
		if sig != nil {
			return c.complete(res, sig)
		}
	}
}

// begin transitions Idle/Completed/Faulted -> Running. A Chat may be reused
// for a new run once the previous one reached a terminal state, provided the
// caller has reset the condition.
func (c *Chat) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateRunning {
		return errors.New("chat run already in progress")
	}
	c.state = StateRunning
	return nil
}

// complete records the stop decision and leaves the condition fired for
// caller inspection.
func (c *Chat) complete(res *RunResult, sig *core.StopSignal) (*RunResult, error) {
	res.StopReason = sig.Reason
	res.State = StateCompleted

	c.mu.Lock()
	c.state = StateCompleted
	c.mu.Unlock()

	c.logger.Info("run completed",
		"run_id", res.RunID,
		"stop_reason", sig.Reason,
		"log_size", len(res.Log),
	)

	c.archiveResult(res)

	return res, nil
}

// fault aborts the run immediately, preserving the partial log.
func (c *Chat) fault(res *RunResult, err error) (*RunResult, error) {
	res.State = StateFaulted

	c.mu.Lock()
	c.state = StateFaulted
	c.mu.Unlock()

	c.logger.Error("run faulted",
		"run_id", res.RunID,
		"error", err,
		"log_size", len(res.Log),
	)

	c.archiveResult(res)

	return res, err
}

func (c *Chat) archiveResult(res *RunResult) {
	if c.archive == nil {
		return
	}
	if err := c.archive.Archive(res); err != nil {
		c.logger.Warn("failed to archive run", "run_id", res.RunID, "error", err)
	}
}
