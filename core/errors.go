package core

import (
	"errors"
	"fmt"
)

// ErrConditionMisuse signals that Check was called on a condition that has
// already fired without an intervening Reset. This is a programming error in
// the caller, not a recoverable state; a run observing it aborts immediately.
var ErrConditionMisuse = errors.New("condition already fired; reset before reuse")

// ErrCyclicComposition signals that a combinator was constructed with a child
// graph that is not a tree: a condition reachable through two paths, including
// a condition containing itself as a descendant. Detected at construction,
// before any run starts.
var ErrCyclicComposition = errors.New("condition composition is not a tree")

// ErrCancelled signals that a run was aborted by external cancellation between
// turns. It is distinct from condition or agent faults so callers can tell
// "stopped intentionally" from "failed".
var ErrCancelled = errors.New("run cancelled")

// AgentFault wraps an error returned by an agent while producing a turn. The
// core never retries; the run aborts with the partial log preserved.
type AgentFault struct {
	Agent string
	Err   error
}

// Error implements the error interface.
func (f *AgentFault) Error() string {
	return fmt.Sprintf("agent %s failed to produce turn: %v", f.Agent, f.Err)
}

// Unwrap exposes the underlying agent error for errors.Is / errors.As.
func (f *AgentFault) Unwrap() error { return f.Err }
