package core

// StopSignal is a non-nil stop decision returned by a termination condition.
// Reason is a human-readable explanation suitable for RunResult.StopReason.
type StopSignal struct {
	Reason string `json:"reason"`
}

// Condition is the contract every termination condition satisfies.
//
// Check consumes only the messages produced since the previous Check call (the
// delta), never the full history. Re-submitting already-seen messages breaks
// the incremental contract and causes miscounts. Check returns a non-nil
// StopSignal when the condition's criterion is met by the delta combined with
// prior internal state, and (nil, nil) otherwise.
//
// Once a condition has fired, calling Check again without an intervening Reset
// is a programming error and returns ErrConditionMisuse.
type Condition interface {
	// Check evaluates the delta against the condition's accumulated state.
	Check(delta []Message) (*StopSignal, error)

	// Reset clears all internal state, returning the condition to its
	// pristine pre-first-call configuration. Reset is idempotent.
	Reset()

	// Fired reports whether a stop decision has been issued since the last
	// Reset, without mutating state.
	Fired() bool
}
