package condition

import (
	"fmt"

	"github.com/hupe1980/roundtable/core"
)

// state carries the fired bookkeeping shared by every condition in this
// package. Embed it and use guard/fire around the variant's own criterion.
type state struct {
	fired bool
}

// Fired reports whether the condition has issued a stop decision since the
// last reset.
func (s *state) Fired() bool { return s.fired }

// guard enforces the top-level misuse rule: a fired condition must be reset
// before it may be checked again.
func (s *state) guard(name string) error {
	if s.fired {
		return fmt.Errorf("%s: %w", name, core.ErrConditionMisuse)
	}
	return nil
}

// fire records the stop decision and builds the signal.
func (s *state) fire(reason string) *core.StopSignal {
	s.fired = true
	return &core.StopSignal{Reason: reason}
}

// relaxedChecker is the internal evaluation path combinators use on their
// children. Unlike Check, a relaxed check on an already-fired condition is not
// a misuse fault: it yields no signal and leaves the child's state untouched,
// so a composite can keep feeding the same delta to all children after some
// have individually fired.
type relaxedChecker interface {
	checkRelaxed(delta []core.Message) (*core.StopSignal, error)
}

// checkChild evaluates a combinator child against a delta. Conditions from
// this package go through the relaxed path; foreign core.Condition
// implementations fall back to the public Check, skipped once fired.
func checkChild(child core.Condition, delta []core.Message) (*core.StopSignal, error) {
	if rc, ok := child.(relaxedChecker); ok {
		return rc.checkRelaxed(delta)
	}
	if child.Fired() {
		return nil, nil
	}
	return child.Check(delta)
}
