package condition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/roundtable/core"
)

// compositeChildren is implemented by combinators so tree validation can
// descend into nested compositions. Foreign conditions are treated as leaves.
type compositeChildren interface {
	children() []core.Condition
}

// validateTree rejects child graphs that are not trees. A condition reachable
// through more than one path (shared child, or a combinator containing itself
// as a descendant) violates exclusive ownership and is reported as
// core.ErrCyclicComposition.
func validateTree(roots []core.Condition) error {
	seen := make(map[core.Condition]struct{})

	var walk func(c core.Condition) error
	walk = func(c core.Condition) error {
		if c == nil {
			return errors.New("combinator child must not be nil")
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("condition %T appears more than once: %w", c, core.ErrCyclicComposition)
		}
		seen[c] = struct{}{}
		if cc, ok := c.(compositeChildren); ok {
			for _, child := range cc.children() {
				if err := walk(child); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, root := range roots {
		if err := walk(root); err != nil {
			return err
		}
	}
	return nil
}

// And fires only once every child has independently fired. Each Check feeds
// the same delta to all children; already-fired children are tolerated and
// recorded but never re-triggered. The signal joins all children's reasons in
// construction order and is returned on the call where the last remaining
// child fires.
type And struct {
	state
	conds   []core.Condition
	done    []bool
	reasons []string
}

// NewAnd creates an And combinator owning the given children. The children
// must form a tree: sharing a child between combinators or nesting a
// combinator inside itself is rejected with core.ErrCyclicComposition.
func NewAnd(conds ...core.Condition) (*And, error) {
	if len(conds) == 0 {
		return nil, errors.New("and combinator requires at least one child")
	}
	if err := validateTree(conds); err != nil {
		return nil, fmt.Errorf("and combinator: %w", err)
	}
	return &And{
		conds:   conds,
		done:    make([]bool, len(conds)),
		reasons: make([]string, len(conds)),
	}, nil
}

func (a *And) children() []core.Condition { return a.conds }

// Check implements core.Condition.
func (a *And) Check(delta []core.Message) (*core.StopSignal, error) {
	if err := a.guard("and combinator"); err != nil {
		return nil, err
	}
	return a.evaluate(delta)
}

func (a *And) checkRelaxed(delta []core.Message) (*core.StopSignal, error) {
	if a.fired {
		return nil, nil
	}
	return a.evaluate(delta)
}

func (a *And) evaluate(delta []core.Message) (*core.StopSignal, error) {
	allDone := true
	for i, child := range a.conds {
		sig, err := checkChild(child, delta)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			a.done[i] = true
			a.reasons[i] = sig.Reason
		}
		if !a.done[i] {
			allDone = false
		}
	}
	if !allDone {
		return nil, nil
	}
	return a.fire(strings.Join(a.reasons, "; ")), nil
}

// Reset implements core.Condition. All children are reset unconditionally
// before the combinator's own bookkeeping is cleared.
func (a *And) Reset() {
	for _, child := range a.conds {
		child.Reset()
	}
	a.fired = false
	for i := range a.done {
		a.done[i] = false
		a.reasons[i] = ""
	}
}

// Or fires as soon as any child fires. Evaluation short-circuits at the first
// firing child, and ties on the same delta resolve deterministically to the
// child constructed first; the reported reason is that child's reason.
type Or struct {
	state
	conds []core.Condition
}

// NewOr creates an Or combinator owning the given children. The same tree
// constraints as NewAnd apply.
func NewOr(conds ...core.Condition) (*Or, error) {
	if len(conds) == 0 {
		return nil, errors.New("or combinator requires at least one child")
	}
	if err := validateTree(conds); err != nil {
		return nil, fmt.Errorf("or combinator: %w", err)
	}
	return &Or{conds: conds}, nil
}

func (o *Or) children() []core.Condition { return o.conds }

// Check implements core.Condition.
func (o *Or) Check(delta []core.Message) (*core.StopSignal, error) {
	if err := o.guard("or combinator"); err != nil {
		return nil, err
	}
	return o.evaluate(delta)
}

func (o *Or) checkRelaxed(delta []core.Message) (*core.StopSignal, error) {
	if o.fired {
		return nil, nil
	}
	return o.evaluate(delta)
}

func (o *Or) evaluate(delta []core.Message) (*core.StopSignal, error) {
	for _, child := range o.conds {
		sig, err := checkChild(child, delta)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return o.fire(sig.Reason), nil
		}
	}
	return nil, nil
}

// Reset implements core.Condition. All children are reset unconditionally.
func (o *Or) Reset() {
	for _, child := range o.conds {
		child.Reset()
	}
	o.fired = false
}
