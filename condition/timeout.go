package condition

import (
	"fmt"
	"time"

	"github.com/hupe1980/roundtable/core"
)

// Timeout fires on the first Check at or after a configured duration has
// elapsed since the first Check following construction or reset. The clock
// only advances when the condition is checked; a run that produces no turns
// never triggers it.
type Timeout struct {
	state
	limit time.Duration
	start time.Time
	now   func() time.Time
}

// NewTimeout creates a condition that fires once limit has elapsed.
func NewTimeout(limit time.Duration) *Timeout {
	return &Timeout{limit: limit, now: time.Now}
}

// Check implements core.Condition.
func (c *Timeout) Check(delta []core.Message) (*core.StopSignal, error) {
	if err := c.guard("timeout"); err != nil {
		return nil, err
	}
	return c.evaluate(delta), nil
}

func (c *Timeout) checkRelaxed(delta []core.Message) (*core.StopSignal, error) {
	if c.fired {
		return nil, nil
	}
	return c.evaluate(delta), nil
}

func (c *Timeout) evaluate([]core.Message) *core.StopSignal {
	if c.start.IsZero() {
		c.start = c.now()
	}
	if elapsed := c.now().Sub(c.start); elapsed >= c.limit {
		return c.fire(fmt.Sprintf("conversation exceeded time limit of %s", c.limit))
	}
	return nil
}

// Reset implements core.Condition.
func (c *Timeout) Reset() {
	c.fired = false
	c.start = time.Time{}
}
