package condition

import (
	"fmt"

	"github.com/hupe1980/roundtable/core"
)

// MaxMessageCount fires when the cumulative number of messages seen across
// all Check calls since the last reset reaches a threshold.
type MaxMessageCount struct {
	state
	max   int
	count int
}

// NewMaxMessageCount creates a condition that fires once max messages have
// been observed. Thresholds below 1 are clamped to 1.
func NewMaxMessageCount(max int) *MaxMessageCount {
	if max < 1 {
		max = 1
	}
	return &MaxMessageCount{max: max}
}

// Check implements core.Condition.
func (c *MaxMessageCount) Check(delta []core.Message) (*core.StopSignal, error) {
	if err := c.guard("max message count"); err != nil {
		return nil, err
	}
	return c.evaluate(delta), nil
}

func (c *MaxMessageCount) checkRelaxed(delta []core.Message) (*core.StopSignal, error) {
	if c.fired {
		return nil, nil
	}
	return c.evaluate(delta), nil
}

func (c *MaxMessageCount) evaluate(delta []core.Message) *core.StopSignal {
	c.count += len(delta)
	if c.count >= c.max {
		return c.fire(fmt.Sprintf("maximum number of messages reached: %d of %d", c.count, c.max))
	}
	return nil
}

// Reset implements core.Condition.
func (c *MaxMessageCount) Reset() {
	c.fired = false
	c.count = 0
}
