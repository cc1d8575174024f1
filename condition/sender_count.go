package condition

import (
	"fmt"

	"github.com/hupe1980/roundtable/core"
)

// SenderCount fires when a specific sender has produced a threshold number of
// messages since the last reset. Messages from other senders are ignored.
type SenderCount struct {
	state
	sender string
	max    int
	count  int
}

// NewSenderCount creates a condition that fires once sender has produced max
// messages. Thresholds below 1 are clamped to 1.
func NewSenderCount(sender string, max int) *SenderCount {
	if max < 1 {
		max = 1
	}
	return &SenderCount{sender: sender, max: max}
}

// Check implements core.Condition.
func (c *SenderCount) Check(delta []core.Message) (*core.StopSignal, error) {
	if err := c.guard("sender count"); err != nil {
		return nil, err
	}
	return c.evaluate(delta), nil
}

func (c *SenderCount) checkRelaxed(delta []core.Message) (*core.StopSignal, error) {
	if c.fired {
		return nil, nil
	}
	return c.evaluate(delta), nil
}

func (c *SenderCount) evaluate(delta []core.Message) *core.StopSignal {
	for _, m := range delta {
		if m.Sender != c.sender {
			continue
		}
		c.count++
		if c.count >= c.max {
			return c.fire(fmt.Sprintf("%s has sent %d of %d messages", c.sender, c.count, c.max))
		}
	}
	return nil
}

// Reset implements core.Condition.
func (c *SenderCount) Reset() {
	c.fired = false
	c.count = 0
}
