package condition

import (
	"fmt"

	"github.com/hupe1980/roundtable/core"
)

// StopRequested fires on the first message flagged as a stop request.
type StopRequested struct {
	state
}

// NewStopRequested creates a condition that fires when a participant marks a
// message with IsStopRequest.
func NewStopRequested() *StopRequested {
	return &StopRequested{}
}

// Check implements core.Condition.
func (c *StopRequested) Check(delta []core.Message) (*core.StopSignal, error) {
	if err := c.guard("stop requested"); err != nil {
		return nil, err
	}
	return c.evaluate(delta), nil
}

func (c *StopRequested) checkRelaxed(delta []core.Message) (*core.StopSignal, error) {
	if c.fired {
		return nil, nil
	}
	return c.evaluate(delta), nil
}

func (c *StopRequested) evaluate(delta []core.Message) *core.StopSignal {
	for _, m := range delta {
		if m.IsStopRequest {
			return c.fire(fmt.Sprintf("stop requested by %s", m.Sender))
		}
	}
	return nil
}

// Reset implements core.Condition.
func (c *StopRequested) Reset() {
	c.fired = false
}
