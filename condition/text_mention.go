package condition

import (
	"fmt"
	"strings"

	"github.com/hupe1980/roundtable/core"
)

// TextMention fires on the first message whose content contains a configured
// token as a case-sensitive substring. No normalization is applied and no
// partial-match state is carried across deltas.
type TextMention struct {
	state
	token string
}

// NewTextMention creates a condition that fires when token appears in a
// message.
func NewTextMention(token string) *TextMention {
	return &TextMention{token: token}
}

// Check implements core.Condition.
func (c *TextMention) Check(delta []core.Message) (*core.StopSignal, error) {
	if err := c.guard("text mention"); err != nil {
		return nil, err
	}
	return c.evaluate(delta), nil
}

func (c *TextMention) checkRelaxed(delta []core.Message) (*core.StopSignal, error) {
	if c.fired {
		return nil, nil
	}
	return c.evaluate(delta), nil
}

func (c *TextMention) evaluate(delta []core.Message) *core.StopSignal {
	for _, m := range delta {
		if strings.Contains(m.Content, c.token) {
			return c.fire(fmt.Sprintf("%q mentioned by %s", c.token, m.Sender))
		}
	}
	return nil
}

// Reset implements core.Condition.
func (c *TextMention) Reset() {
	c.fired = false
}
