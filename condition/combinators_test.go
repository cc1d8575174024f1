package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/internal/testutil"
)

func TestAndFiresWhenLastChildFires(t *testing.T) {
	// MaxMessageCount(2) fires before TextMention("DONE").
	count := NewMaxMessageCount(2)
	mention := NewTextMention("DONE")
	cond, err := NewAnd(count, mention)
	require.NoError(t, err)

	sig, err := cond.Check(testutil.Messages("a", "one", "two"))
	require.NoError(t, err)
	assert.Nil(t, sig, "and must not fire while a child is outstanding")
	assert.True(t, count.Fired())
	assert.False(t, cond.Fired())

	sig, err = cond.Check(testutil.Messages("a", "three"))
	require.NoError(t, err)
	assert.Nil(t, sig)

	sig, err = cond.Check(testutil.Messages("b", "DONE"))
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, `maximum number of messages reached: 2 of 2; "DONE" mentioned by b`, sig.Reason)
	assert.True(t, cond.Fired())
}

func TestAndFiresWhenLastChildFiresReversedOrder(t *testing.T) {
	// TextMention fires first this time; reasons still join in construction order.
	count := NewMaxMessageCount(3)
	mention := NewTextMention("DONE")
	cond, err := NewAnd(count, mention)
	require.NoError(t, err)

	sig, err := cond.Check(testutil.Messages("a", "DONE"))
	require.NoError(t, err)
	assert.Nil(t, sig)
	assert.True(t, mention.Fired())

	sig, err = cond.Check(testutil.Messages("a", "two", "three"))
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, `maximum number of messages reached: 3 of 3; "DONE" mentioned by a`, sig.Reason)
}

func TestAndFiresWhenAllChildrenFireOnSameDelta(t *testing.T) {
	count := NewMaxMessageCount(1)
	mention := NewTextMention("DONE")
	cond, err := NewAnd(count, mention)
	require.NoError(t, err)

	sig, err := cond.Check(testutil.Messages("a", "DONE"))
	require.NoError(t, err)
	require.NotNil(t, sig)
}

func TestOrFiresOnFirstChild(t *testing.T) {
	count := NewMaxMessageCount(5)
	mention := NewTextMention("DONE")
	cond, err := NewOr(count, mention)
	require.NoError(t, err)

	sig, err := cond.Check(testutil.Messages("a", "working"))
	require.NoError(t, err)
	assert.Nil(t, sig)

	sig, err = cond.Check(testutil.Messages("a", "DONE"))
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, `"DONE" mentioned by a`, sig.Reason)
	assert.True(t, cond.Fired())
}

func TestOrTieBreaksByConstructionOrder(t *testing.T) {
	// Both children fire on the same delta; the first-constructed child wins.
	first := NewTextMention("DONE")
	second := NewMaxMessageCount(1)
	cond, err := NewOr(first, second)
	require.NoError(t, err)

	sig, err := cond.Check(testutil.Messages("a", "DONE"))
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, `"DONE" mentioned by a`, sig.Reason)
}

func TestOrShortCircuits(t *testing.T) {
	first := NewMaxMessageCount(1)
	second := NewMaxMessageCount(3)
	cond, err := NewOr(first, second)
	require.NoError(t, err)

	sig, err := cond.Check(testutil.Messages("a", "msg"))
	require.NoError(t, err)
	require.NotNil(t, sig)

	// The second child never saw the delta.
	assert.False(t, second.Fired())
}

func TestCombinatorMisuse(t *testing.T) {
	orCond, err := NewOr(NewMaxMessageCount(1))
	require.NoError(t, err)

	_, err = orCond.Check(testutil.Messages("a", "msg"))
	require.NoError(t, err)

	_, err = orCond.Check(testutil.Messages("a", "msg"))
	require.ErrorIs(t, err, core.ErrConditionMisuse)

	andCond, err := NewAnd(NewMaxMessageCount(1))
	require.NoError(t, err)

	_, err = andCond.Check(testutil.Messages("a", "msg"))
	require.NoError(t, err)

	_, err = andCond.Check(testutil.Messages("a", "msg"))
	require.ErrorIs(t, err, core.ErrConditionMisuse)
}

func TestCombinatorResetResetsChildren(t *testing.T) {
	count := NewMaxMessageCount(1)
	mention := NewTextMention("DONE")
	cond, err := NewOr(count, mention)
	require.NoError(t, err)

	_, err = cond.Check(testutil.Messages("a", "msg"))
	require.NoError(t, err)
	require.True(t, count.Fired())

	cond.Reset()
	cond.Reset() // idempotent
	assert.False(t, cond.Fired())
	assert.False(t, count.Fired())
	assert.False(t, mention.Fired())

	// Fresh cycle behaves like construction.
	sig, err := cond.Check(testutil.Messages("a", "msg"))
	require.NoError(t, err)
	assert.NotNil(t, sig)
}

func TestAndResetClearsPartialCompletion(t *testing.T) {
	count := NewMaxMessageCount(1)
	mention := NewTextMention("DONE")
	cond, err := NewAnd(count, mention)
	require.NoError(t, err)

	_, err = cond.Check(testutil.Messages("a", "msg"))
	require.NoError(t, err)
	require.True(t, count.Fired())

	cond.Reset()

	// The previously satisfied child must be outstanding again.
	sig, err := cond.Check(testutil.Messages("a", "DONE again"))
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Contains(t, sig.Reason, "maximum number of messages reached: 1 of 1")
}

func TestCombinatorsNestRecursively(t *testing.T) {
	inner, err := NewAnd(NewMaxMessageCount(2), NewStopRequested())
	require.NoError(t, err)
	outer, err := NewOr(inner, NewTextMention("ABORT"))
	require.NoError(t, err)

	sig, err := outer.Check([]core.Message{core.NewStopRequestMessage("a", "halting")})
	require.NoError(t, err)
	assert.Nil(t, sig)

	sig, err = outer.Check(testutil.Messages("b", "second message"))
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, "maximum number of messages reached: 2 of 2; stop requested by a", sig.Reason)
}

func TestCombinatorRejectsSharedChild(t *testing.T) {
	shared := NewMaxMessageCount(3)

	_, err := NewAnd(shared, shared)
	require.ErrorIs(t, err, core.ErrCyclicComposition)

	inner, err := NewOr(shared)
	require.NoError(t, err)

	// Sharing through a nested combinator is rejected too.
	_, err = NewAnd(inner, shared)
	require.ErrorIs(t, err, core.ErrCyclicComposition)
}

func TestCombinatorRejectsNilAndEmptyChildren(t *testing.T) {
	_, err := NewAnd()
	require.Error(t, err)

	_, err = NewOr()
	require.Error(t, err)

	_, err = NewAnd(NewStopRequested(), nil)
	require.Error(t, err)
}

// staleCondition is a core.Condition from outside this package: it has no
// relaxed check path, so combinators must skip it once it reports fired.
type staleCondition struct {
	fired bool
}

func (s *staleCondition) Check(delta []core.Message) (*core.StopSignal, error) {
	if s.fired {
		return nil, core.ErrConditionMisuse
	}
	if len(delta) > 0 {
		s.fired = true
		return &core.StopSignal{Reason: "stale"}, nil
	}
	return nil, nil
}

func (s *staleCondition) Reset()      { s.fired = false }
func (s *staleCondition) Fired() bool { return s.fired }

func TestAndToleratesForeignFiredChild(t *testing.T) {
	foreign := &staleCondition{}
	mention := NewTextMention("DONE")
	cond, err := NewAnd(foreign, mention)
	require.NoError(t, err)

	_, err = cond.Check(testutil.Messages("a", "msg"))
	require.NoError(t, err)
	require.True(t, foreign.Fired())

	// Subsequent checks must not re-invoke the fired foreign child.
	sig, err := cond.Check(testutil.Messages("a", "DONE"))
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, `stale; "DONE" mentioned by a`, sig.Reason)
}
