package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/internal/testutil"
)

func TestTextMentionFiresOnFirstMatch(t *testing.T) {
	cond := NewTextMention("TERMINATE")

	sig, err := cond.Check(testutil.Messages("a", "still working"))
	require.NoError(t, err)
	assert.Nil(t, sig)

	delta := []core.Message{
		core.NewMessage("a", "almost there"),
		core.NewMessage("b", "ok, TERMINATE now"),
		core.NewMessage("c", "TERMINATE too"),
	}
	sig, err = cond.Check(delta)
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, `"TERMINATE" mentioned by b`, sig.Reason)
}

func TestTextMentionNoPartialMatchCarryover(t *testing.T) {
	cond := NewTextMention("TERMINATE")

	// The token split across two deltas must not match.
	sig, err := cond.Check(testutil.Messages("a", "TERMI"))
	require.NoError(t, err)
	assert.Nil(t, sig)

	sig, err = cond.Check(testutil.Messages("a", "NATE"))
	require.NoError(t, err)
	assert.Nil(t, sig)
	assert.False(t, cond.Fired())
}

func TestTextMentionCaseSensitive(t *testing.T) {
	cond := NewTextMention("TERMINATE")

	sig, err := cond.Check(testutil.Messages("a", "terminate"))
	require.NoError(t, err)
	assert.Nil(t, sig)
}

func TestTextMentionSubstring(t *testing.T) {
	cond := NewTextMention("DONE")

	sig, err := cond.Check(testutil.Messages("a", "all is well, DONE."))
	require.NoError(t, err)
	assert.NotNil(t, sig)
}

func TestTextMentionMisuseAndReset(t *testing.T) {
	cond := NewTextMention("DONE")

	sig, err := cond.Check(testutil.Messages("a", "DONE"))
	require.NoError(t, err)
	require.NotNil(t, sig)

	_, err = cond.Check(testutil.Messages("a", "DONE"))
	require.ErrorIs(t, err, core.ErrConditionMisuse)

	cond.Reset()
	sig, err = cond.Check(testutil.Messages("a", "DONE"))
	require.NoError(t, err)
	assert.NotNil(t, sig)
}
