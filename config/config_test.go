package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/roundtable/condition"
	"github.com/hupe1980/roundtable/internal/testutil"
)

const sampleYAML = `
task: "Summarize the findings"
participants:
  - name: writer
    provider: openai
    model: gpt-4o-mini
    instructions: "You write summaries."
  - name: critic
    provider: anthropic
    stop_marker: TERMINATE
condition:
  type: or
  of:
    - type: max_messages
      count: 20
    - type: and
      of:
        - type: text_mention
          token: TERMINATE
        - type: sender_count
          sender: critic
          count: 2
    - type: timeout
      timeout: 90s
`

func TestLoad(t *testing.T) {
	cfg, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Summarize the findings", cfg.Task)
	require.Len(t, cfg.Participants, 2)
	assert.Equal(t, "writer", cfg.Participants[0].Name)
	assert.Equal(t, "TERMINATE", cfg.Participants[1].StopMarker)
	assert.Equal(t, TypeOr, cfg.Condition.Type)
	require.Len(t, cfg.Condition.Of, 3)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("task: x\nbogus: true\n"))
	require.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(strings.NewReader("task: x\nparticipants: []\ncondition: {type: max_messages, count: 1}\n"))
	require.Error(t, err)

	_, err = Load(strings.NewReader("task: x\nparticipants: [{name: a}]\n"))
	require.Error(t, err)

	_, err = Load(strings.NewReader("task: x\nparticipants: [{provider: openai}]\ncondition: {type: stop_requested}\n"))
	require.Error(t, err)
}

func TestBuildConditionTree(t *testing.T) {
	cfg, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	cond, err := cfg.Condition.Build()
	require.NoError(t, err)
	require.IsType(t, &condition.Or{}, cond)

	// 20 messages trip the max_messages leaf.
	sig, err := cond.Check(testutil.Messages("writer", make([]string, 19)...))
	require.NoError(t, err)
	assert.Nil(t, sig)

	sig, err = cond.Check(testutil.Messages("writer", "one more"))
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Contains(t, sig.Reason, "20 of 20")
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  ConditionConfig
	}{
		{"unknown type", ConditionConfig{Type: "nope"}},
		{"max_messages without count", ConditionConfig{Type: TypeMaxMessages}},
		{"text_mention without token", ConditionConfig{Type: TypeTextMention}},
		{"sender_count without sender", ConditionConfig{Type: TypeSenderCount, Count: 1}},
		{"sender_count without count", ConditionConfig{Type: TypeSenderCount, Sender: "a"}},
		{"timeout with bad duration", ConditionConfig{Type: TypeTimeout, Timeout: "soon"}},
		{"and without children", ConditionConfig{Type: TypeAnd}},
		{"or with broken child", ConditionConfig{Type: TypeOr, Of: []ConditionConfig{{Type: "nope"}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Build()
			require.Error(t, err)
		})
	}
}

func TestBuildLeafTypes(t *testing.T) {
	stop, err := ConditionConfig{Type: TypeStopRequested}.Build()
	require.NoError(t, err)
	assert.IsType(t, &condition.StopRequested{}, stop)

	timeout, err := ConditionConfig{Type: TypeTimeout, Timeout: "1m"}.Build()
	require.NoError(t, err)
	assert.IsType(t, &condition.Timeout{}, timeout)
}
