// Package config loads declarative conversation configurations from YAML and
// compiles the condition section into a live termination condition tree.
//
// Example:
//
//	task: "Summarize the findings"
//	participants:
//	  - name: writer
//	    provider: openai
//	    model: gpt-4o-mini
//	condition:
//	  type: or
//	  of:
//	    - type: max_messages
//	      count: 20
//	    - type: text_mention
//	      token: TERMINATE
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/roundtable/condition"
	"github.com/hupe1980/roundtable/core"
)

// Condition type names recognized by Build.
const (
	TypeMaxMessages   = "max_messages"
	TypeTextMention   = "text_mention"
	TypeStopRequested = "stop_requested"
	TypeSenderCount   = "sender_count"
	TypeTimeout       = "timeout"
	TypeAnd           = "and"
	TypeOr            = "or"
)

// Config describes one conversation run: the initial task, the participant
// roster and the termination condition tree.
type Config struct {
	Task         string          `yaml:"task"`
	Participants []Participant   `yaml:"participants"`
	Condition    ConditionConfig `yaml:"condition"`
}

// Participant describes a conversation participant. Provider and Model are
// interpreted by the caller when constructing agents; config does not touch
// API clients.
type Participant struct {
	Name         string `yaml:"name"`
	Provider     string `yaml:"provider,omitempty"`
	Model        string `yaml:"model,omitempty"`
	Instructions string `yaml:"instructions,omitempty"`
	StopMarker   string `yaml:"stop_marker,omitempty"`
}

// ConditionConfig is one node of the declarative condition tree.
type ConditionConfig struct {
	Type string `yaml:"type"`

	// Leaf parameters.
	Count   int    `yaml:"count,omitempty"`   // max_messages, sender_count
	Token   string `yaml:"token,omitempty"`   // text_mention
	Sender  string `yaml:"sender,omitempty"`  // sender_count
	Timeout string `yaml:"timeout,omitempty"` // timeout, e.g. "90s"

	// Combinator children.
	Of []ConditionConfig `yaml:"of,omitempty"`
}

// Load decodes a Config from r.
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile decodes a Config from a YAML file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (c *Config) validate() error {
	if len(c.Participants) == 0 {
		return fmt.Errorf("config requires at least one participant")
	}
	for i, p := range c.Participants {
		if p.Name == "" {
			return fmt.Errorf("participant %d has no name", i)
		}
	}
	if c.Condition.Type == "" {
		return fmt.Errorf("config requires a termination condition")
	}
	return nil
}

// Build compiles the condition tree into a live core.Condition using the
// public constructors of the condition package.
func (c ConditionConfig) Build() (core.Condition, error) {
	switch c.Type {
	case TypeMaxMessages:
		if c.Count < 1 {
			return nil, fmt.Errorf("%s: count must be >= 1", c.Type)
		}
		return condition.NewMaxMessageCount(c.Count), nil
	case TypeTextMention:
		if c.Token == "" {
			return nil, fmt.Errorf("%s: token must not be empty", c.Type)
		}
		return condition.NewTextMention(c.Token), nil
	case TypeStopRequested:
		return condition.NewStopRequested(), nil
	case TypeSenderCount:
		if c.Sender == "" {
			return nil, fmt.Errorf("%s: sender must not be empty", c.Type)
		}
		if c.Count < 1 {
			return nil, fmt.Errorf("%s: count must be >= 1", c.Type)
		}
		return condition.NewSenderCount(c.Sender, c.Count), nil
	case TypeTimeout:
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid duration %q: %w", c.Type, c.Timeout, err)
		}
		return condition.NewTimeout(d), nil
	case TypeAnd, TypeOr:
		children, err := c.buildChildren()
		if err != nil {
			return nil, err
		}
		if c.Type == TypeAnd {
			return condition.NewAnd(children...)
		}
		return condition.NewOr(children...)
	default:
		return nil, fmt.Errorf("unknown condition type %q", c.Type)
	}
}

func (c ConditionConfig) buildChildren() ([]core.Condition, error) {
	if len(c.Of) == 0 {
		return nil, fmt.Errorf("%s: combinator requires children under 'of'", c.Type)
	}
	children := make([]core.Condition, 0, len(c.Of))
	for i, cc := range c.Of {
		child, err := cc.Build()
		if err != nil {
			return nil, fmt.Errorf("%s child %d: %w", c.Type, i, err)
		}
		children = append(children, child)
	}
	return children, nil
}
