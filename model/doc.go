// Package model defines the minimal language model interface conversation
// agents build on, plus a MockModel for tests and examples. Provider adapters
// live in the subpackages anthropic and openai.
package model
