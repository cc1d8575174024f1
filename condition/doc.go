// Package condition implements the termination conditions a conversation
// scheduler evaluates between turns, plus the And/Or combinators that compose
// them. All conditions satisfy core.Condition: they consume incremental
// message deltas, accumulate private state, and fire at most once per reset
// cycle. Conditions are not safe for concurrent use; each conversation run
// must own its own condition tree.
package condition
