// Package chat drives multi-participant conversation runs. A Chat selects
// participants round-robin, appends each turn's messages to the run log, and
// immediately evaluates the active termination condition against exactly those
// new messages. The run completes the instant the condition fires and faults
// on condition misuse, agent failure, or cancellation, always preserving the
// partial log.
package chat
