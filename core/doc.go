// Package core defines the shared types and interfaces of roundtable:
// messages, the termination condition contract, the agent boundary and the
// fault taxonomy. Higher-level packages (condition, chat, agent) depend on
// core; core depends on nothing but the standard library and uuid.
package core
