// Package agent provides ready-made conversation participants: FuncAgent for
// turns produced by a closure and ModelAgent for turns produced by a language
// model. Both satisfy core.Agent; custom participants only need to implement
// that interface.
package agent
