// Package transcript provides a volatile archive for terminal conversation
// run results. It implements chat.Archiver so a scheduler can hand off each
// RunResult at run end instead of holding global conversation state.
package transcript
