// Package diagnostics is the parser's debug/warning sink. Per
// spec.md §7, this parser is total: it never returns an error to its
// caller, it only ever substitutes a MatchNothing node. Anything worth
// telling a developer about is recorded here instead, adapted from the
// teacher's phase-tagged diagnostics.DiagnosticError down to the
// warning-only shape this package actually needs.
package diagnostics

import "fmt"

// Phase identifies which component emitted a diagnostic.
type Phase string

const (
	PhaseLexer      Phase = "lexer"
	PhaseDispatch   Phase = "dispatch"
	PhaseRangeParse Phase = "rangeparse"
	PhaseParser     Phase = "parser"
	PhaseMacro      Phase = "macro"
)

// Message is one recorded diagnostic.
type Message struct {
	Phase Phase
	Text  string
}

func (m Message) String() string {
	return fmt.Sprintf("[%s] %s", m.Phase, m.Text)
}

// Sink collects diagnostics for the lifetime of a single parse. The
// zero value is ready to use. A Sink is not safe for concurrent use,
// matching the parsectx.Context it is embedded in.
type Sink struct {
	messages []Message
}

// Warnf records a formatted warning for phase.
func (s *Sink) Warnf(phase Phase, format string, args ...any) {
	s.messages = append(s.messages, Message{Phase: phase, Text: fmt.Sprintf(format, args...)})
}

// Messages returns every diagnostic recorded so far, oldest first.
func (s *Sink) Messages() []Message {
	return s.messages
}
