// Package parsectx holds the shared mutable parsing state (C2's
// operator stack and C6's parse context, spec.md §3.4) that the
// expression parser (C5, internal/parser) and the field/function
// dispatcher (C4, internal/dispatch) both thread through recursive
// calls. It is its own package, rather than living in internal/parser
// or internal/dispatch, precisely because those two packages call each
// other recursively (the expression parser dispatches Field tokens;
// the dispatcher re-enters the expression parser for macros and
// bracketed modifiers) and neither may import the other.
package parsectx

import (
	"github.com/google/uuid"

	"github.com/SwannedLakee/fsearch/internal/diagnostics"
	"github.com/SwannedLakee/fsearch/internal/macrostore"
	"github.com/SwannedLakee/fsearch/internal/token"
)

// Lexer is the abstract token source spec.md §6.2 describes.
type Lexer interface {
	// Next consumes and returns the next token.
	Next() token.Token
	// Peek returns the kind of the next token without consuming it.
	Peek() token.Kind
}

// StackOp is the tagged union of operator-stack entries spec.md §9
// calls out explicitly: BracketOpen, And, Or, Not, and nothing else.
// It is deliberately a distinct type from token.Kind so the stack can
// never accidentally hold a Word or Field.
type StackOp int

const (
	OpBracketOpen StackOp = iota
	OpAnd
	OpOr
	OpNot
)

// Precedence gives the shunting-yard precedence of an operator-stack
// entry. BracketOpen's precedence of 0 means it is never popped by
// the precedence rule, only by a matching BracketClose.
func (op StackOp) Precedence() int {
	switch op {
	case OpNot:
		return 3
	case OpAnd:
		return 2
	case OpOr:
		return 1
	default: // OpBracketOpen
		return 0
	}
}

// Context is the mutable state of a single parse (spec.md §3.4). A
// Context is not safe for concurrent use; independent callers must
// each use their own.
type Context struct {
	Lexer Lexer

	operatorStack []StackOp
	macroStack    []uuid.UUID

	MacroFilters macrostore.Registry

	// LastToken drives implicit-AND decisions (spec.md §4.3.2). It
	// starts as token.None.
	LastToken token.Kind

	Diagnostics diagnostics.Sink
}

// New creates a Context ready to parse from lex, with the given macro
// registry (nil is treated as an empty registry).
func New(lex Lexer, macroFilters macrostore.Registry) *Context {
	if macroFilters == nil {
		macroFilters = macrostore.NewMemoryRegistry()
	}
	return &Context{
		Lexer:        lex,
		MacroFilters: macroFilters,
		LastToken:    token.None,
	}
}

// PushOp pushes an operator-stack entry.
func (c *Context) PushOp(op StackOp) {
	c.operatorStack = append(c.operatorStack, op)
}

// PopOp pops and returns the top operator-stack entry and whether the
// stack was non-empty.
func (c *Context) PopOp() (StackOp, bool) {
	if len(c.operatorStack) == 0 {
		return 0, false
	}
	n := len(c.operatorStack) - 1
	op := c.operatorStack[n]
	c.operatorStack = c.operatorStack[:n]
	return op, true
}

// TopOp returns the top operator-stack entry without popping it.
func (c *Context) TopOp() (StackOp, bool) {
	if len(c.operatorStack) == 0 {
		return 0, false
	}
	return c.operatorStack[len(c.operatorStack)-1], true
}

// OperatorStackEmpty reports whether the operator stack is empty
// (property 8.1.2 checks this after a top-level parse).
func (c *Context) OperatorStackEmpty() bool {
	return len(c.operatorStack) == 0
}

// PushMacro pushes a filter identity onto the macro call stack.
func (c *Context) PushMacro(id uuid.UUID) {
	c.macroStack = append(c.macroStack, id)
}

// PopMacro pops the most recently pushed filter identity.
func (c *Context) PopMacro() {
	if len(c.macroStack) > 0 {
		c.macroStack = c.macroStack[:len(c.macroStack)-1]
	}
}

// MacroActive reports whether id is already on the macro call stack,
// the cycle-detection check of spec.md §4.2.5.
func (c *Context) MacroActive(id uuid.UUID) bool {
	for _, active := range c.macroStack {
		if active == id {
			return true
		}
	}
	return false
}

// SwapForMacro installs a fresh lexer and empty operator stack for a
// nested macro expansion (spec.md §4.2.5 / §5's "scoped acquisition of
// the lexer"), returning a restore function that puts the saved state
// back. The caller must always call restore, even on early return.
func (c *Context) SwapForMacro(lex Lexer) (restore func()) {
	savedLexer := c.Lexer
	savedStack := c.operatorStack

	c.Lexer = lex
	c.operatorStack = nil

	return func() {
		if !c.OperatorStackEmpty() {
			c.Diagnostics.Warnf(diagnostics.PhaseMacro, "operator stack not empty after parsing macro expansion")
		}
		c.Lexer = savedLexer
		c.operatorStack = savedStack
	}
}
