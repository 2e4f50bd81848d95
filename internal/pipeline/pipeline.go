// Package pipeline ties the lexer and parser stages together, adapted
// from the teacher's internal/pipeline package: a Context struct
// threaded through a sequence of Processors.
package pipeline

import (
	"github.com/SwannedLakee/fsearch/internal/diagnostics"
	"github.com/SwannedLakee/fsearch/internal/querynode"
	"github.com/SwannedLakee/fsearch/internal/token"
)

// TokenStream is the buffered lexer contract a Processor consumes,
// adapted from the teacher's pipeline.TokenStream. It adds Peek's
// single-token-lookahead shape that spec.md §6.2 requires instead of
// the teacher's arbitrary n-token Peek.
type TokenStream interface {
	// Next consumes and returns the next token.
	Next() token.Token
	// Peek returns the kind of the next token without consuming it.
	Peek() token.Kind
}

// Context carries a query string through the lexer and parser stages.
type Context struct {
	Source string

	Stream TokenStream
	Nodes  []querynode.Node

	Diagnostics diagnostics.Sink
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs a fixed sequence of Processors over a Context.
type Pipeline struct {
	stages []Processor
}

func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
	}
	return ctx
}
