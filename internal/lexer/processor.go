package lexer

import "github.com/SwannedLakee/fsearch/internal/pipeline"

// Processor is the pipeline.Processor that installs a Lexer over
// ctx.Source, adapted from the teacher's LexerProcessor.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	ctx.Stream = New(ctx.Source)
	return ctx
}

var _ pipeline.TokenStream = (*Lexer)(nil)
