package parser

import (
	"github.com/SwannedLakee/fsearch/internal/macrostore"
	"github.com/SwannedLakee/fsearch/internal/parsectx"
	"github.com/SwannedLakee/fsearch/internal/pipeline"
	"github.com/SwannedLakee/fsearch/internal/queryflags"
)

// Processor is the pipeline.Processor that runs ParseExpression over
// ctx.Stream, adapted from the teacher's ParserProcessor. MacroFilters
// and Flags configure the parse; a zero-value Processor parses with no
// macros registered and no flags set.
type Processor struct {
	MacroFilters macrostore.Registry
	Flags        queryflags.Flags
}

func (p Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	pctx := parsectx.New(ctx.Stream, p.MacroFilters)
	pctx.Diagnostics = ctx.Diagnostics

	ctx.Nodes = ParseExpression(pctx, false, p.Flags)
	ctx.Diagnostics = pctx.Diagnostics
	return ctx
}
