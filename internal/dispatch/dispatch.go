// Package dispatch implements the field/function dispatcher (C4):
// resolving a field name to a macro expansion, a modifier's
// flag-mutation, a numeric or string function, or a MatchNothing
// sentinel, per spec.md §4.2.
package dispatch

import (
	"github.com/SwannedLakee/fsearch/internal/config"
	"github.com/SwannedLakee/fsearch/internal/diagnostics"
	"github.com/SwannedLakee/fsearch/internal/lexer"
	"github.com/SwannedLakee/fsearch/internal/parsectx"
	"github.com/SwannedLakee/fsearch/internal/querynode"
	"github.com/SwannedLakee/fsearch/internal/queryflags"
	"github.com/SwannedLakee/fsearch/internal/rangeparse"
	"github.com/SwannedLakee/fsearch/internal/token"
)

var factory = querynode.Factory{}

// ExpressionParser is the recursive entry point into the expression
// parser (C5). Dispatch never imports the parser package directly —
// it receives the parser's own ParseExpression as this callback at
// call time — because C4 and C5 call each other recursively and a Go
// package pair cannot import one another.
type ExpressionParser func(ctx *parsectx.Context, inOpenBracket bool, flags queryflags.Flags) []querynode.Node

// Dispatch resolves a Field or EmptyField token to its node list,
// implementing the resolution order of spec.md §4.2: macro lookup,
// then modifier table, then function table, then MatchNothing.
func Dispatch(ctx *parsectx.Context, name string, isEmptyField bool, flags queryflags.Flags, parseExpr ExpressionParser) []querynode.Node {
	if nodes, matched := expandMacro(ctx, name, flags, parseExpr); matched {
		return nodes
	}

	if mod, ok := config.Modifiers[name]; ok {
		return parseModifier(ctx, isEmptyField, mod.Apply(flags), parseExpr)
	}

	if fn, ok := config.Functions[name]; ok {
		return dispatchFunction(ctx, name, fn, isEmptyField, flags)
	}

	return []querynode.Node{factory.NewMatchNothing()}
}

// expandMacro implements spec.md §4.2.5. matched is false both when no
// filter has this name and when a filter has this name but is
// rejected (cycle or empty body) — in both cases the dispatcher falls
// through to the modifier/function tables, matching the original's
// parse_filter_macros "break" leaving the result list nil.
func expandMacro(ctx *parsectx.Context, name string, flags queryflags.Flags, parseExpr ExpressionParser) (nodes []querynode.Node, matched bool) {
	filter, found := ctx.MacroFilters.FindByName(name)
	if !found {
		return nil, false
	}
	if ctx.MacroActive(filter.ID) {
		ctx.Diagnostics.Warnf(diagnostics.PhaseMacro, "nested macro %q detected, stopping expansion", name)
		return nil, false
	}
	if filter.QueryText == "" {
		return nil, false
	}

	propagated := flags
	if filter.Flags.Has(queryflags.SearchInPath) {
		propagated = propagated.Add(queryflags.SearchInPath)
	}
	if filter.Flags.Has(queryflags.MatchCase) {
		propagated = propagated.Add(queryflags.MatchCase)
	}
	if filter.Flags.Has(queryflags.Regex) {
		propagated = propagated.Add(queryflags.Regex)
	}

	ctx.PushMacro(filter.ID)
	defer ctx.PopMacro()

	restore := ctx.SwapForMacro(lexer.New(filter.QueryText))
	defer restore()

	return parseExpr(ctx, false, propagated), true
}

// parseModifier implements spec.md §4.2.1.
func parseModifier(ctx *parsectx.Context, isEmptyField bool, flags queryflags.Flags, parseExpr ExpressionParser) []querynode.Node {
	if isEmptyField {
		return []querynode.Node{factory.NewMatchEverything(flags)}
	}

	tok := ctx.Lexer.Next()
	switch tok.Kind {
	case token.Word:
		return []querynode.Node{factory.NewWord(tok.Text, flags)}
	case token.BracketOpen:
		// Ordering note (spec.md §9, open question): the open-bracket
		// result (which may itself carry an implicit AND) is
		// concatenated *before* the recursive expression's result,
		// matching g_list_concat(res, parse_expression(...)) exactly.
		opened := parsectx.OpenBracket(ctx)
		rest := parseExpr(ctx, true, flags)
		return append(opened, rest...)
	case token.Field:
		return Dispatch(ctx, tok.Text, false, flags, parseExpr)
	case token.EmptyField:
		return Dispatch(ctx, tok.Text, true, flags, parseExpr)
	default:
		return []querynode.Node{factory.NewMatchNothing()}
	}
}

// dispatchFunction implements spec.md §4.2.2-§4.2.4.
func dispatchFunction(ctx *parsectx.Context, name string, fn config.FunctionSpec, isEmptyField bool, flags queryflags.Flags) []querynode.Node {
	switch fn.Kind {
	case config.FuncNumeric:
		return parseNumericFunction(ctx, name, isEmptyField, flags, fn.Numeric)
	case config.FuncExtension:
		return parseExtension(ctx, isEmptyField, flags)
	case config.FuncContentType:
		return parseContentType(ctx, isEmptyField, flags)
	case config.FuncParent:
		return parseParent(ctx, isEmptyField, flags)
	case config.FuncEmpty:
		return []querynode.Node{factory.NewChildCount(flags, 0, 0, querynode.Equal)}
	default:
		return []querynode.Node{factory.NewMatchNothing()}
	}
}

// parseNumericFunction implements spec.md §4.2.2.
func parseNumericFunction(ctx *parsectx.Context, name string, isEmptyField bool, flags queryflags.Flags, spec config.NumericSpec) []querynode.Node {
	if isEmptyField {
		return []querynode.Node{factory.NewMatchEverything(flags)}
	}

	tok := ctx.Lexer.Next()
	var cmp querynode.Comparison
	switch tok.Kind {
	case token.Equal:
		cmp = querynode.Equal
	case token.Smaller:
		cmp = querynode.Smaller
	case token.SmallerEq:
		cmp = querynode.SmallerEq
	case token.Greater:
		cmp = querynode.Greater
	case token.GreaterEq:
		cmp = querynode.GreaterEq
	case token.Word:
		return []querynode.Node{rangeparse.Parse(tok.Text, name, flags, spec.Value, spec.NewNode, &ctx.Diagnostics)}
	default:
		ctx.Diagnostics.Warnf(diagnostics.PhaseDispatch, "%s: invalid or missing argument", name)
		return []querynode.Node{factory.NewMatchNothing()}
	}

	valueTok := ctx.Lexer.Next()
	if valueTok.Kind != token.Word {
		return []querynode.Node{factory.NewMatchNothing()}
	}
	a, b, ok := spec.Value(valueTok.Text)
	if !ok {
		return []querynode.Node{factory.NewMatchNothing()}
	}
	return []querynode.Node{spec.NewNode(flags, a, b, cmp)}
}

// parseExtension implements the `ext` grammar of spec.md §4.2.3.
func parseExtension(ctx *parsectx.Context, isEmptyField bool, flags queryflags.Flags) []querynode.Node {
	if isEmptyField {
		return []querynode.Node{factory.NewExtension("", false, flags)}
	}
	tok := ctx.Lexer.Next()
	if tok.Kind != token.Word {
		return []querynode.Node{factory.NewMatchNothing()}
	}
	return []querynode.Node{factory.NewExtension(tok.Text, true, flags)}
}

// parseContentType implements the `contenttype` grammar of spec.md §4.2.3.
func parseContentType(ctx *parsectx.Context, isEmptyField bool, flags queryflags.Flags) []querynode.Node {
	if isEmptyField {
		return []querynode.Node{factory.NewMatchEverything(flags)}
	}
	tok := ctx.Lexer.Next()
	if tok.Kind != token.Word {
		return []querynode.Node{factory.NewMatchNothing()}
	}
	return []querynode.Node{factory.NewContentType(tok.Text, flags)}
}

// parseParent implements the `parent` grammar of spec.md §4.2.3.
func parseParent(ctx *parsectx.Context, isEmptyField bool, flags queryflags.Flags) []querynode.Node {
	forced := flags.Add(queryflags.ExactMatch)
	if isEmptyField {
		return []querynode.Node{factory.NewParent("", forced)}
	}
	tok := ctx.Lexer.Next()
	if tok.Kind != token.Word {
		return []querynode.Node{factory.NewMatchNothing()}
	}
	return []querynode.Node{factory.NewParent(tok.Text, forced)}
}
