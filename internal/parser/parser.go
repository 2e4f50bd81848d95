// Package parser implements the expression parser (C5): the
// shunting-yard driver that turns a token stream into a postfix query
// node list, per spec.md §4.3-4.4.
package parser

import (
	"github.com/SwannedLakee/fsearch/internal/dispatch"
	"github.com/SwannedLakee/fsearch/internal/parsectx"
	"github.com/SwannedLakee/fsearch/internal/querynode"
	"github.com/SwannedLakee/fsearch/internal/queryflags"
	"github.com/SwannedLakee/fsearch/internal/token"
)

var factory = querynode.Factory{}

// ParseExpression drives the main loop of spec.md §4.3.1. When
// inOpenBracket is true, the call returns as soon as its matching
// BracketClose is found; otherwise it runs to Eos. It satisfies
// dispatch.ExpressionParser, and is itself the callback dispatch.Dispatch
// uses to recurse into macro bodies and bracketed modifier arguments.
func ParseExpression(ctx *parsectx.Context, inOpenBracket bool, flags queryflags.Flags) []querynode.Node {
	var res []querynode.Node

	numOpenBrackets := 0
	if inOpenBracket {
		numOpenBrackets = 1
	}
	numCloseBrackets := 0

	for {
		tok := ctx.Lexer.Next()
		if tok.Kind == token.Eos {
			break
		}

		lastToken := ctx.LastToken
		skipImplicitAndCheck := false
		var toAppend []querynode.Node

		switch tok.Kind {
		case token.Not:
			if consumeConsecutiveNot(ctx.Lexer) {
				// Even counts of NOT cancel out (`NOT NOT a` == `a`); a
				// single NOT is emitted only for an odd count, and only
				// when it's actually followed by something it can negate.
				if isOperatorTokenFollowedByOperand(ctx.Lexer, tok.Kind) {
					skipImplicitAndCheck = true
					toAppend = parsectx.ImplicitAndIfNecessary(ctx, lastToken, tok.Kind)
					toAppend = append(toAppend, ctx.ParseOperatorToken(token.Not)...)
				}
			}

		case token.And, token.Or:
			if isOperatorTokenFollowedByOperand(ctx.Lexer, tok.Kind) {
				toAppend = ctx.ParseOperatorToken(tok.Kind)
			}

		case token.BracketOpen:
			numOpenBrackets++
			toAppend = parsectx.OpenBracket(ctx)
			// No left-hand operand exists for a binary operator directly
			// after an open bracket: `(OR a OR b)` is read as `(a OR b)`.
			discardConsecutiveBinaryOperators(ctx.Lexer)

		case token.BracketClose:
			if numOpenBrackets > numCloseBrackets {
				numCloseBrackets++
				toAppend = parsectx.PopMatchingBracket(ctx)

				if inOpenBracket && numCloseBrackets == numOpenBrackets {
					return append(res, toAppend...)
				}
			} else {
				return []querynode.Node{factory.NewMatchNothing()}
			}

		case token.Word:
			toAppend = []querynode.Node{factory.NewWord(tok.Text, flags)}

		case token.Field:
			toAppend = dispatch.Dispatch(ctx, tok.Text, false, flags, ParseExpression)

		case token.EmptyField:
			toAppend = dispatch.Dispatch(ctx, tok.Text, true, flags, ParseExpression)
		}

		if toAppend != nil {
			if !skipImplicitAndCheck {
				res = append(res, parsectx.ImplicitAndIfNecessary(ctx, lastToken, tok.Kind)...)
			}
			ctx.LastToken = tok.Kind
			res = append(res, toAppend...)
		}
	}

	res = append(res, ctx.Flush()...)
	return res
}

// consumeConsecutiveNot consumes every directly-following Not token and
// reports whether the total run (including the one already consumed by
// the caller) is odd.
func consumeConsecutiveNot(lex parsectx.Lexer) bool {
	odd := true
	for lex.Peek() == token.Not {
		lex.Next()
		odd = !odd
	}
	return odd
}

// isOperatorTokenFollowedByOperand reports whether the token following
// op (without consuming it) can act as its right-hand side: an operand,
// BracketOpen, or — for a binary operator specifically — a Not (spec.md
// §9 documents this as a heuristic that can misjudge pathological
// input, carried over unchanged).
func isOperatorTokenFollowedByOperand(lex parsectx.Lexer, op token.Kind) bool {
	next := lex.Peek()
	if op.IsBinaryOperator() && next == token.Not {
		return true
	}
	return next.IsOperand() || next == token.BracketOpen
}

// discardConsecutiveBinaryOperators drops a run of And/Or tokens that
// immediately follows an open bracket, per spec.md §4.3.1.
func discardConsecutiveBinaryOperators(lex parsectx.Lexer) {
	for {
		switch lex.Peek() {
		case token.And, token.Or:
			lex.Next()
		default:
			return
		}
	}
}
