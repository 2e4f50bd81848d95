package parsectx

import (
	"github.com/SwannedLakee/fsearch/internal/querynode"
	"github.com/SwannedLakee/fsearch/internal/token"
)

// OperatorNode builds the operator query-node for a stack entry.
// BracketOpen never reaches here: it is consumed, not emitted.
func OperatorNode(op StackOp) querynode.Node {
	factory := querynode.Factory{}
	switch op {
	case OpAnd:
		return factory.NewOperator(querynode.OpAnd)
	case OpOr:
		return factory.NewOperator(querynode.OpOr)
	case OpNot:
		return factory.NewOperator(querynode.OpNot)
	default:
		return nil
	}
}

func stackOpFor(kind token.Kind) (StackOp, bool) {
	switch kind {
	case token.And:
		return OpAnd, true
	case token.Or:
		return OpOr, true
	case token.Not:
		return OpNot, true
	default:
		return 0, false
	}
}

// PushOperator implements the shunting-yard precedence rule shared by
// C4 and C5 (spec.md §4.3, §4.2.1): pop and emit operators from the
// stack while the top entry's precedence is at least op's, then push
// op. BracketOpen's precedence of 0 means it is only ever removed by
// PopMatchingBracket, never here.
func (c *Context) PushOperator(op StackOp) []querynode.Node {
	var popped []querynode.Node
	for {
		top, ok := c.TopOp()
		if !ok || op.Precedence() > top.Precedence() {
			break
		}
		poppedOp, _ := c.PopOp()
		popped = append(popped, OperatorNode(poppedOp))
	}
	c.PushOp(op)
	return popped
}

// ParseOperatorToken records kind as the last token and applies
// PushOperator for it. It is a no-op (beyond recording LastToken) for
// any kind that isn't And, Or, or Not.
func (c *Context) ParseOperatorToken(kind token.Kind) []querynode.Node {
	c.LastToken = kind
	op, ok := stackOpFor(kind)
	if !ok {
		return nil
	}
	return c.PushOperator(op)
}

// ImplicitAndIfNecessary inserts an And operator between two adjacent
// constructs per spec.md §4.3.2's rule: last must be an operand or a
// close bracket, and next must be an operand, an open bracket, or Not.
func ImplicitAndIfNecessary(c *Context, last, next token.Kind) []querynode.Node {
	lastQualifies := last.IsOperand() || last == token.BracketClose
	nextQualifies := next.IsOperand() || next == token.BracketOpen || next == token.Not
	if lastQualifies && nextQualifies {
		return c.ParseOperatorToken(token.And)
	}
	return nil
}

// OpenBracket implements the shared half of spec.md §4.3.1's
// BracketOpen case and §4.2.1's modifier-bracket case: prepend an
// implicit AND if necessary, push BracketOpen, and record it as the
// last token.
//
// Callers in package parser re-run ImplicitAndIfNecessary against the
// same (last, BracketOpen) pair right after this returns. That second
// call is only ever live when the first one actually popped something
// here (an operator of And-or-higher precedence was already pending),
// and it only pushes; it never pops past the BracketOpen just pushed
// above. This mirrors the original parser's control flow exactly and
// is left as-is rather than collapsed into one call.
func OpenBracket(c *Context) []querynode.Node {
	res := ImplicitAndIfNecessary(c, c.LastToken, token.BracketOpen)
	c.LastToken = token.BracketOpen
	c.PushOp(OpBracketOpen)
	return res
}

// PopMatchingBracket pops and emits operators from the stack until the
// matching BracketOpen is found and discarded (spec.md §4.3.1's
// BracketClose case). It assumes the caller has already verified a
// matching open bracket exists (num_close_brackets < num_open_brackets
// at the call site); an empty stack here would be an internal bug.
func PopMatchingBracket(c *Context) []querynode.Node {
	var res []querynode.Node
	for {
		top, ok := c.TopOp()
		if !ok {
			break
		}
		if top == OpBracketOpen {
			c.PopOp()
			break
		}
		poppedOp, _ := c.PopOp()
		res = append(res, OperatorNode(poppedOp))
	}
	c.LastToken = token.BracketClose
	return res
}

// Flush pops every remaining operator-stack entry at end of input
// (spec.md §4.3.3).
func (c *Context) Flush() []querynode.Node {
	var res []querynode.Node
	for {
		op, ok := c.PopOp()
		if !ok {
			break
		}
		res = append(res, OperatorNode(op))
	}
	return res
}
