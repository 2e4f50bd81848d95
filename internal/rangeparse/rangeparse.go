// Package rangeparse implements the numeric range parser (C3):
// parsing a raw word of the form "A", "A..B", "..B", or "A.." into a
// (start, end, comparison) numeric node, per spec.md §4.1.
package rangeparse

import (
	"strings"

	"github.com/SwannedLakee/fsearch/internal/diagnostics"
	"github.com/SwannedLakee/fsearch/internal/querynode"
	"github.com/SwannedLakee/fsearch/internal/queryflags"
	"github.com/SwannedLakee/fsearch/internal/valueparse"
)

// upperSentinel is the open-ended upper bound, exactly 2^31-1.
const upperSentinel int64 = 1<<31 - 1

// NewNodeFunc constructs the numeric leaf node for a given field
// (e.g. querynode.Factory.NewSize).
type NewNodeFunc func(flags queryflags.Flags, start, end int64, cmp querynode.Comparison) querynode.Node

// Parse implements the table in spec.md §4.1. fieldName is used only
// for the diagnostic message on failure.
func Parse(
	s string,
	fieldName string,
	flags queryflags.Flags,
	parse valueparse.Parser,
	newNode NewNodeFunc,
	diag *diagnostics.Sink,
) querynode.Node {
	fail := func() querynode.Node {
		diag.Warnf(diagnostics.PhaseRangeParse, "%s: invalid argument: %q", fieldName, s)
		return querynode.Factory{}.NewMatchNothing()
	}

	if !strings.Contains(s, "..") {
		if s == "" {
			return fail()
		}
		a, b, ok := parse(s)
		if !ok {
			return fail()
		}
		return newNode(flags, a, b, equalOrRange(a, b))
	}

	left, right, _ := strings.Cut(s, "..")

	if left == "" && right == "" {
		return fail()
	}

	if left == "" {
		_, end, ok := parse(right)
		if !ok {
			return fail()
		}
		return newNode(flags, 0, end, querynode.Range)
	}

	start, _, ok := parse(left)
	if !ok {
		return fail()
	}

	if right == "" {
		return newNode(flags, start, upperSentinel, querynode.GreaterEq)
	}

	_, rightEnd, ok := parse(right)
	if !ok {
		return fail()
	}
	return newNode(flags, start, rightEnd, equalOrRange(start, rightEnd))
}

func equalOrRange(a, b int64) querynode.Comparison {
	if a == b {
		return querynode.Equal
	}
	return querynode.Range
}
