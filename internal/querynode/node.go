// Package querynode defines the closed set of query-node values the
// parser emits, and a Factory that constructs them. Factory is a
// concrete type that the dispatcher and expression parser use directly;
// the node representation is fixed to the types in this package and is
// not replaceable by a host.
package querynode

import "github.com/SwannedLakee/fsearch/internal/queryflags"

// LeafKind is the closed set of leaf node shapes (spec.md §3.3).
type LeafKind string

const (
	KindWord             LeafKind = "Word"
	KindSize             LeafKind = "Size"
	KindDepth            LeafKind = "Depth"
	KindChildCount       LeafKind = "ChildCount"
	KindChildFileCount   LeafKind = "ChildFileCount"
	KindChildFolderCount LeafKind = "ChildFolderCount"
	KindDateModified     LeafKind = "DateModified"
	KindExtension        LeafKind = "Extension"
	KindContentType      LeafKind = "ContentType"
	KindParent           LeafKind = "Parent"
	KindMatchEverything  LeafKind = "MatchEverything"
	KindMatchNothing     LeafKind = "MatchNothing"
)

// Comparison is the closed set of numeric comparisons a numeric leaf
// may carry.
type Comparison string

const (
	Equal     Comparison = "Equal"
	Smaller   Comparison = "Smaller"
	SmallerEq Comparison = "SmallerEq"
	Greater   Comparison = "Greater"
	GreaterEq Comparison = "GreaterEq"
	Range     Comparison = "Range"
)

// OperatorKind is the closed set of operator nodes.
type OperatorKind string

const (
	OpAnd OperatorKind = "And"
	OpOr  OperatorKind = "Or"
	OpNot OperatorKind = "Not"
)

// Node is the sum type emitted by the parser: every value in the
// postfix output list is either a Leaf or an Operator. The unexported
// marker method closes the set to this package.
type Node interface {
	isNode()
}

// Leaf is an operand node: a word, a numeric field comparison, a
// string field match, or one of the two sentinels.
type Leaf struct {
	Kind LeafKind
	// Text holds the Word text, the Extension/ContentType/Parent
	// argument, or "" for sentinels and numeric kinds. A nil
	// Extension argument (the "match files without an extension"
	// case) is represented by HasText == false.
	Text    string
	HasText bool

	Flags queryflags.Flags

	// Numeric fields, meaningful only for Size, Depth, ChildCount,
	// ChildFileCount, ChildFolderCount, DateModified.
	Start      int64
	End        int64
	Comparison Comparison
}

func (Leaf) isNode() {}

// Operator is And, Or, or Not.
type Operator struct {
	Kind OperatorKind
}

func (Operator) isNode() {}

// Factory constructs Node values. It is the Go analogue of spec.md
// §6.3's node-factory interface; the zero value is ready to use.
type Factory struct{}

func (Factory) NewWord(text string, flags queryflags.Flags) Node {
	return Leaf{Kind: KindWord, Text: text, HasText: true, Flags: flags}
}

func (Factory) newNumeric(kind LeafKind, flags queryflags.Flags, start, end int64, cmp Comparison) Node {
	return Leaf{Kind: kind, Flags: flags, Start: start, End: end, Comparison: cmp}
}

func (f Factory) NewSize(flags queryflags.Flags, start, end int64, cmp Comparison) Node {
	return f.newNumeric(KindSize, flags, start, end, cmp)
}

func (f Factory) NewDepth(flags queryflags.Flags, start, end int64, cmp Comparison) Node {
	return f.newNumeric(KindDepth, flags, start, end, cmp)
}

func (f Factory) NewChildCount(flags queryflags.Flags, start, end int64, cmp Comparison) Node {
	return f.newNumeric(KindChildCount, flags, start, end, cmp)
}

func (f Factory) NewChildFileCount(flags queryflags.Flags, start, end int64, cmp Comparison) Node {
	return f.newNumeric(KindChildFileCount, flags, start, end, cmp)
}

func (f Factory) NewChildFolderCount(flags queryflags.Flags, start, end int64, cmp Comparison) Node {
	return f.newNumeric(KindChildFolderCount, flags, start, end, cmp)
}

func (f Factory) NewDateModified(flags queryflags.Flags, start, end int64, cmp Comparison) Node {
	return f.newNumeric(KindDateModified, flags, start, end, cmp)
}

// NewExtension builds an Extension leaf. hasExt is false for the
// "match files lacking an extension" case (empty ext: field).
func (Factory) NewExtension(text string, hasExt bool, flags queryflags.Flags) Node {
	return Leaf{Kind: KindExtension, Text: text, HasText: hasExt, Flags: flags}
}

func (Factory) NewContentType(text string, flags queryflags.Flags) Node {
	return Leaf{Kind: KindContentType, Text: text, HasText: true, Flags: flags}
}

func (Factory) NewParent(text string, flags queryflags.Flags) Node {
	return Leaf{Kind: KindParent, Text: text, HasText: true, Flags: flags}
}

func (Factory) NewMatchEverything(flags queryflags.Flags) Node {
	return Leaf{Kind: KindMatchEverything, Flags: flags}
}

func (Factory) NewMatchNothing() Node {
	return Leaf{Kind: KindMatchNothing}
}

func (Factory) NewOperator(kind OperatorKind) Node {
	return Operator{Kind: kind}
}
