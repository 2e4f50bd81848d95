// Package config is the single source of truth for the recognized
// field names of spec.md §6.5: the modifier table and the function
// table, expressed as data rather than as a chain of string
// comparisons, in the manner of the teacher's config package (e.g.
// config.UserOperators driving both the lexer's token set and the
// parser's precedence table from one place).
package config

import (
	"github.com/SwannedLakee/fsearch/internal/querynode"
	"github.com/SwannedLakee/fsearch/internal/queryflags"
	"github.com/SwannedLakee/fsearch/internal/valueparse"
)

// FlagOp is whether a modifier adds or removes its bit.
type FlagOp int

const (
	AddFlag FlagOp = iota
	RemoveFlag
)

// ModifierSpec describes one recognized modifier field.
type ModifierSpec struct {
	Flag queryflags.Flags
	Op   FlagOp
}

// Apply returns f with the modifier's bit added or removed.
func (m ModifierSpec) Apply(f queryflags.Flags) queryflags.Flags {
	if m.Op == AddFlag {
		return f.Add(m.Flag)
	}
	return f.Remove(m.Flag)
}

// Modifiers is the name -> (flag, add|remove) table of spec.md §6.5.
var Modifiers = map[string]ModifierSpec{
	"case":          {queryflags.MatchCase, AddFlag},
	"nocase":        {queryflags.MatchCase, RemoveFlag},
	"exact":         {queryflags.ExactMatch, AddFlag},
	"file":          {queryflags.FilesOnly, AddFlag},
	"files":         {queryflags.FilesOnly, AddFlag},
	"nofileonly":    {queryflags.FilesOnly, RemoveFlag},
	"nofilesonly":   {queryflags.FilesOnly, RemoveFlag},
	"folder":        {queryflags.FoldersOnly, AddFlag},
	"folders":       {queryflags.FoldersOnly, AddFlag},
	"nofolderonly":  {queryflags.FoldersOnly, RemoveFlag},
	"nofoldersonly": {queryflags.FoldersOnly, RemoveFlag},
	"path":          {queryflags.SearchInPath, AddFlag},
	"nopath":        {queryflags.SearchInPath, RemoveFlag},
	"regex":         {queryflags.Regex, AddFlag},
	"noregex":       {queryflags.Regex, RemoveFlag},
}

// FunctionKind distinguishes the argument sub-grammar a function
// field uses (spec.md §4.2.2-4.2.4).
type FunctionKind int

const (
	FuncNumeric FunctionKind = iota
	FuncExtension
	FuncContentType
	FuncParent
	FuncEmpty
)

// NumericSpec binds a numeric function to its node constructor and
// value parser (spec.md §4.2.2's value-parser bindings).
type NumericSpec struct {
	NewNode func(flags queryflags.Flags, start, end int64, cmp querynode.Comparison) querynode.Node
	Value   valueparse.Parser
}

// FunctionSpec describes one recognized function field.
type FunctionSpec struct {
	Kind    FunctionKind
	Numeric NumericSpec
}

var factory = querynode.Factory{}

// Functions is the name -> parser table of spec.md §6.5.
var Functions = map[string]FunctionSpec{
	"childcount":       {Kind: FuncNumeric, Numeric: NumericSpec{factory.NewChildCount, valueparse.Integer}},
	"childfilecount":   {Kind: FuncNumeric, Numeric: NumericSpec{factory.NewChildFileCount, valueparse.Integer}},
	"childfoldercount": {Kind: FuncNumeric, Numeric: NumericSpec{factory.NewChildFolderCount, valueparse.Integer}},
	"contenttype":      {Kind: FuncContentType},
	"depth":            {Kind: FuncNumeric, Numeric: NumericSpec{factory.NewDepth, valueparse.Integer}},
	"dm":               {Kind: FuncNumeric, Numeric: NumericSpec{factory.NewDateModified, valueparse.DateInterval}},
	"datemodified":     {Kind: FuncNumeric, Numeric: NumericSpec{factory.NewDateModified, valueparse.DateInterval}},
	"empty":            {Kind: FuncEmpty},
	"ext":              {Kind: FuncExtension},
	"parent":           {Kind: FuncParent},
	"parents":          {Kind: FuncNumeric, Numeric: NumericSpec{factory.NewDepth, valueparse.Integer}},
	"size":             {Kind: FuncNumeric, Numeric: NumericSpec{factory.NewSize, valueparse.Size}},
}
