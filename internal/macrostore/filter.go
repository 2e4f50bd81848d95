// Package macrostore defines the filter-macro record shape of
// spec.md §3.4 ("the filter-macro store... only the record shape is
// relevant") and two Registry implementations: an in-memory one for
// tests and simple embedders, and a SQLite-backed one for hosts that
// persist user-defined macros.
package macrostore

import (
	"github.com/google/uuid"

	"github.com/SwannedLakee/fsearch/internal/queryflags"
)

// Filter is one user-defined macro: a name, the query text it expands
// to, and the subset of flags it contributes (spec.md §4.2.5 only
// propagates SearchInPath, MatchCase and Regex).
//
// ID is the filter's stable identity, used instead of Name for cycle
// detection in parsectx.Context's macro stack per spec.md §9 ("use the
// filter identity... not the macro name": two filters may alias the
// same name in a malformed registry).
type Filter struct {
	ID        uuid.UUID
	Name      string
	QueryText string
	Flags     queryflags.Flags
}

// NewFilter creates a Filter with a freshly generated identity.
func NewFilter(name, queryText string, flags queryflags.Flags) Filter {
	return Filter{ID: uuid.New(), Name: name, QueryText: queryText, Flags: flags}
}

// Registry resolves macro names to filters. spec.md §4.2.1's "linear
// scan... first match wins" is an implementation detail of each
// Registry, not part of this interface.
type Registry interface {
	// FindByName returns the first registered filter whose Name
	// matches, and whether one was found.
	FindByName(name string) (Filter, bool)
}
