package config

import (
	"testing"

	"github.com/SwannedLakee/fsearch/internal/querynode"
	"github.com/SwannedLakee/fsearch/internal/queryflags"
)

func TestModifierSpecApply(t *testing.T) {
	tests := []struct {
		name string
		in   queryflags.Flags
		want queryflags.Flags
	}{
		{"case", 0, queryflags.MatchCase},
		{"nocase", queryflags.MatchCase, 0},
		{"exact", 0, queryflags.ExactMatch},
		{"file", 0, queryflags.FilesOnly},
		{"files", 0, queryflags.FilesOnly},
		{"nofileonly", queryflags.FilesOnly, 0},
		{"nofilesonly", queryflags.FilesOnly, 0},
		{"folder", 0, queryflags.FoldersOnly},
		{"folders", 0, queryflags.FoldersOnly},
		{"nofolderonly", queryflags.FoldersOnly, 0},
		{"nofoldersonly", queryflags.FoldersOnly, 0},
		{"path", 0, queryflags.SearchInPath},
		{"nopath", queryflags.SearchInPath, 0},
		{"regex", 0, queryflags.Regex},
		{"noregex", queryflags.Regex, 0},
	}
	for _, tc := range tests {
		spec, ok := Modifiers[tc.name]
		if !ok {
			t.Fatalf("Modifiers[%q] missing", tc.name)
		}
		if got := spec.Apply(tc.in); got != tc.want {
			t.Errorf("Modifiers[%q].Apply(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestModifiersTableHasNoUnexpectedEntries(t *testing.T) {
	want := []string{
		"case", "nocase", "exact", "file", "files", "nofileonly", "nofilesonly",
		"folder", "folders", "nofolderonly", "nofoldersonly", "path", "nopath",
		"regex", "noregex",
	}
	if len(Modifiers) != len(want) {
		t.Fatalf("len(Modifiers) = %d, want %d", len(Modifiers), len(want))
	}
	for _, name := range want {
		if _, ok := Modifiers[name]; !ok {
			t.Errorf("Modifiers missing %q", name)
		}
	}
}

func TestFunctionsTableHasNoUnexpectedEntries(t *testing.T) {
	want := []string{
		"childcount", "childfilecount", "childfoldercount", "contenttype",
		"depth", "dm", "datemodified", "empty", "ext", "parent", "parents", "size",
	}
	if len(Functions) != len(want) {
		t.Fatalf("len(Functions) = %d, want %d", len(Functions), len(want))
	}
	for _, name := range want {
		if _, ok := Functions[name]; !ok {
			t.Errorf("Functions missing %q", name)
		}
	}
}

func TestFunctionKinds(t *testing.T) {
	tests := []struct {
		name string
		kind FunctionKind
	}{
		{"childcount", FuncNumeric},
		{"childfilecount", FuncNumeric},
		{"childfoldercount", FuncNumeric},
		{"contenttype", FuncContentType},
		{"depth", FuncNumeric},
		{"dm", FuncNumeric},
		{"datemodified", FuncNumeric},
		{"empty", FuncEmpty},
		{"ext", FuncExtension},
		{"parent", FuncParent},
		{"parents", FuncNumeric},
		{"size", FuncNumeric},
	}
	for _, tc := range tests {
		spec, ok := Functions[tc.name]
		if !ok {
			t.Fatalf("Functions[%q] missing", tc.name)
		}
		if spec.Kind != tc.kind {
			t.Errorf("Functions[%q].Kind = %v, want %v", tc.name, spec.Kind, tc.kind)
		}
	}
}

// TestParentsAliasesDepth checks spec.md §6.5's note that "parents" is
// an alias for "depth": same node constructor, same value parser.
func TestParentsAliasesDepth(t *testing.T) {
	depth := Functions["depth"].Numeric
	parents := Functions["parents"].Numeric
	a, b, ok := depth.Value("3")
	a2, b2, ok2 := parents.Value("3")
	if a != a2 || b != b2 || ok != ok2 {
		t.Fatalf("depth.Value and parents.Value disagree: (%d,%d,%v) vs (%d,%d,%v)", a, b, ok, a2, b2, ok2)
	}
	n1 := depth.NewNode(0, 3, 3, querynode.Equal)
	n2 := parents.NewNode(0, 3, 3, querynode.Equal)
	if n1 != n2 {
		t.Fatalf("depth.NewNode and parents.NewNode produced different values: %+v vs %+v", n1, n2)
	}
}

// TestDmAliasesDatemodified checks the two spellings bind identically.
func TestDmAliasesDatemodified(t *testing.T) {
	dm := Functions["dm"].Numeric
	long := Functions["datemodified"].Numeric
	a, b, ok := dm.Value("today")
	a2, b2, ok2 := long.Value("today")
	if a != a2 || b != b2 || ok != ok2 {
		t.Fatalf("dm.Value and datemodified.Value disagree: (%d,%d,%v) vs (%d,%d,%v)", a, b, ok, a2, b2, ok2)
	}
	n1 := dm.NewNode(0, 1, 2, querynode.Range)
	n2 := long.NewNode(0, 1, 2, querynode.Range)
	if n1 != n2 {
		t.Fatalf("dm.NewNode and datemodified.NewNode produced different values: %+v vs %+v", n1, n2)
	}
}
