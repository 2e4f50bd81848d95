package querynode

import "testing"

func TestFormatLeafKinds(t *testing.T) {
	f := Factory{}
	tests := []struct {
		name string
		n    Node
		want string
	}{
		{"word", f.NewWord("foo", 0), `Word("foo")`},
		{"match everything", f.NewMatchEverything(0), "MatchEverything"},
		{"match nothing", f.NewMatchNothing(), "MatchNothing"},
		{"extension with text", f.NewExtension("go", true, 0), `Extension("go")`},
		{"extension without text", f.NewExtension("", false, 0), "Extension(none)"},
		{"content type", f.NewContentType("video", 0), `ContentType("video")`},
		{"parent", f.NewParent("Documents", 0), `Parent("Documents")`},
		{"size range", f.NewSize(0, 1024, 2048, Range), "Size(1024,2048,Range)"},
		{"depth equal", f.NewDepth(0, 3, 3, Equal), "Depth(3,3,Equal)"},
		{"operator and", f.NewOperator(OpAnd), "And"},
		{"operator or", f.NewOperator(OpOr), "Or"},
		{"operator not", f.NewOperator(OpNot), "Not"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.n); got != tc.want {
				t.Errorf("Format(%v) = %q, want %q", tc.n, got, tc.want)
			}
		})
	}
}

func TestFormatAllJoinsWithSpaces(t *testing.T) {
	f := Factory{}
	nodes := []Node{f.NewWord("a", 0), f.NewWord("b", 0), f.NewOperator(OpAnd)}
	want := `Word("a") Word("b") And`
	if got := FormatAll(nodes); got != want {
		t.Errorf("FormatAll(...) = %q, want %q", got, want)
	}
}

func TestFormatAllEmpty(t *testing.T) {
	if got := FormatAll(nil); got != "" {
		t.Errorf("FormatAll(nil) = %q, want empty string", got)
	}
}
