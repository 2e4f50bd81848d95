package lexer

import (
	"testing"

	"github.com/SwannedLakee/fsearch/internal/token"
)

func collect(input string) []token.Token {
	lex := New(input)
	var toks []token.Token
	for {
		tok := lex.Next()
		toks = append(toks, tok)
		if tok.Kind == token.Eos {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func sameKinds(got, want []token.Kind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestWordsAndKeywords(t *testing.T) {
	toks := collect("foo AND bar OR NOT baz")
	want := []token.Kind{token.Word, token.And, token.Word, token.Or, token.Not, token.Word, token.Eos}
	if got := kinds(toks); !sameKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestBrackets(t *testing.T) {
	toks := collect("(a b)")
	want := []token.Kind{token.BracketOpen, token.Word, token.Word, token.BracketClose, token.Eos}
	if got := kinds(toks); !sameKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestEmptyField(t *testing.T) {
	toks := collect("ext:")
	if len(toks) != 2 || toks[0].Kind != token.EmptyField || toks[0].Text != "ext" {
		t.Fatalf("toks = %v, want [EmptyField(ext) Eos]", toks)
	}
}

func TestFieldWithPlainWordValue(t *testing.T) {
	toks := collect("ext:go")
	want := []token.Token{
		{Kind: token.Field, Text: "ext"},
		{Kind: token.Word, Text: "go"},
		{Kind: token.Eos},
	}
	if len(toks) != len(want) {
		t.Fatalf("toks = %v, want %v", toks, want)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("toks[%d] = %v, want %v", i, toks[i], want[i])
		}
	}
}

func TestFieldWithComparisonOperators(t *testing.T) {
	tests := []struct {
		input   string
		wantOp  token.Kind
		wantVal string
	}{
		{"size:>=1024", token.GreaterEq, "1024"},
		{"size:<=1024", token.SmallerEq, "1024"},
		{"size:>1024", token.Greater, "1024"},
		{"size:<1024", token.Smaller, "1024"},
		{"size:=1024", token.Equal, "1024"},
	}
	for _, tc := range tests {
		toks := collect(tc.input)
		if len(toks) != 4 {
			t.Fatalf("collect(%q) = %v, want 4 tokens (Field, op, Word, Eos)", tc.input, toks)
		}
		if toks[0].Kind != token.Field || toks[0].Text != "size" {
			t.Fatalf("collect(%q)[0] = %v, want Field(size)", tc.input, toks[0])
		}
		if toks[1].Kind != tc.wantOp {
			t.Fatalf("collect(%q)[1].Kind = %v, want %v", tc.input, toks[1].Kind, tc.wantOp)
		}
		if toks[2].Kind != token.Word || toks[2].Text != tc.wantVal {
			t.Fatalf("collect(%q)[2] = %v, want Word(%q)", tc.input, toks[2], tc.wantVal)
		}
	}
}

func TestFieldWithBareComparisonOperatorAndNoValue(t *testing.T) {
	toks := collect("size:>=")
	if len(toks) != 3 || toks[1].Kind != token.GreaterEq {
		t.Fatalf("collect(%q) = %v, want [Field(size), GreaterEq, Eos]", "size:>=", toks)
	}
}

func TestQuotedWord(t *testing.T) {
	toks := collect(`"hello world"`)
	if len(toks) != 2 || toks[0].Kind != token.Word || toks[0].Text != "hello world" {
		t.Fatalf("toks = %v, want [Word(\"hello world\") Eos]", toks)
	}
}

func TestColonWithNoFieldNameIsAWord(t *testing.T) {
	toks := collect(":value")
	if len(toks) != 2 || toks[0].Kind != token.Word || toks[0].Text != ":value" {
		t.Fatalf("toks = %v, want [Word(\":value\") Eos]", toks)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lex := New("foo bar")
	if k := lex.Peek(); k != token.Word {
		t.Fatalf("Peek() = %v, want Word", k)
	}
	if k := lex.Peek(); k != token.Word {
		t.Fatalf("second Peek() = %v, want Word (must not consume)", k)
	}
	first := lex.Next()
	if first.Text != "foo" {
		t.Fatalf("Next() after Peek() = %v, want Word(foo)", first)
	}
	second := lex.Next()
	if second.Text != "bar" {
		t.Fatalf("Next() = %v, want Word(bar)", second)
	}
}

func TestEosPastEndIsStable(t *testing.T) {
	lex := New("")
	for i := 0; i < 3; i++ {
		if tok := lex.Next(); tok.Kind != token.Eos {
			t.Fatalf("Next() #%d = %v, want Eos", i, tok)
		}
	}
}

func TestWhitespaceHandling(t *testing.T) {
	toks := collect("  foo\t\nbar  ")
	want := []token.Kind{token.Word, token.Word, token.Eos}
	if got := kinds(toks); !sameKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}
