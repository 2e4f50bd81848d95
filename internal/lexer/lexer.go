// Package lexer tokenizes a query string into the token stream the
// parser consumes. It is a concrete default for the abstract lexer
// interface spec.md §6.2 describes; adapted from the teacher's
// byte-at-a-time scanner (internal/lexer/lexer.go) but built around
// chunks (whitespace/bracket-delimited runs) since this grammar's
// tokens are word-shaped rather than character-operator-shaped.
package lexer

import (
	"strings"

	"github.com/SwannedLakee/fsearch/internal/token"
)

// Lexer scans a query string into tokens. It is not safe for
// concurrent use, matching the single-threaded parse model of
// spec.md §5.
type Lexer struct {
	input string
	pos   int

	// pending holds tokens produced by splitting a single field chunk
	// ("size:>=1024") into Field + operator + value tokens; they are
	// drained before the lexer reads the next chunk from input.
	pending []token.Token

	peeked   *token.Token
	peekedOK bool
}

// New creates a Lexer positioned at the start of input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Next consumes and returns the next token.
func (l *Lexer) Next() token.Token {
	if l.peekedOK {
		t := *l.peeked
		l.peekedOK = false
		l.peeked = nil
		return t
	}
	return l.rawNext()
}

// Peek returns the kind of the next token without consuming it.
func (l *Lexer) Peek() token.Kind {
	if !l.peekedOK {
		t := l.rawNext()
		l.peeked = &t
		l.peekedOK = true
	}
	return l.peeked.Kind
}

func (l *Lexer) rawNext() token.Token {
	if len(l.pending) > 0 {
		t := l.pending[0]
		l.pending = l.pending[1:]
		return t
	}

	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return token.Token{Kind: token.Eos}
	}

	switch l.input[l.pos] {
	case '(':
		l.pos++
		return token.Token{Kind: token.BracketOpen}
	case ')':
		l.pos++
		return token.Token{Kind: token.BracketClose}
	case '"':
		return token.Token{Kind: token.Word, Text: l.readQuoted()}
	}

	chunk := l.readChunk()
	return l.classifyChunk(chunk)
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDelimiter(b byte) bool {
	return isSpace(b) || b == '(' || b == ')'
}

// readQuoted reads a "..." literal starting at the opening quote and
// returns its content without the quotes. An unterminated quote reads
// to the end of input.
func (l *Lexer) readQuoted() string {
	l.pos++ // consume opening quote
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '"' {
		l.pos++
	}
	content := l.input[start:l.pos]
	if l.pos < len(l.input) {
		l.pos++ // consume closing quote
	}
	return content
}

// readChunk reads a contiguous non-whitespace, non-bracket run.
func (l *Lexer) readChunk() string {
	start := l.pos
	for l.pos < len(l.input) && !isDelimiter(l.input[l.pos]) {
		l.pos++
	}
	return l.input[start:l.pos]
}

// classifyChunk turns a raw chunk into its token, queuing any
// additional tokens a "field:value" split produces.
func (l *Lexer) classifyChunk(chunk string) token.Token {
	switch chunk {
	case "AND":
		return token.Token{Kind: token.And}
	case "OR":
		return token.Token{Kind: token.Or}
	case "NOT":
		return token.Token{Kind: token.Not}
	}

	idx := strings.IndexByte(chunk, ':')
	if idx <= 0 {
		// No colon, or a colon with no field name in front of it: treat
		// the whole chunk as a plain word.
		return token.Token{Kind: token.Word, Text: chunk}
	}

	name := chunk[:idx]
	rest := chunk[idx+1:]
	if rest == "" {
		return token.Token{Kind: token.EmptyField, Text: name}
	}

	l.pending = append(l.pending, tokenizeFieldValue(rest)...)
	return token.Token{Kind: token.Field, Text: name}
}

// tokenizeFieldValue splits the value half of "field:value" into at
// most a leading comparison operator token followed by one word token,
// e.g. ">=1024" -> [GreaterEq, Word("1024")], "1024" -> [Word("1024")].
func tokenizeFieldValue(rest string) []token.Token {
	type prefixOp struct {
		prefix string
		kind   token.Kind
	}
	prefixes := []prefixOp{
		{"<=", token.SmallerEq},
		{">=", token.GreaterEq},
		{"<", token.Smaller},
		{">", token.Greater},
		{"=", token.Equal},
	}
	for _, p := range prefixes {
		if strings.HasPrefix(rest, p.prefix) {
			remainder := rest[len(p.prefix):]
			if remainder == "" {
				return []token.Token{{Kind: p.kind}}
			}
			return []token.Token{{Kind: p.kind}, {Kind: token.Word, Text: remainder}}
		}
	}
	return []token.Token{{Kind: token.Word, Text: rest}}
}
