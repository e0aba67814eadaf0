package lexer

import (
	"sort"
	"strings"

	"github.com/bmatsuo/mlisp/parser/token"
	parsec "github.com/prataprc/goparsec"
)

// tokenPattern matches any separators (whitespace and commas) followed by a
// single token.  Alternatives are tried in order: "~@", one special
// character, a string literal whose closing quote may be missing, a comment,
// and finally a bare word.
const tokenPattern = `[\s,]*(` +
	`~@` +
	"|[\\[\\]{}()'`~^@]" +
	`|"(?:\\.|[^\\"])*"?` +
	`|;[^\n]*` +
	"|[^\\s\\[\\]{}('\"`,;)]+" +
	`)`

const separators = " \t\n\f\r,"

// Lexer splits source text into tokens.
type Lexer struct {
	file    string
	size    int
	lines   []int // byte offset of the start of each line
	scanner parsec.Scanner
	match   parsec.Parser
}

// New returns a Lexer that reads tokens from text.  The file name is only
// used to annotate token locations.
func New(file string, text []byte) *Lexer {
	return &Lexer{
		file:    file,
		size:    len(text),
		lines:   lineStarts(text),
		scanner: parsec.NewScanner(text),
		match:   parsec.Token(tokenPattern, "TOKEN"),
	}
}

// NextToken returns the next token in the input.  After the input is
// exhausted NextToken returns EOF tokens indefinitely.
func (lex *Lexer) NextToken() *token.Token {
	node, next := lex.match(lex.scanner)
	term, ok := node.(*parsec.Terminal)
	if !ok || term == nil {
		return &token.Token{Type: token.EOF, Source: lex.loc(lex.size)}
	}
	lex.scanner = next
	text := strings.TrimLeft(term.Value, separators)
	if text == "" {
		return &token.Token{Type: token.EOF, Source: lex.loc(lex.size)}
	}
	start := next.GetCursor() - len(text)
	return &token.Token{
		Type:   classify(text),
		Text:   text,
		Source: lex.loc(start),
	}
}

// Tokens returns every remaining token, excluding the final EOF.
func (lex *Lexer) Tokens() []*token.Token {
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func classify(text string) token.Type {
	switch text {
	case "~@":
		return token.UNQUOTE_SPLICE
	case "(":
		return token.PAREN_L
	case ")":
		return token.PAREN_R
	case "[":
		return token.BRACE_L
	case "]":
		return token.BRACE_R
	case "{":
		return token.CURLY_L
	case "}":
		return token.CURLY_R
	case "'":
		return token.QUOTE
	case "`":
		return token.QUASIQUOTE
	case "~":
		return token.UNQUOTE
	case "^":
		return token.META
	case "@":
		return token.DEREF
	}
	switch {
	case text[0] == '"':
		return token.STRING
	case text[0] == ';':
		return token.COMMENT
	case isDigit(text[0]):
		return token.INT
	case text[0] == '-' && len(text) > 1 && isDigit(text[1]):
		return token.INT
	default:
		return token.SYMBOL
	}
}

func (lex *Lexer) loc(pos int) *token.Location {
	i := sort.SearchInts(lex.lines, pos+1) - 1
	if i < 0 {
		i = 0
	}
	return &token.Location{
		File: lex.file,
		Pos:  pos,
		Line: i + 1,
		Col:  pos - lex.lines[i] + 1,
	}
}

func lineStarts(text []byte) []int {
	lines := []int{0}
	for i, c := range text {
		if c == '\n' {
			lines = append(lines, i+1)
		}
	}
	return lines
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
