package rdparser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bmatsuo/mlisp/lisp"
	"github.com/bmatsuo/mlisp/parser/lexer"
	"github.com/bmatsuo/mlisp/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := New(lexer.New(name, text))
	return p.ParseProgram()
}

// ReadForm implements lisp.Reader.
func (*reader) ReadForm(text string) (*lisp.LVal, error) {
	p := New(lexer.New("string", []byte(text)))
	return p.ParseForm()
}

// Parser is a lisp parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{
		lex: lex,
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses every form in the input.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal

	for {
		p.skipComments()
		if p.expect(token.EOF) {
			break
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}

	return exprs, nil
}

// ParseForm parses the first form in the input.  Tokens following the form
// are not examined.  If the input contains only comments and whitespace a
// SyntaxError wrapping lisp.ErrNoForm is returned.
func (p *Parser) ParseForm() (*lisp.LVal, error) {
	p.skipComments()
	if p.PeekType() == token.EOF {
		return nil, &lisp.SyntaxError{Source: p.Peek().Source, Err: lisp.ErrNoForm}
	}
	return p.ParseExpression()
}

func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	p.skipComments()
	switch p.PeekType() {
	case token.INT:
		return p.ParseLiteralInt()
	case token.STRING:
		return p.ParseLiteralString()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.QUOTE:
		return p.ParseReaderMacro(token.QUOTE, lisp.QuoteSymbol)
	case token.QUASIQUOTE:
		return p.ParseReaderMacro(token.QUASIQUOTE, lisp.QuasiquoteSymbol)
	case token.UNQUOTE:
		return p.ParseReaderMacro(token.UNQUOTE, lisp.UnquoteSymbol)
	case token.UNQUOTE_SPLICE:
		return p.ParseReaderMacro(token.UNQUOTE_SPLICE, lisp.SpliceUnquoteSymbol)
	case token.DEREF:
		return p.ParseReaderMacro(token.DEREF, lisp.DerefSymbol)
	case token.PAREN_L:
		return p.ParseList(token.PAREN_L, token.PAREN_R)
	case token.BRACE_L:
		return p.ParseList(token.BRACE_L, token.BRACE_R)
	case token.EOF:
		p.ReadToken()
		return nil, p.errorf("unexpected EOF")
	case token.META, token.CURLY_L, token.CURLY_R:
		p.ReadToken()
		return nil, p.errorf("unsupported syntax %s", p.Token().Text)
	default:
		p.ReadToken()
		return nil, p.errorf("unexpected %s", p.Token().Text)
	}
}

func (p *Parser) ParseLiteralInt() (*lisp.LVal, error) {
	if !p.expect(token.INT) {
		return nil, p.errorf("invalid integer literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.Atoi(text)
	if err != nil {
		return nil, p.errorf("invalid integer literal: %v", text)
	}
	return lisp.Number(x), nil
}

func (p *Parser) ParseLiteralString() (*lisp.LVal, error) {
	if !p.expect(token.STRING) {
		return nil, p.errorf("invalid string literal: %v", p.PeekType())
	}
	text := p.Token().Text
	if !terminated(text) {
		return nil, p.errorf("unbalanced string literal: expected '\"', got EOF")
	}
	return lisp.String(unescape(text[1 : len(text)-1])), nil
}

func (p *Parser) ParseSymbol() (*lisp.LVal, error) {
	if !p.expect(token.SYMBOL) {
		return nil, p.errorf("invalid symbol: %v", p.PeekType())
	}
	switch text := p.Token().Text; text {
	case "nil":
		return lisp.Nil(), nil
	case "true":
		return lisp.Bool(true), nil
	case "false":
		return lisp.Bool(false), nil
	default:
		return lisp.Symbol(text), nil
	}
}

// ParseReaderMacro parses a prefix token typ followed by a form, returning
// the list (sym form).
func (p *Parser) ParseReaderMacro(typ token.Type, sym string) (*lisp.LVal, error) {
	if !p.expect(typ) {
		return nil, p.errorf("invalid %s: %v", typ, p.PeekType())
	}
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return lisp.List(lisp.Symbol(sym), expr), nil
}

// ParseList parses a list delimited by open and right.
func (p *Parser) ParseList(open, right token.Type) (*lisp.LVal, error) {
	if !p.expect(open) {
		return nil, p.errorf("invalid list: %v", p.PeekType())
	}
	start := p.Token()
	var cells []*lisp.LVal
	for {
		p.skipComments()
		if p.expect(right) {
			break
		}
		switch p.PeekType() {
		case token.EOF:
			p.ReadToken()
			return nil, &lisp.SyntaxError{
				Source: start.Source,
				Msg:    "unbalanced " + start.Text + ": expected '" + right.String() + "', got EOF",
			}
		case token.PAREN_R, token.BRACE_R:
			p.ReadToken()
			return nil, p.errorf("unexpected %s: expected '%s'", p.Token().Text, right)
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}
	return lisp.List(cells...), nil
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) skipComments() {
	for p.expect(token.COMMENT) {
	}
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(format string, v ...interface{}) error {
	err := &lisp.SyntaxError{Msg: fmt.Sprintf(format, v...)}
	if tok := p.Token(); tok != nil {
		err.Source = tok.Source
	}
	return err
}

// terminated returns true if text, which begins with a double quote, also
// ends with an unescaped double quote.
func terminated(text string) bool {
	if len(text) < 2 || text[len(text)-1] != '"' {
		return false
	}
	n := 0
	for i := len(text) - 2; i > 0 && text[i] == '\\'; i-- {
		n++
	}
	return n%2 == 0
}

var escapes = map[byte]byte{
	'n':  '\n',
	'\\': '\\',
	'"':  '"',
}

// unescape replaces backslash escape sequences in s.  A backslash before any
// character other than n, \ or " yields that character.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			buf.WriteByte(c)
			continue
		}
		i++
		if e, ok := escapes[s[i]]; ok {
			buf.WriteByte(e)
		} else {
			buf.WriteByte(s[i])
		}
	}
	return buf.String()
}
