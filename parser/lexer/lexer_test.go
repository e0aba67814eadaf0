package lexer

import (
	"testing"

	"github.com/bmatsuo/mlisp/parser/token"
	"github.com/stretchr/testify/assert"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		text  string
		types []token.Type
		texts []string
	}{
		{"", nil, nil},
		{" ,\t\n", nil, nil},
		{"abc", []token.Type{token.SYMBOL}, []string{"abc"}},
		{"(+ 1 -2)",
			[]token.Type{token.PAREN_L, token.SYMBOL, token.INT, token.INT, token.PAREN_R},
			[]string{"(", "+", "1", "-2", ")"}},
		{"- -> -x",
			[]token.Type{token.SYMBOL, token.SYMBOL, token.SYMBOL},
			[]string{"-", "->", "-x"}},
		{"a,b", []token.Type{token.SYMBOL, token.SYMBOL}, []string{"a", "b"}},
		{"'a `b ~c ~@d @e ^f",
			[]token.Type{
				token.QUOTE, token.SYMBOL,
				token.QUASIQUOTE, token.SYMBOL,
				token.UNQUOTE, token.SYMBOL,
				token.UNQUOTE_SPLICE, token.SYMBOL,
				token.DEREF, token.SYMBOL,
				token.META, token.SYMBOL,
			},
			[]string{"'", "a", "`", "b", "~", "c", "~@", "d", "@", "e", "^", "f"}},
		{"[{}]",
			[]token.Type{token.BRACE_L, token.CURLY_L, token.CURLY_R, token.BRACE_R},
			[]string{"[", "{", "}", "]"}},
		{`"a b" "c\"d" "e`,
			[]token.Type{token.STRING, token.STRING, token.STRING},
			[]string{`"a b"`, `"c\"d"`, `"e`}},
		{"x ; comment (\ny",
			[]token.Type{token.SYMBOL, token.COMMENT, token.SYMBOL},
			[]string{"x", "; comment (", "y"}},
		{"12abc", []token.Type{token.INT}, []string{"12abc"}},
	}
	for _, test := range tests {
		toks := New("test", []byte(test.text)).Tokens()
		var types []token.Type
		var texts []string
		for _, tok := range toks {
			types = append(types, tok.Type)
			texts = append(texts, tok.Text)
		}
		assert.Equal(t, test.types, types, "%q", test.text)
		assert.Equal(t, test.texts, texts, "%q", test.text)
	}
}

func TestLexer_location(t *testing.T) {
	lex := New("test", []byte("(a\n  bc)"))
	var locs []string
	for _, tok := range lex.Tokens() {
		locs = append(locs, tok.Source.String())
	}
	assert.Equal(t, []string{"test:1:1", "test:1:2", "test:2:3", "test:2:5"}, locs)

	eof := lex.NextToken()
	assert.Equal(t, token.EOF, eof.Type)
	assert.Equal(t, "test:2:6", eof.Source.String())
	assert.Equal(t, token.EOF, lex.NextToken().Type)
}
