package lisp

// VarArgSymbol is the symbol that indicates a variadic function argument in a
// function's list of formal arguments.
const VarArgSymbol = "&"

// Symbols produced by the reader's quoting shorthand.
const (
	QuoteSymbol         = "quote"
	QuasiquoteSymbol    = "quasiquote"
	UnquoteSymbol       = "unquote"
	SpliceUnquoteSymbol = "splice-unquote"
	DerefSymbol         = "deref"
)
