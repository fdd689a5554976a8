package token_stream

import "hmc-go/packages/compiler/src/util"

// TokenType represents the type of a host-language token
type TokenType int

const (
	TokenTypePUNCT TokenType = iota
	TokenTypeIDENT
	TokenTypeLITERAL
	TokenTypeGROUP
)

// Delimiter represents the delimiter kind of a group token
type Delimiter int

const (
	DelimiterNONE Delimiter = iota
	DelimiterBRACE
	DelimiterBRACKET
	DelimiterPAREN
)

func (d Delimiter) OpenChar() byte {
	switch d {
	case DelimiterBRACE:
		return '{'
	case DelimiterBRACKET:
		return '['
	case DelimiterPAREN:
		return '('
	}
	return 0
}

func (d Delimiter) CloseChar() byte {
	switch d {
	case DelimiterBRACE:
		return '}'
	case DelimiterBRACKET:
		return ']'
	case DelimiterPAREN:
		return ')'
	}
	return 0
}

// Token represents one host-language token tree: a punctuation character, an
// identifier, a literal, or a delimited group of nested tokens
type Token struct {
	Type TokenType

	// Text is the punctuation character, identifier name, or raw literal text.
	Text string

	// Value is the decoded value for string literals; for every other token it
	// equals Text.
	Value string

	// Delim and Tokens are set for GROUP tokens only.
	Delim  Delimiter
	Tokens []Token

	sourceSpan *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (t Token) SourceSpan() *util.ParseSourceSpan {
	return t.sourceSpan
}

// IsPunct returns whether the token is the given punctuation character
func (t Token) IsPunct(ch byte) bool {
	return t.Type == TokenTypePUNCT && len(t.Text) == 1 && t.Text[0] == ch
}

// IsIdent returns whether the token is the given identifier
func (t Token) IsIdent(name string) bool {
	return t.Type == TokenTypeIDENT && t.Text == name
}

// IsStringLiteral returns whether the token is a string literal
func (t Token) IsStringLiteral() bool {
	return t.Type == TokenTypeLITERAL && len(t.Text) > 0 && t.Text[0] == '"'
}
