package token_stream

import "hmc-go/packages/compiler/src/util"

// Cursor is an immutable position into a token stream. Peeking through a
// Cursor never mutates parser state: every accessor returns the matched token
// together with a new Cursor placed just after it, leaving the receiver
// untouched. This is what lets the markup grammar try an alternative rule
// after a failed lookahead.
type Cursor struct {
	file   *util.ParseSourceFile
	tokens []Token
	index  int
}

// NewCursor creates a Cursor at the start of a token stream
func NewCursor(file *util.ParseSourceFile, tokens []Token) Cursor {
	return Cursor{file: file, tokens: tokens, index: 0}
}

// Done returns whether the cursor is past the last token
func (c Cursor) Done() bool {
	return c.index >= len(c.tokens)
}

// Peek returns the token at the cursor without advancing
func (c Cursor) Peek() (Token, bool) {
	if c.Done() {
		return Token{}, false
	}
	return c.tokens[c.index], true
}

// Advance returns a cursor placed one token further
func (c Cursor) Advance() Cursor {
	if c.Done() {
		return c
	}
	return Cursor{file: c.file, tokens: c.tokens, index: c.index + 1}
}

// Punct returns the punctuation token at the cursor, if any
func (c Cursor) Punct() (Token, Cursor, bool) {
	token, ok := c.Peek()
	if !ok || token.Type != TokenTypePUNCT {
		return Token{}, c, false
	}
	return token, c.Advance(), true
}

// PunctCh returns the given punctuation character at the cursor, if present
func (c Cursor) PunctCh(ch byte) (Token, Cursor, bool) {
	token, ok := c.Peek()
	if !ok || !token.IsPunct(ch) {
		return Token{}, c, false
	}
	return token, c.Advance(), true
}

// Ident returns the identifier token at the cursor, if any
func (c Cursor) Ident() (Token, Cursor, bool) {
	token, ok := c.Peek()
	if !ok || token.Type != TokenTypeIDENT {
		return Token{}, c, false
	}
	return token, c.Advance(), true
}

// Literal returns the literal token at the cursor, if any
func (c Cursor) Literal() (Token, Cursor, bool) {
	token, ok := c.Peek()
	if !ok || token.Type != TokenTypeLITERAL {
		return Token{}, c, false
	}
	return token, c.Advance(), true
}

// Group returns the group token with the given delimiter at the cursor, if
// present
func (c Cursor) Group(delim Delimiter) (Token, Cursor, bool) {
	token, ok := c.Peek()
	if !ok || token.Type != TokenTypeGROUP || token.Delim != delim {
		return Token{}, c, false
	}
	return token, c.Advance(), true
}

// SourceSpan returns a span for the current position: the span of the token
// under the cursor, or a zero-width span at the end of input
func (c Cursor) SourceSpan() *util.ParseSourceSpan {
	if token, ok := c.Peek(); ok {
		return token.SourceSpan()
	}
	if n := len(c.tokens); n > 0 {
		end := c.tokens[n-1].SourceSpan().End
		return util.NewParseSourceSpan(end, end)
	}
	return util.SpanAt(c.file, 0, 0)
}

// File returns the source file the cursor's tokens came from
func (c Cursor) File() *util.ParseSourceFile {
	return c.file
}
