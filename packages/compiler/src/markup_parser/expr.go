package markup_parser

import (
	"strings"

	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

// Expr represents a host-language expression captured opaquely. The parser
// never interprets the tokens; they are carried verbatim into the generated
// construction program and only evaluated (by an external evaluator) when the
// program runs.
type Expr struct {
	Tokens     []token_stream.Token
	sourceSpan *util.ParseSourceSpan
}

// NewExpr creates a new Expr from captured tokens
func NewExpr(tokens []token_stream.Token, sourceSpan *util.ParseSourceSpan) *Expr {
	return &Expr{Tokens: tokens, sourceSpan: sourceSpan}
}

func exprFromToken(token token_stream.Token) *Expr {
	return NewExpr([]token_stream.Token{token}, token.SourceSpan())
}

func exprFromGroup(group token_stream.Token) *Expr {
	return NewExpr(group.Tokens, group.SourceSpan())
}

// SourceSpan returns the source span
func (e *Expr) SourceSpan() *util.ParseSourceSpan {
	return e.sourceSpan
}

// LiteralString returns the decoded value if the expression is a single
// string literal
func (e *Expr) LiteralString() (string, bool) {
	if len(e.Tokens) == 1 && e.Tokens[0].IsStringLiteral() {
		return e.Tokens[0].Value, true
	}
	return "", false
}

// String renders the captured tokens, for dumps and diagnostics only
func (e *Expr) String() string {
	var b strings.Builder
	renderTokens(&b, e.Tokens)
	return b.String()
}

func renderTokens(b *strings.Builder, tokens []token_stream.Token) {
	for i, token := range tokens {
		if i > 0 && needsSpace(tokens[i-1], token) {
			b.WriteByte(' ')
		}
		switch token.Type {
		case token_stream.TokenTypeGROUP:
			b.WriteByte(token.Delim.OpenChar())
			renderTokens(b, token.Tokens)
			b.WriteByte(token.Delim.CloseChar())
		default:
			b.WriteString(token.Text)
		}
	}
}

func needsSpace(prev, next token_stream.Token) bool {
	wordy := func(t token_stream.Token) bool {
		return t.Type == token_stream.TokenTypeIDENT || t.Type == token_stream.TokenTypeLITERAL
	}
	return wordy(prev) && wordy(next)
}
