package token_stream

import (
	"fmt"
	"strings"

	"hmc-go/packages/compiler/src/util"
)

// Tokenize reads source text into a host-language token tree. Markup
// constructs are not recognized here: `<`, `/`, `@` and friends come out as
// plain punctuation, and disambiguation is left entirely to cursor lookahead
// in the markup parser.
func Tokenize(source, url string) ([]Token, *util.ParseError) {
	file := util.NewParseSourceFile(source, url)
	lexer := &lexer{file: file, source: source}
	tokens, err := lexer.lexGroup(DelimiterNONE)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

type lexer struct {
	file   *util.ParseSourceFile
	source string
	pos    int
}

func (l *lexer) lexGroup(delim Delimiter) ([]Token, *util.ParseError) {
	var tokens []Token
	for {
		l.skipTrivia()
		if l.pos >= len(l.source) {
			if delim != DelimiterNONE {
				return nil, l.errorAt(l.pos, fmt.Sprintf("unclosed `%c` group", delim.OpenChar()))
			}
			return tokens, nil
		}

		ch := l.source[l.pos]
		if delim != DelimiterNONE && ch == delim.CloseChar() {
			return tokens, nil
		}

		switch {
		case ch == '{' || ch == '[' || ch == '(':
			token, err := l.lexDelimited(ch)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
		case ch == '}' || ch == ']' || ch == ')':
			return nil, l.errorAt(l.pos, fmt.Sprintf("unexpected closing `%c`", ch))
		case ch == '"':
			token, err := l.lexString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
		case isIdentStart(ch):
			tokens = append(tokens, l.lexIdent())
		case isDigit(ch):
			tokens = append(tokens, l.lexNumber())
		default:
			start := l.pos
			l.pos++
			tokens = append(tokens, Token{
				Type:       TokenTypePUNCT,
				Text:       string(ch),
				Value:      string(ch),
				sourceSpan: util.SpanAt(l.file, start, l.pos),
			})
		}
	}
}

func (l *lexer) lexDelimited(open byte) (Token, *util.ParseError) {
	var delim Delimiter
	switch open {
	case '{':
		delim = DelimiterBRACE
	case '[':
		delim = DelimiterBRACKET
	case '(':
		delim = DelimiterPAREN
	}

	start := l.pos
	l.pos++
	inner, err := l.lexGroup(delim)
	if err != nil {
		return Token{}, err
	}
	if l.pos >= len(l.source) || l.source[l.pos] != delim.CloseChar() {
		return Token{}, l.errorAt(start, fmt.Sprintf("unclosed `%c` group", open))
	}
	l.pos++
	return Token{
		Type:       TokenTypeGROUP,
		Text:       l.source[start:l.pos],
		Value:      l.source[start:l.pos],
		Delim:      delim,
		Tokens:     inner,
		sourceSpan: util.SpanAt(l.file, start, l.pos),
	}, nil
}

func (l *lexer) lexString() (Token, *util.ParseError) {
	start := l.pos
	l.pos++
	var value strings.Builder
	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		switch ch {
		case '"':
			l.pos++
			return Token{
				Type:       TokenTypeLITERAL,
				Text:       l.source[start:l.pos],
				Value:      value.String(),
				sourceSpan: util.SpanAt(l.file, start, l.pos),
			}, nil
		case '\\':
			if l.pos+1 >= len(l.source) {
				return Token{}, l.errorAt(start, "unterminated string literal")
			}
			l.pos++
			switch l.source[l.pos] {
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			case 'r':
				value.WriteByte('\r')
			default:
				value.WriteByte(l.source[l.pos])
			}
			l.pos++
		default:
			value.WriteByte(ch)
			l.pos++
		}
	}
	return Token{}, l.errorAt(start, "unterminated string literal")
}

func (l *lexer) lexIdent() Token {
	start := l.pos
	for l.pos < len(l.source) && isIdentPart(l.source[l.pos]) {
		l.pos++
	}
	text := l.source[start:l.pos]
	return Token{
		Type:       TokenTypeIDENT,
		Text:       text,
		Value:      text,
		sourceSpan: util.SpanAt(l.file, start, l.pos),
	}
}

func (l *lexer) lexNumber() Token {
	start := l.pos
	for l.pos < len(l.source) && (isDigit(l.source[l.pos]) || l.source[l.pos] == '.' || l.source[l.pos] == '_') {
		l.pos++
	}
	text := l.source[start:l.pos]
	return Token{
		Type:       TokenTypeLITERAL,
		Text:       text,
		Value:      text,
		sourceSpan: util.SpanAt(l.file, start, l.pos),
	}
}

func (l *lexer) skipTrivia() {
	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			l.pos++
		case ch == '/' && l.pos+1 < len(l.source) && l.source[l.pos+1] == '/':
			for l.pos < len(l.source) && l.source[l.pos] != '\n' {
				l.pos++
			}
		case ch == '/' && l.pos+1 < len(l.source) && l.source[l.pos+1] == '*':
			end := strings.Index(l.source[l.pos+2:], "*/")
			if end == -1 {
				l.pos = len(l.source)
			} else {
				l.pos += 2 + end + 2
			}
		default:
			return
		}
	}
}

func (l *lexer) errorAt(offset int, msg string) *util.ParseError {
	return util.NewParseError(util.SpanAt(l.file, offset, offset), msg)
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
