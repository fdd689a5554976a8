package markup_parser

import (
	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

// Parser dispatches between the markup grammar's alternatives. It is the
// default ChildParser: the tag and fragment parsers collect their children
// through it, and it recurses back into them for nested markup.
type Parser struct {
	children ChildParser
}

// NewParser creates a Parser that recurses into itself for children
func NewParser() *Parser {
	p := &Parser{}
	p.children = p
	return p
}

// NewParserWithChildren creates a Parser that collects children through the
// given ChildParser instead of itself
func NewParserWithChildren(children ChildParser) *Parser {
	return &Parser{children: children}
}

// ParseChild parses exactly one markup construct at the cursor. Lookahead
// decides the alternative; only when no alternative can start here does the
// grammar fail.
func (p *Parser) ParseChild(c token_stream.Cursor) (Node, token_stream.Cursor, *util.ParseError) {
	switch {
	case PeekHtmlList(c) || peekHtmlListClose(c):
		return ParseHtmlList(c, p.children)
	case PeekHtmlTag(c):
		return ParseHtmlTag(c, p.children)
	default:
		if group, after, ok := c.Group(token_stream.DelimiterBRACE); ok {
			return &HtmlBlock{Expr: exprFromGroup(group), sourceSpan: group.SourceSpan()}, after, nil
		}
		if literal, after, ok := c.Literal(); ok {
			return &HtmlText{Text: literal.Value, sourceSpan: literal.SourceSpan()}, after, nil
		}
		return nil, c, util.NewParseError(c.SourceSpan(), "expected a valid html element")
	}
}

// Parse parses a root markup expression. Empty input is legal and yields an
// empty fragment; anything more than one root element is an error.
func Parse(source, url string) (Node, *util.ParseError) {
	tokens, err := token_stream.Tokenize(source, url)
	if err != nil {
		return nil, err
	}
	file := util.NewParseSourceFile(source, url)
	c := token_stream.NewCursor(file, tokens)
	if c.Done() {
		return &HtmlList{Children: NewChildrenTree(), sourceSpan: c.SourceSpan()}, nil
	}
	return parseRoot(c)
}

// ParseNested parses a nested markup fragment. Unlike root mode, empty input
// is an error.
func ParseNested(source, url string) (Node, *util.ParseError) {
	tokens, err := token_stream.Tokenize(source, url)
	if err != nil {
		return nil, err
	}
	file := util.NewParseSourceFile(source, url)
	c := token_stream.NewCursor(file, tokens)
	if c.Done() {
		return nil, util.NewParseError(c.SourceSpan(), "expected a valid html element")
	}
	return parseRoot(c)
}

func parseRoot(c token_stream.Cursor) (Node, *util.ParseError) {
	node, rest, err := NewParser().ParseChild(c)
	if err != nil {
		return nil, err
	}
	if !rest.Done() {
		return nil, util.NewParseError(rest.SourceSpan(),
			"only one root html element allowed (hint: you can wrap multiple html elements in a fragment `<></>`)")
	}
	return node, nil
}
