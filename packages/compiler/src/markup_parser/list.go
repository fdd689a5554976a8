package markup_parser

import (
	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

// PeekHtmlList returns whether a fragment opens at the cursor: `<>` or
// `<key=...>`
func PeekHtmlList(c token_stream.Cursor) bool {
	_, c, ok := c.PunctCh('<')
	if !ok {
		return false
	}
	if _, _, ok := c.PunctCh('>'); ok {
		return true
	}
	ident, c, ok := c.Ident()
	if !ok || ident.Text != "key" {
		return false
	}
	_, _, ok = c.PunctCh('=')
	return ok
}

// peekHtmlListClose returns whether `</>` starts at the cursor
func peekHtmlListClose(c token_stream.Cursor) bool {
	_, c, ok := c.PunctCh('<')
	if !ok {
		return false
	}
	_, c, ok = c.PunctCh('/')
	if !ok {
		return false
	}
	_, _, ok = c.PunctCh('>')
	return ok
}

// ParseHtmlList consumes one fragment at the cursor. Fragments match
// positionally like tags; all of them share the one anonymous key.
func ParseHtmlList(c token_stream.Cursor, childParser ChildParser) (*HtmlList, token_stream.Cursor, *util.ParseError) {
	if peekHtmlListClose(c) {
		return nil, c, util.NewParseError(c.SourceSpan(), "this closing fragment has no corresponding opening fragment")
	}

	lt, c, ok := c.PunctCh('<')
	if !ok {
		return nil, c, util.NewParseError(c.SourceSpan(), "expected `<`")
	}

	var key *Expr
	if ident, afterIdent, ok := c.Ident(); ok && ident.Text == "key" {
		_, afterEq, ok := afterIdent.PunctCh('=')
		if !ok {
			return nil, c, util.NewParseError(afterIdent.SourceSpan(), "expected `=` after `key`")
		}
		value, afterValue, err := parseAttributeValue(afterEq)
		if err != nil {
			return nil, c, err
		}
		key = value
		c = afterValue
	}

	gt, c, ok := c.PunctCh('>')
	if !ok {
		return nil, c, util.NewParseError(c.SourceSpan(), "expected `>`")
	}
	openSpan := util.NewParseSourceSpan(lt.SourceSpan().Start, gt.SourceSpan().End)

	children := NewChildrenTree()
	for !peekHtmlListClose(c) {
		if c.Done() {
			return nil, c, util.NewParseError(openSpan, "this opening fragment has no corresponding closing fragment")
		}
		var err *util.ParseError
		c, err = children.ParseChild(childParser, c)
		if err != nil {
			return nil, c, err
		}
	}

	_, c, _ = c.PunctCh('<')
	_, c, _ = c.PunctCh('/')
	closeGt, c, _ := c.PunctCh('>')

	return &HtmlList{
		Children:   children,
		Key:        key,
		sourceSpan: util.NewParseSourceSpan(lt.SourceSpan().Start, closeGt.SourceSpan().End),
	}, c, nil
}
