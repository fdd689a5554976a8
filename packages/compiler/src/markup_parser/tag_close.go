package markup_parser

import (
	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

// TagClose represents one parsed closing tag boundary: `</name>` or `</@>`
type TagClose struct {
	TagName    TagName
	sourceSpan *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (t *TagClose) SourceSpan() *util.ParseSourceSpan {
	return t.sourceSpan
}

// PeekTagClose returns the matching key of the closing tag starting at the
// cursor, if the cursor really is at one
func PeekTagClose(c token_stream.Cursor) (TagKey, bool) {
	_, c, ok := c.PunctCh('<')
	if !ok {
		return TagKey{}, false
	}
	_, c, ok = c.PunctCh('/')
	if !ok {
		return TagKey{}, false
	}
	key, name, c, ok := PeekTagName(c)
	if !ok {
		return TagKey{}, false
	}
	if name != nil && !nonCapitalizedASCII(name.String()) {
		return TagKey{}, false
	}
	if _, _, ok := c.PunctCh('>'); !ok {
		return TagKey{}, false
	}
	return key, true
}

// ParseTagClose consumes one closing tag boundary at the cursor
func ParseTagClose(c token_stream.Cursor) (*TagClose, token_stream.Cursor, *util.ParseError) {
	lt, c, ok := c.PunctCh('<')
	if !ok {
		return nil, c, util.NewParseError(c.SourceSpan(), "expected `</`")
	}
	_, c, ok = c.PunctCh('/')
	if !ok {
		return nil, c, util.NewParseError(c.SourceSpan(), "expected `</`")
	}
	tagName, c, err := ParseTagName(c)
	if err != nil {
		return nil, c, err
	}
	gt, c, ok := c.PunctCh('>')
	if !ok {
		return nil, c, util.NewParseError(c.SourceSpan(), "expected `>`")
	}

	// closing tags must not restate the name expression, only `</@>` is legal
	if dynamic, ok := tagName.(*DynamicTagName); ok && dynamic.Name.Expr != nil {
		return nil, c, util.NewParseError(
			dynamic.Name.Expr.SourceSpan(),
			"dynamic closing tags must not have a body (hint: replace it with just `</@>`)",
		)
	}

	return &TagClose{
		TagName:    tagName,
		sourceSpan: util.NewParseSourceSpan(lt.SourceSpan().Start, gt.SourceSpan().End),
	}, c, nil
}
