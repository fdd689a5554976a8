package markup_parser

import (
	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

// HtmlTag represents one fully parsed tag element: its name, its structured
// attribute set, and its children. It is assembled once and never mutated
// afterwards; the `value` re-homing happened during boundary parsing.
type HtmlTag struct {
	TagName    TagName
	Attributes *TagAttributes
	Children   *ChildrenTree
	sourceSpan *util.ParseSourceSpan
}

func (*HtmlTag) node() {}

// SourceSpan returns the source span
func (t *HtmlTag) SourceSpan() *util.ParseSourceSpan {
	return t.sourceSpan
}

// PeekHtmlTag returns whether an opening or closing tag starts at the cursor
func PeekHtmlTag(c token_stream.Cursor) bool {
	if _, ok := PeekTagOpen(c); ok {
		return true
	}
	_, ok := PeekTagClose(c)
	return ok
}

// ParseHtmlTag consumes one complete tag at the cursor: the opening
// boundary, children collected through the given ChildParser until a closing
// boundary with a matching key, and the closing boundary itself. Matching is
// strictly local: a closing tag in any other position is an error, never
// matched against an outer opening tag. All dynamic tags share one key, so
// the first `</@>` at the current nesting level closes the innermost open
// dynamic tag.
func ParseHtmlTag(c token_stream.Cursor, childParser ChildParser) (*HtmlTag, token_stream.Cursor, *util.ParseError) {
	if _, ok := PeekTagClose(c); ok {
		tagClose, _, err := ParseTagClose(c)
		if err != nil {
			return nil, c, err
		}
		return nil, c, util.NewParseError(tagClose.SourceSpan(), "this closing tag has no corresponding opening tag")
	}

	open, c, err := ParseTagOpen(c)
	if err != nil {
		return nil, c, err
	}
	// return early if it's a self-closing tag
	if open.SelfClosing {
		return &HtmlTag{
			TagName:    open.TagName,
			Attributes: open.Attributes,
			Children:   NewChildrenTree(),
			sourceSpan: open.SourceSpan(),
		}, c, nil
	}

	openKey := open.TagName.Key()
	children := NewChildrenTree()
	for {
		if c.Done() {
			return nil, c, util.NewParseError(open.SourceSpan(), "this opening tag has no corresponding closing tag")
		}
		if closeKey, ok := PeekTagClose(c); ok && closeKey == openKey {
			break
		}
		c, err = children.ParseChild(childParser, c)
		if err != nil {
			return nil, c, err
		}
	}

	tagClose, c, err := ParseTagClose(c)
	if err != nil {
		return nil, c, err
	}

	return &HtmlTag{
		TagName:    open.TagName,
		Attributes: open.Attributes,
		Children:   children,
		sourceSpan: util.NewParseSourceSpan(open.SourceSpan().Start, tagClose.SourceSpan().End),
	}, c, nil
}
