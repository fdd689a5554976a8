package markup_parser

import (
	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

// TagOpen represents one parsed opening tag boundary: `<name attrs...>` or
// `<name attrs.../>`
type TagOpen struct {
	TagName     TagName
	Attributes  *TagAttributes
	SelfClosing bool
	sourceSpan  *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (t *TagOpen) SourceSpan() *util.ParseSourceSpan {
	return t.sourceSpan
}

// PeekTagOpen returns the matching key of the opening tag starting at the
// cursor, if the cursor really is at one. Two literal-name shapes are
// rejected on purpose: `key=` (markup-list syntax, not a tag) and names with
// a capitalized first letter (embedded-component syntax handled elsewhere).
func PeekTagOpen(c token_stream.Cursor) (TagKey, bool) {
	_, c, ok := c.PunctCh('<')
	if !ok {
		return TagKey{}, false
	}
	key, name, c, ok := PeekTagName(c)
	if !ok {
		return TagKey{}, false
	}
	if name != nil {
		if name.String() == "key" {
			// `<key=[...]>` must be parsed as a markup list, unless the
			// name isn't followed by `=`: `<key></key>` is a valid tag.
			punct, _, ok := c.Punct()
			if !ok || punct.IsPunct('=') {
				return TagKey{}, false
			}
		} else if !nonCapitalizedASCII(name.String()) {
			return TagKey{}, false
		}
	}
	return key, true
}

// ParseTagOpen consumes one opening tag boundary at the cursor
func ParseTagOpen(c token_stream.Cursor) (*TagOpen, token_stream.Cursor, *util.ParseError) {
	lt, c, ok := c.PunctCh('<')
	if !ok {
		return nil, c, util.NewParseError(c.SourceSpan(), "expected `<`")
	}
	tagName, c, err := ParseTagName(c)
	if err != nil {
		return nil, c, err
	}
	attributes, selfClosing, gt, rest, err := ParseTagAttributes(c)
	if err != nil {
		return nil, c, err
	}

	open := &TagOpen{
		TagName:     tagName,
		Attributes:  attributes,
		SelfClosing: selfClosing,
		sourceSpan:  util.NewParseSourceSpan(lt.SourceSpan().Start, gt.SourceSpan().End),
	}
	if err := validateTagOpen(open); err != nil {
		return nil, c, err
	}
	rehomeValueAttribute(open)
	return open, rest, nil
}
