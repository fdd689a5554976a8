package markup_parser

import (
	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

// TagKey is the comparison-only identity used to pair opening and closing
// tags. Every dynamic tag shares one key; literal tags compare by their
// lowercased canonical name. It is never used for code generation.
type TagKey struct {
	Dynamic bool
	Name    string
}

// DynamicName represents the `@{expr}` dynamic tag name marker. The
// expression block is optional because closing tags are written `</@>`.
type DynamicName struct {
	Expr       *Expr
	sourceSpan *util.ParseSourceSpan
}

// PeekDynamicName returns the cursor placed after a dynamic name marker, if
// one starts at the given cursor
func PeekDynamicName(c token_stream.Cursor) (token_stream.Cursor, bool) {
	_, c, ok := c.PunctCh('@')
	if !ok {
		return c, false
	}
	// move past the expression block if there is one
	if _, afterGroup, ok := c.Group(token_stream.DelimiterBRACE); ok {
		return afterGroup, true
	}
	return c, true
}

// ParseDynamicName consumes a dynamic name at the cursor
func ParseDynamicName(c token_stream.Cursor) (*DynamicName, token_stream.Cursor, *util.ParseError) {
	at, c, ok := c.PunctCh('@')
	if !ok {
		return nil, c, util.NewParseError(c.SourceSpan(), "expected `@`")
	}

	name := &DynamicName{sourceSpan: at.SourceSpan()}
	// the expression block is optional, closing tags don't have it
	if group, afterGroup, ok := c.Group(token_stream.DelimiterBRACE); ok {
		name.Expr = exprFromGroup(group)
		name.sourceSpan = util.NewParseSourceSpan(at.SourceSpan().Start, group.SourceSpan().End)
		c = afterGroup
	}
	return name, c, nil
}

// SourceSpan returns the source span
func (n *DynamicName) SourceSpan() *util.ParseSourceSpan {
	return n.sourceSpan
}

// TagName represents a parsed tag name: either a literal dash-separated
// identifier or a dynamic name computed by an expression. The variant set is
// closed; every consumer switches exhaustively over the two.
type TagName interface {
	tagName()
	// Key projects the name onto its matching identity
	Key() TagKey
	SourceSpan() *util.ParseSourceSpan
}

// LiteralTagName represents a tag name written literally in the source
type LiteralTagName struct {
	Name *DashedName
}

func (*LiteralTagName) tagName() {}

// Key returns the matching identity of the literal name
func (n *LiteralTagName) Key() TagKey {
	return TagKey{Name: n.Name.ToAsciiLowercase()}
}

// SourceSpan returns the source span
func (n *LiteralTagName) SourceSpan() *util.ParseSourceSpan {
	return n.Name.SourceSpan()
}

// DynamicTagName represents a tag name computed by an expression block
type DynamicTagName struct {
	Name *DynamicName
}

func (*DynamicTagName) tagName() {}

// Key returns the shared matching identity of all dynamic names
func (n *DynamicTagName) Key() TagKey {
	return TagKey{Dynamic: true}
}

// SourceSpan returns the source span
func (n *DynamicTagName) SourceSpan() *util.ParseSourceSpan {
	return n.Name.SourceSpan()
}

// PeekTagName returns the matching key of the tag name starting at the
// cursor, if any, together with the literal dashed name (nil for dynamic
// names) and the cursor placed after it
func PeekTagName(c token_stream.Cursor) (TagKey, *DashedName, token_stream.Cursor, bool) {
	if after, ok := PeekDynamicName(c); ok {
		return TagKey{Dynamic: true}, nil, after, true
	}
	if name, after, ok := PeekDashedName(c); ok {
		return TagKey{Name: name.ToAsciiLowercase()}, name, after, true
	}
	return TagKey{}, nil, c, false
}

// ParseTagName consumes a tag name at the cursor
func ParseTagName(c token_stream.Cursor) (TagName, token_stream.Cursor, *util.ParseError) {
	if _, ok := PeekDynamicName(c); ok {
		name, rest, err := ParseDynamicName(c)
		if err != nil {
			return nil, c, err
		}
		return &DynamicTagName{Name: name}, rest, nil
	}
	name, rest, err := ParseDashedName(c)
	if err != nil {
		return nil, c, err
	}
	return &LiteralTagName{Name: name}, rest, nil
}
