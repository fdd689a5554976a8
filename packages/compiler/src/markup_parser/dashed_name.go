package markup_parser

import (
	"strings"

	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

// DashedName represents a hyphen-joined identifier sequence such as
// `custom-element`. The canonical rendering joins the parts with `-`;
// comparisons for tag matching go through the lowercase key.
type DashedName struct {
	Parts      []string
	sourceSpan *util.ParseSourceSpan
}

// NewDashedName creates a DashedName from a single identifier part
func NewDashedName(name string, sourceSpan *util.ParseSourceSpan) *DashedName {
	return &DashedName{Parts: []string{name}, sourceSpan: sourceSpan}
}

// PeekDashedName returns the dashed name starting at the cursor, if any,
// together with the cursor placed after it
func PeekDashedName(c token_stream.Cursor) (*DashedName, token_stream.Cursor, bool) {
	first, c, ok := c.Ident()
	if !ok {
		return nil, c, false
	}

	name := &DashedName{Parts: []string{first.Text}, sourceSpan: first.SourceSpan()}
	for {
		_, afterDash, ok := c.PunctCh('-')
		if !ok {
			break
		}
		part, afterPart, ok := afterDash.Ident()
		if !ok {
			break
		}
		name.Parts = append(name.Parts, part.Text)
		name.sourceSpan = util.NewParseSourceSpan(name.sourceSpan.Start, part.SourceSpan().End)
		c = afterPart
	}
	return name, c, true
}

// ParseDashedName consumes a dashed name at the cursor
func ParseDashedName(c token_stream.Cursor) (*DashedName, token_stream.Cursor, *util.ParseError) {
	name, rest, ok := PeekDashedName(c)
	if !ok {
		return nil, c, util.NewParseError(c.SourceSpan(), "expected identifier")
	}
	return name, rest, nil
}

// SourceSpan returns the source span
func (n *DashedName) SourceSpan() *util.ParseSourceSpan {
	return n.sourceSpan
}

// String renders the canonical dash-separated name
func (n *DashedName) String() string {
	return strings.Join(n.Parts, "-")
}

// ToAsciiLowercase returns the canonical name lowered for case-insensitive
// comparison
func (n *DashedName) ToAsciiLowercase() string {
	return strings.ToLower(n.String())
}
