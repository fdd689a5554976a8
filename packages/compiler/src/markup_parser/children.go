package markup_parser

import (
	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

// ChildParser parses exactly one child construct at the cursor. The tag tree
// parser and the grammar dispatcher call into each other through this
// interface, so either side can be exercised with a synthetic peer.
type ChildParser interface {
	ParseChild(c token_stream.Cursor) (Node, token_stream.Cursor, *util.ParseError)
}

// ChildrenTree collects parsed child nodes in source order
type ChildrenTree struct {
	Children []Node
}

// NewChildrenTree creates an empty children tree
func NewChildrenTree() *ChildrenTree {
	return &ChildrenTree{}
}

// ParseChild parses one child with the given parser and appends it
func (t *ChildrenTree) ParseChild(parser ChildParser, c token_stream.Cursor) (token_stream.Cursor, *util.ParseError) {
	child, rest, err := parser.ParseChild(c)
	if err != nil {
		return c, err
	}
	t.Children = append(t.Children, child)
	return rest, nil
}

// IsEmpty returns whether no children were collected
func (t *ChildrenTree) IsEmpty() bool {
	return len(t.Children) == 0
}
