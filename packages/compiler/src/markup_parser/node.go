package markup_parser

import "hmc-go/packages/compiler/src/util"

// Node represents one parsed markup construct
type Node interface {
	node()
	SourceSpan() *util.ParseSourceSpan
}

// HtmlText represents a text literal child
type HtmlText struct {
	Text       string
	sourceSpan *util.ParseSourceSpan
}

func (*HtmlText) node() {}

// SourceSpan returns the source span
func (t *HtmlText) SourceSpan() *util.ParseSourceSpan {
	return t.sourceSpan
}

// HtmlBlock represents an embedded `{ expr }` child whose value is computed
// by the host language at runtime
type HtmlBlock struct {
	Expr       *Expr
	sourceSpan *util.ParseSourceSpan
}

func (*HtmlBlock) node() {}

// SourceSpan returns the source span
func (b *HtmlBlock) SourceSpan() *util.ParseSourceSpan {
	return b.sourceSpan
}

// HtmlList represents a fragment `<>...</>`, optionally keyed with
// `<key=expr>...</>`
type HtmlList struct {
	Children   *ChildrenTree
	Key        *Expr
	sourceSpan *util.ParseSourceSpan
}

func (*HtmlList) node() {}

// SourceSpan returns the source span
func (l *HtmlList) SourceSpan() *util.ParseSourceSpan {
	return l.sourceSpan
}
