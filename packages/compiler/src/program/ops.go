// Package program defines the node-construction program emitted by the code
// generator and the evaluator that executes one against a virtual-DOM tree.
package program

import (
	"hmc-go/packages/compiler/src/markup_parser"
)

// NameSource represents how the runtime tag name is obtained
type NameSource interface {
	nameSource()
}

// LiteralName embeds the tag name as a constant string
type LiteralName struct {
	Name string
}

func (LiteralName) nameSource() {}

// DynamicName computes the tag name from an expression at construction time.
// The result is converted to an owned string, rejected (non-recoverably) if
// it is not pure ASCII, and normalized to lowercase. Every later structural
// decision compares against lowercase constants.
type DynamicName struct {
	Expr *markup_parser.Expr
}

func (DynamicName) nameSource() {}

// Op represents one instruction of a tag's construction program
type Op interface {
	op()
}

// SetKindOp sets the input kind (`type` attribute slot)
type SetKindOp struct {
	Expr *markup_parser.Expr
}

// SetValueOp sets the dedicated `value` slot
type SetValueOp struct {
	Expr *markup_parser.Expr
}

// AddHrefOp attaches the `href` attribute through its conversion type
type AddHrefOp struct {
	Expr *markup_parser.Expr
}

// SetCheckedOp sets the `checked` slot
type SetCheckedOp struct {
	Expr *markup_parser.Expr
}

// SetBooleanAttrOp sets attribute name=name only if the guard expression
// evaluates true
type SetBooleanAttrOp struct {
	Name string
	Cond *markup_parser.Expr
}

// AddClassesOp merges one class-list form and attaches the `class` attribute
// only if the merged collection is non-empty. Exactly one of Tuple and
// Single is set.
type AddClassesOp struct {
	Tuple  []*markup_parser.Expr
	Single *markup_parser.Expr
}

// SetNodeRefOp binds the node reference
type SetNodeRefOp struct {
	Expr *markup_parser.Expr
}

// SetKeyOp sets the identity key
type SetKeyOp struct {
	Expr *markup_parser.Expr
}

// AttributePair is one plain attribute attachment
type AttributePair struct {
	Name  string
	Value *markup_parser.Expr
}

// AddAttributesOp attaches the full plain key/value attribute list
type AddAttributesOp struct {
	Pairs []AttributePair
}

// ListenerBinding is one event listener attachment
type ListenerBinding struct {
	Event    string
	Callback *markup_parser.Expr
}

// AddListenersOp attaches all event listeners, each shared by reference
type AddListenersOp struct {
	Listeners []ListenerBinding
}

// AddChildrenOp attaches the children construction programs
type AddChildrenOp struct {
	Children []Program
}

// VoidGuardOp aborts at runtime if the (dynamic) tag turned out to be a void
// element and the node has children. Literal tags are rejected at parse time
// instead; this op is only emitted for dynamic names.
type VoidGuardOp struct{}

// RehomeValueOp moves a set `value` into the plain attribute map at runtime
// unless the (dynamic) tag turned out to be input-like. Mirrors the static
// rewrite done during boundary parsing for literal names.
type RehomeValueOp struct{}

func (SetKindOp) op()        {}
func (SetValueOp) op()       {}
func (AddHrefOp) op()        {}
func (SetCheckedOp) op()     {}
func (SetBooleanAttrOp) op() {}
func (AddClassesOp) op()     {}
func (SetNodeRefOp) op()     {}
func (SetKeyOp) op()         {}
func (AddAttributesOp) op()  {}
func (AddListenersOp) op()   {}
func (AddChildrenOp) op()    {}
func (VoidGuardOp) op()      {}
func (RehomeValueOp) op()    {}

// Program represents one node-construction program. A child program embeds
// in its parent's AddChildrenOp unchanged, whatever its concrete kind.
type Program interface {
	program()
}

// TagProgram builds one element node: bind the name, then run the ops in
// order against the fresh node
type TagProgram struct {
	Name NameSource
	Ops  []Op
}

func (*TagProgram) program() {}

// TextProgram produces one text node from a constant string
type TextProgram struct {
	Text string
}

func (TextProgram) program() {}

// ExprProgram produces a node from an embedded host expression
type ExprProgram struct {
	Expr *markup_parser.Expr
}

func (ExprProgram) program() {}

// ListProgram produces a fragment node from child programs
type ListProgram struct {
	Key      *markup_parser.Expr
	Children []Program
}

func (*ListProgram) program() {}
