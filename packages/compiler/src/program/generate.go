package program

import (
	"hmc-go/packages/compiler/src/markup_parser"
)

// Generate walks one parsed markup node and emits its construction program.
// Generation cannot fail: every diagnosable condition was already rejected
// during parsing, and the checks that depend on a dynamic tag's runtime name
// are emitted as trailing guard ops instead.
func Generate(node markup_parser.Node) Program {
	switch n := node.(type) {
	case *markup_parser.HtmlTag:
		return generateTag(n)
	case *markup_parser.HtmlText:
		return TextProgram{Text: n.Text}
	case *markup_parser.HtmlBlock:
		return ExprProgram{Expr: n.Expr}
	case *markup_parser.HtmlList:
		return &ListProgram{
			Key:      n.Key,
			Children: generateChildren(n.Children),
		}
	default:
		return nil
	}
}

func generateTag(tag *markup_parser.HtmlTag) *TagProgram {
	var name NameSource
	dynamic := false
	switch tagName := tag.TagName.(type) {
	case *markup_parser.LiteralTagName:
		name = LiteralName{Name: tagName.Name.String()}
	case *markup_parser.DynamicTagName:
		name = DynamicName{Expr: tagName.Name.Expr}
		dynamic = true
	}

	attrs := tag.Attributes
	var ops []Op

	// single-valued slots, in this fixed order
	if attrs.Kind != nil {
		ops = append(ops, SetKindOp{Expr: attrs.Kind})
	}
	if attrs.Value != nil {
		ops = append(ops, SetValueOp{Expr: attrs.Value})
	}
	if attrs.Href != nil {
		ops = append(ops, AddHrefOp{Expr: attrs.Href})
	}
	if attrs.Checked != nil {
		ops = append(ops, SetCheckedOp{Expr: attrs.Checked})
	}

	for _, boolean := range attrs.Booleans {
		ops = append(ops, SetBooleanAttrOp{
			Name: boolean.Label.String(),
			Cond: boolean.Value,
		})
	}

	for _, form := range attrs.Classes {
		switch f := form.(type) {
		case *markup_parser.TupleClasses:
			ops = append(ops, AddClassesOp{Tuple: f.Exprs})
		case *markup_parser.SingleClasses:
			ops = append(ops, AddClassesOp{Single: f.Expr})
		}
	}

	if attrs.NodeRef != nil {
		ops = append(ops, SetNodeRefOp{Expr: attrs.NodeRef})
	}
	if attrs.Key != nil {
		ops = append(ops, SetKeyOp{Expr: attrs.Key})
	}

	if len(attrs.Attributes) > 0 {
		pairs := make([]AttributePair, 0, len(attrs.Attributes))
		for _, attr := range attrs.Attributes {
			pairs = append(pairs, AttributePair{
				Name:  attr.Label.String(),
				Value: attr.Value,
			})
		}
		ops = append(ops, AddAttributesOp{Pairs: pairs})
	}

	if len(attrs.Listeners) > 0 {
		listeners := make([]ListenerBinding, 0, len(attrs.Listeners))
		for _, listener := range attrs.Listeners {
			listeners = append(listeners, ListenerBinding{
				Event:    listener.Event,
				Callback: listener.Callback,
			})
		}
		ops = append(ops, AddListenersOp{Listeners: listeners})
	}

	if !tag.Children.IsEmpty() {
		ops = append(ops, AddChildrenOp{Children: generateChildren(tag.Children)})
	}

	// runtime twins of the parse-time checks, dynamic names only
	if dynamic {
		ops = append(ops, VoidGuardOp{}, RehomeValueOp{})
	}

	return &TagProgram{Name: name, Ops: ops}
}

func generateChildren(tree *markup_parser.ChildrenTree) []Program {
	if tree == nil || tree.IsEmpty() {
		return nil
	}
	programs := make([]Program, 0, len(tree.Children))
	for _, child := range tree.Children {
		programs = append(programs, Generate(child))
	}
	return programs
}
