package vdom

import (
	g "maragu.dev/gomponents"
)

// ToGomponents lowers an evaluated virtual-DOM tree to a gomponents node so
// it can be rendered as HTML. Event listeners and node references have no
// HTML representation and are dropped.
func ToGomponents(node VNode) g.Node {
	switch n := node.(type) {
	case VText:
		return g.Text(n.Text)
	case *VList:
		children := make([]g.Node, 0, len(n.Children))
		for _, child := range n.Children {
			children = append(children, ToGomponents(child))
		}
		return g.Group(children)
	case *VTag:
		return tagToGomponents(n)
	default:
		return nil
	}
}

func tagToGomponents(tag *VTag) g.Node {
	var parts []g.Node
	if tag.Kind != nil {
		parts = append(parts, g.Attr("type", *tag.Kind))
	}
	if tag.Value != nil {
		parts = append(parts, g.Attr("value", *tag.Value))
	}
	if tag.Checked != nil && *tag.Checked {
		parts = append(parts, g.Attr("checked"))
	}
	for _, attr := range tag.Attributes {
		parts = append(parts, g.Attr(attr.Name, attr.Value))
	}
	for _, child := range tag.Children {
		parts = append(parts, ToGomponents(child))
	}
	return g.El(tag.Tag(), parts...)
}
