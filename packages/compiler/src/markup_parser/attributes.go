package markup_parser

import (
	"fmt"

	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

// booleanAttributes lists the HTML attributes that are present/absent rather
// than valued. They are emitted conditionally on their expression.
var booleanAttributes = map[string]bool{
	"async":      true,
	"autofocus":  true,
	"autoplay":   true,
	"controls":   true,
	"default":    true,
	"defer":      true,
	"disabled":   true,
	"hidden":     true,
	"ismap":      true,
	"loop":       true,
	"multiple":   true,
	"muted":      true,
	"novalidate": true,
	"open":       true,
	"readonly":   true,
	"required":   true,
	"selected":   true,
}

// listenerNames lists the attribute labels that bind event listeners
var listenerNames = map[string]bool{
	"onblur":        true,
	"onchange":      true,
	"onclick":       true,
	"oncontextmenu": true,
	"ondoubleclick": true,
	"ondrag":        true,
	"ondragend":     true,
	"ondragenter":   true,
	"ondragleave":   true,
	"ondragover":    true,
	"ondragstart":   true,
	"ondrop":        true,
	"onfocus":       true,
	"oninput":       true,
	"onkeydown":     true,
	"onkeypress":    true,
	"onkeyup":       true,
	"onmousedown":   true,
	"onmouseenter":  true,
	"onmouseleave":  true,
	"onmousemove":   true,
	"onmouseout":    true,
	"onmouseover":   true,
	"onmouseup":     true,
	"onscroll":      true,
	"onsubmit":      true,
	"ontouchcancel": true,
	"ontouchend":    true,
	"ontouchmove":   true,
	"ontouchstart":  true,
	"onwheel":       true,
}

// TagAttribute represents one ordinary label=value attribute
type TagAttribute struct {
	Label *DashedName
	Value *Expr
}

// ListenerAttribute represents one event listener binding
type ListenerAttribute struct {
	Event      string
	Callback   *Expr
	sourceSpan *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (l *ListenerAttribute) SourceSpan() *util.ParseSourceSpan {
	return l.sourceSpan
}

// ClassesForm represents one parsed class-list attribute. The variant set is
// closed: a tuple of expressions merged in order, or a single collection
// expression converted directly.
type ClassesForm interface {
	classesForm()
}

// TupleClasses represents `class=(expr, expr, ...)`
type TupleClasses struct {
	Exprs []*Expr
}

func (*TupleClasses) classesForm() {}

// SingleClasses represents `class={expr}` with one collection expression
type SingleClasses struct {
	Expr *Expr
}

func (*SingleClasses) classesForm() {}

// TagAttributes represents the structured attribute set of one opening tag
type TagAttributes struct {
	Attributes []TagAttribute
	Booleans   []TagAttribute
	Classes    []ClassesForm
	Listeners  []*ListenerAttribute
	Kind       *Expr
	Value      *Expr
	Checked    *Expr
	NodeRef    *Expr
	Key        *Expr
	Href       *Expr
}

// ParseTagAttributes parses the attribute list between a tag name and the
// tag's closing delimiter. It returns the structured set, whether the tag is
// self-closing, the terminating `>` token, and the cursor placed after it.
func ParseTagAttributes(c token_stream.Cursor) (*TagAttributes, bool, token_stream.Token, token_stream.Cursor, *util.ParseError) {
	attrs := &TagAttributes{}
	for {
		if _, afterSlash, ok := c.PunctCh('/'); ok {
			gt, afterGt, ok := afterSlash.PunctCh('>')
			if !ok {
				return nil, false, gt, c, util.NewParseError(afterSlash.SourceSpan(), "expected `>` after `/`")
			}
			return attrs, true, gt, afterGt, nil
		}
		if gt, afterGt, ok := c.PunctCh('>'); ok {
			return attrs, false, gt, afterGt, nil
		}
		if c.Done() {
			return nil, false, token_stream.Token{}, c, util.NewParseError(c.SourceSpan(), "this opening tag is missing its closing `>`")
		}

		rest, err := parseAttribute(attrs, c)
		if err != nil {
			return nil, false, token_stream.Token{}, c, err
		}
		c = rest
	}
}

func parseAttribute(attrs *TagAttributes, c token_stream.Cursor) (token_stream.Cursor, *util.ParseError) {
	label, c, err := ParseDashedName(c)
	if err != nil {
		return c, util.NewParseError(c.SourceSpan(), "expected attribute name or `>`")
	}
	_, c, ok := c.PunctCh('=')
	if !ok {
		return c, util.NewParseError(label.SourceSpan(), fmt.Sprintf("the attribute `%s` is missing its `=value`", label))
	}

	name := label.ToAsciiLowercase()
	if name == "class" {
		form, rest, err := parseClassesForm(c)
		if err != nil {
			return c, err
		}
		attrs.Classes = append(attrs.Classes, form)
		return rest, nil
	}

	value, c, err := parseAttributeValue(c)
	if err != nil {
		return c, err
	}

	switch {
	case name == "type":
		return c, setUnique(&attrs.Kind, "type", label, value)
	case name == "value":
		return c, setUnique(&attrs.Value, "value", label, value)
	case name == "checked":
		return c, setUnique(&attrs.Checked, "checked", label, value)
	case name == "ref":
		return c, setUnique(&attrs.NodeRef, "ref", label, value)
	case name == "key":
		return c, setUnique(&attrs.Key, "key", label, value)
	case name == "href":
		return c, setUnique(&attrs.Href, "href", label, value)
	case listenerNames[name]:
		attrs.Listeners = append(attrs.Listeners, &ListenerAttribute{
			Event:      name,
			Callback:   value,
			sourceSpan: label.SourceSpan(),
		})
		return c, nil
	case booleanAttributes[name]:
		attrs.Booleans = append(attrs.Booleans, TagAttribute{Label: label, Value: value})
		return c, nil
	default:
		attrs.Attributes = append(attrs.Attributes, TagAttribute{Label: label, Value: value})
		return c, nil
	}
}

func setUnique(slot **Expr, name string, label *DashedName, value *Expr) *util.ParseError {
	if *slot != nil {
		return util.NewParseError(label.SourceSpan(), fmt.Sprintf("only one `%s` attribute allowed", name))
	}
	*slot = value
	return nil
}

// parseClassesForm parses the value of a `class` attribute: a parenthesized,
// comma-separated tuple of expressions, or a single collection value
func parseClassesForm(c token_stream.Cursor) (ClassesForm, token_stream.Cursor, *util.ParseError) {
	if group, after, ok := c.Group(token_stream.DelimiterPAREN); ok {
		tuple := &TupleClasses{}
		var current []token_stream.Token
		flush := func() {
			if len(current) > 0 {
				span := util.NewParseSourceSpan(current[0].SourceSpan().Start, current[len(current)-1].SourceSpan().End)
				tuple.Exprs = append(tuple.Exprs, NewExpr(current, span))
				current = nil
			}
		}
		for _, token := range group.Tokens {
			if token.IsPunct(',') {
				flush()
				continue
			}
			current = append(current, token)
		}
		flush()
		return tuple, after, nil
	}

	value, after, err := parseAttributeValue(c)
	if err != nil {
		return nil, c, err
	}
	return &SingleClasses{Expr: value}, after, nil
}

// parseAttributeValue captures one attribute value expression without
// interpreting it: a braced expression block, a literal, or an identifier
// path with call arguments (`self.link.callback(...)`)
func parseAttributeValue(c token_stream.Cursor) (*Expr, token_stream.Cursor, *util.ParseError) {
	if group, after, ok := c.Group(token_stream.DelimiterBRACE); ok {
		return exprFromGroup(group), after, nil
	}
	if literal, after, ok := c.Literal(); ok {
		return exprFromToken(literal), after, nil
	}

	first, after, ok := c.Ident()
	if !ok {
		return nil, c, util.NewParseError(c.SourceSpan(), "expected an attribute value: a literal, an identifier path, or a `{...}` block")
	}
	tokens := []token_stream.Token{first}
	c = after
	for {
		if _, afterDot, ok := c.PunctCh('.'); ok {
			part, afterPart, ok := afterDot.Ident()
			if !ok {
				return nil, c, util.NewParseError(afterDot.SourceSpan(), "expected identifier after `.`")
			}
			dot, _, _ := c.Punct()
			tokens = append(tokens, dot, part)
			c = afterPart
			continue
		}
		if group, afterGroup, ok := c.Group(token_stream.DelimiterPAREN); ok {
			tokens = append(tokens, group)
			c = afterGroup
			continue
		}
		if group, afterGroup, ok := c.Group(token_stream.DelimiterBRACKET); ok {
			tokens = append(tokens, group)
			c = afterGroup
			continue
		}
		break
	}
	span := util.NewParseSourceSpan(tokens[0].SourceSpan().Start, tokens[len(tokens)-1].SourceSpan().End)
	return NewExpr(tokens, span), c, nil
}
