package program

import (
	"fmt"

	"hmc-go/packages/compiler/src/markup_parser"
	"hmc-go/packages/compiler/src/vdom"
)

// ExprEvaluator evaluates one captured host expression. The program itself
// never interprets expressions; whoever runs it supplies the host semantics.
type ExprEvaluator interface {
	Eval(expr *markup_parser.Expr) (interface{}, error)
}

// ExprEvaluatorFunc adapts a function to the ExprEvaluator interface
type ExprEvaluatorFunc func(expr *markup_parser.Expr) (interface{}, error)

// Eval implements ExprEvaluator
func (f ExprEvaluatorFunc) Eval(expr *markup_parser.Expr) (interface{}, error) {
	return f(expr)
}

// Run executes one construction program and returns the node it builds.
// Expression evaluation failures are returned as errors; the deferred
// dynamic-tag guards are non-recoverable and panic, exactly like the checks
// they mirror would have failed the parse.
func Run(p Program, eval ExprEvaluator) (vdom.VNode, error) {
	switch prog := p.(type) {
	case TextProgram:
		return vdom.VText{Text: prog.Text}, nil
	case ExprProgram:
		value, err := eval.Eval(prog.Expr)
		if err != nil {
			return nil, err
		}
		if node, ok := value.(vdom.VNode); ok {
			return node, nil
		}
		return vdom.VText{Text: toString(value)}, nil
	case *ListProgram:
		list := &vdom.VList{}
		if prog.Key != nil {
			key, err := eval.Eval(prog.Key)
			if err != nil {
				return nil, err
			}
			list.Key = toString(key)
		}
		for _, child := range prog.Children {
			node, err := Run(child, eval)
			if err != nil {
				return nil, err
			}
			list.Children = append(list.Children, node)
		}
		return list, nil
	case *TagProgram:
		return runTag(prog, eval)
	default:
		return nil, fmt.Errorf("unknown program kind %T", p)
	}
}

func runTag(prog *TagProgram, eval ExprEvaluator) (vdom.VNode, error) {
	name, err := bindTagName(prog.Name, eval)
	if err != nil {
		return nil, err
	}
	tag := vdom.NewVTag(name)

	for _, op := range prog.Ops {
		if err := runOp(tag, op, eval); err != nil {
			return nil, err
		}
	}
	return tag, nil
}

func bindTagName(name NameSource, eval ExprEvaluator) (string, error) {
	switch n := name.(type) {
	case LiteralName:
		return n.Name, nil
	case DynamicName:
		value, err := eval.Eval(n.Expr)
		if err != nil {
			return "", err
		}
		tagName := toString(value)
		if !isASCII(tagName) {
			panic(fmt.Sprintf("a dynamic tag returned a tag name containing non ASCII characters: `%s`", tagName))
		}
		// lowercase because the runtime checks rely on it
		return asciiLowercase(tagName), nil
	default:
		return "", fmt.Errorf("unknown name source %T", name)
	}
}

func runOp(tag *vdom.VTag, op Op, eval ExprEvaluator) error {
	switch o := op.(type) {
	case SetKindOp:
		value, err := eval.Eval(o.Expr)
		if err != nil {
			return err
		}
		kind := toString(value)
		tag.Kind = &kind
	case SetValueOp:
		value, err := eval.Eval(o.Expr)
		if err != nil {
			return err
		}
		text := toString(value)
		tag.Value = &text
	case AddHrefOp:
		value, err := eval.Eval(o.Expr)
		if err != nil {
			return err
		}
		tag.AddAttribute("href", string(vdom.ToHref(value)))
	case SetCheckedOp:
		value, err := eval.Eval(o.Expr)
		if err != nil {
			return err
		}
		checked := toBool(value)
		tag.Checked = &checked
	case SetBooleanAttrOp:
		value, err := eval.Eval(o.Cond)
		if err != nil {
			return err
		}
		if toBool(value) {
			tag.AddAttribute(o.Name, o.Name)
		}
	case AddClassesOp:
		classes, err := mergeClasses(o, eval)
		if err != nil {
			return err
		}
		if !classes.IsEmpty() {
			tag.AddAttribute("class", classes.String())
		}
	case SetNodeRefOp:
		value, err := eval.Eval(o.Expr)
		if err != nil {
			return err
		}
		tag.NodeRef = value
	case SetKeyOp:
		value, err := eval.Eval(o.Expr)
		if err != nil {
			return err
		}
		key := toString(value)
		tag.Key = &key
	case AddAttributesOp:
		for _, pair := range o.Pairs {
			value, err := eval.Eval(pair.Value)
			if err != nil {
				return err
			}
			tag.AddAttribute(pair.Name, toString(value))
		}
	case AddListenersOp:
		for _, binding := range o.Listeners {
			callback, err := eval.Eval(binding.Callback)
			if err != nil {
				return err
			}
			tag.AddListener(&vdom.Listener{Event: binding.Event, Callback: callback})
		}
	case AddChildrenOp:
		for _, child := range o.Children {
			node, err := Run(child, eval)
			if err != nil {
				return err
			}
			tag.AddChild(node)
		}
	case VoidGuardOp:
		if len(tag.Children) > 0 && vdom.IsVoidElement(tag.Tag()) {
			panic(fmt.Sprintf(
				"a dynamic tag tried to create a `<%s>` tag with children. `<%s>` is a void element which can't have any children.",
				tag.Tag(), tag.Tag(),
			))
		}
	case RehomeValueOp:
		if !vdom.IsInputLike(tag.Tag()) && tag.Value != nil {
			value := *tag.Value
			tag.Value = nil
			tag.AddAttribute("value", value)
		}
	default:
		return fmt.Errorf("unknown op %T", op)
	}
	return nil
}

func mergeClasses(op AddClassesOp, eval ExprEvaluator) (*vdom.Classes, error) {
	if op.Single != nil {
		value, err := eval.Eval(op.Single)
		if err != nil {
			return nil, err
		}
		return vdom.ClassesFrom(value), nil
	}
	classes := vdom.NewClasses()
	for _, expr := range op.Tuple {
		value, err := eval.Eval(expr)
		if err != nil {
			return nil, err
		}
		classes.Extend(value)
	}
	return classes, nil
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func toBool(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

func asciiLowercase(s string) string {
	b := []byte(s)
	for i, ch := range b {
		if 'A' <= ch && ch <= 'Z' {
			b[i] = ch + ('a' - 'A')
		}
	}
	return string(b)
}
