package program

// Dump converts a construction program into plain maps and slices so it can
// be serialized, with captured expressions rendered back to source text
func Dump(p Program) interface{} {
	switch prog := p.(type) {
	case TextProgram:
		return map[string]interface{}{"kind": "text", "text": prog.Text}
	case ExprProgram:
		return map[string]interface{}{"kind": "expr", "expr": prog.Expr.String()}
	case *ListProgram:
		dump := map[string]interface{}{"kind": "list", "children": dumpPrograms(prog.Children)}
		if prog.Key != nil {
			dump["key"] = prog.Key.String()
		}
		return dump
	case *TagProgram:
		return map[string]interface{}{
			"kind": "tag",
			"name": dumpName(prog.Name),
			"ops":  dumpOps(prog.Ops),
		}
	default:
		return nil
	}
}

func dumpName(name NameSource) interface{} {
	switch n := name.(type) {
	case LiteralName:
		return map[string]interface{}{"literal": n.Name}
	case DynamicName:
		return map[string]interface{}{"dynamic": n.Expr.String()}
	default:
		return nil
	}
}

func dumpPrograms(programs []Program) []interface{} {
	dumps := make([]interface{}, 0, len(programs))
	for _, p := range programs {
		dumps = append(dumps, Dump(p))
	}
	return dumps
}

func dumpOps(ops []Op) []interface{} {
	dumps := make([]interface{}, 0, len(ops))
	for _, op := range ops {
		dumps = append(dumps, dumpOp(op))
	}
	return dumps
}

func dumpOp(op Op) interface{} {
	switch o := op.(type) {
	case SetKindOp:
		return map[string]interface{}{"op": "set_kind", "expr": o.Expr.String()}
	case SetValueOp:
		return map[string]interface{}{"op": "set_value", "expr": o.Expr.String()}
	case AddHrefOp:
		return map[string]interface{}{"op": "add_href", "expr": o.Expr.String()}
	case SetCheckedOp:
		return map[string]interface{}{"op": "set_checked", "expr": o.Expr.String()}
	case SetBooleanAttrOp:
		return map[string]interface{}{"op": "set_boolean_attr", "name": o.Name, "cond": o.Cond.String()}
	case AddClassesOp:
		if o.Single != nil {
			return map[string]interface{}{"op": "add_classes", "single": o.Single.String()}
		}
		exprs := make([]string, 0, len(o.Tuple))
		for _, expr := range o.Tuple {
			exprs = append(exprs, expr.String())
		}
		return map[string]interface{}{"op": "add_classes", "tuple": exprs}
	case SetNodeRefOp:
		return map[string]interface{}{"op": "set_node_ref", "expr": o.Expr.String()}
	case SetKeyOp:
		return map[string]interface{}{"op": "set_key", "expr": o.Expr.String()}
	case AddAttributesOp:
		pairs := make([]interface{}, 0, len(o.Pairs))
		for _, pair := range o.Pairs {
			pairs = append(pairs, map[string]interface{}{"name": pair.Name, "value": pair.Value.String()})
		}
		return map[string]interface{}{"op": "add_attributes", "pairs": pairs}
	case AddListenersOp:
		listeners := make([]interface{}, 0, len(o.Listeners))
		for _, binding := range o.Listeners {
			listeners = append(listeners, map[string]interface{}{"event": binding.Event, "callback": binding.Callback.String()})
		}
		return map[string]interface{}{"op": "add_listeners", "listeners": listeners}
	case AddChildrenOp:
		return map[string]interface{}{"op": "add_children", "children": dumpPrograms(o.Children)}
	case VoidGuardOp:
		return map[string]interface{}{"op": "void_guard"}
	case RehomeValueOp:
		return map[string]interface{}{"op": "rehome_value"}
	default:
		return nil
	}
}
