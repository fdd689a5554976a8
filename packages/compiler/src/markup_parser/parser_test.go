package markup_parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hmc-go/packages/compiler/src/markup_parser"
	"hmc-go/packages/compiler/src/token_stream"
	"hmc-go/packages/compiler/src/util"
)

func parse(t *testing.T, source string) markup_parser.Node {
	t.Helper()
	node, err := markup_parser.Parse(source, "test.html")
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", source, err)
	}
	return node
}

func parseTag(t *testing.T, source string) *markup_parser.HtmlTag {
	t.Helper()
	node := parse(t, source)
	tag, ok := node.(*markup_parser.HtmlTag)
	if !ok {
		t.Fatalf("Parse(%q) = %T, want *HtmlTag", source, node)
	}
	return tag
}

func expectParseError(t *testing.T, source, wantMsg string) *util.ParseError {
	t.Helper()
	_, err := markup_parser.Parse(source, "test.html")
	if err == nil {
		t.Fatalf("Parse(%q) expected error containing %q", source, wantMsg)
	}
	if !strings.Contains(err.Msg, wantMsg) {
		t.Fatalf("Parse(%q) error = %q, want it to contain %q", source, err.Msg, wantMsg)
	}
	return err
}

func TestParseTag(t *testing.T) {
	t.Run("self-closing tag has zero children", func(t *testing.T) {
		tag := parseTag(t, "<br/>")
		if !tag.Children.IsEmpty() {
			t.Errorf("children = %d, want none", len(tag.Children.Children))
		}
		name := tag.TagName.(*markup_parser.LiteralTagName)
		if name.Name.String() != "br" {
			t.Errorf("tag name = %q, want br", name.Name)
		}
	})

	t.Run("open/close pair with text child", func(t *testing.T) {
		tag := parseTag(t, `<div>"hello"</div>`)
		if len(tag.Children.Children) != 1 {
			t.Fatalf("children = %d, want 1", len(tag.Children.Children))
		}
		text, ok := tag.Children.Children[0].(*markup_parser.HtmlText)
		if !ok || text.Text != "hello" {
			t.Errorf("child = %#v, want text `hello`", tag.Children.Children[0])
		}
	})

	t.Run("nested tags", func(t *testing.T) {
		tag := parseTag(t, "<ul><li></li><li></li></ul>")
		if len(tag.Children.Children) != 2 {
			t.Fatalf("children = %d, want 2", len(tag.Children.Children))
		}
		for _, child := range tag.Children.Children {
			li := child.(*markup_parser.HtmlTag)
			if li.TagName.Key() != (markup_parser.TagKey{Name: "li"}) {
				t.Errorf("child key = %v, want li", li.TagName.Key())
			}
		}
	})

	t.Run("dashed tag names", func(t *testing.T) {
		tag := parseTag(t, "<custom-element-name/>")
		name := tag.TagName.(*markup_parser.LiteralTagName)
		if name.Name.String() != "custom-element-name" {
			t.Errorf("tag name = %q", name.Name)
		}
	})

	t.Run("expression block child", func(t *testing.T) {
		tag := parseTag(t, "<div>{child}</div>")
		block := tag.Children.Children[0].(*markup_parser.HtmlBlock)
		if block.Expr.String() != "child" {
			t.Errorf("block expr = %q, want child", block.Expr)
		}
	})

	t.Run("idempotence of self-closing vs empty pair", func(t *testing.T) {
		selfClosed := parseTag(t, `<div a="1"/>`)
		paired := parseTag(t, `<div a="1"></div>`)
		if !paired.Children.IsEmpty() {
			t.Fatalf("paired children = %d, want none", len(paired.Children.Children))
		}
		humanizeAttrs := func(tag *markup_parser.HtmlTag) []string {
			var attrs []string
			for _, attr := range tag.Attributes.Attributes {
				attrs = append(attrs, attr.Label.String()+"="+attr.Value.String())
			}
			return attrs
		}
		if diff := cmp.Diff(humanizeAttrs(selfClosed), humanizeAttrs(paired)); diff != "" {
			t.Errorf("attribute sets differ (-self-closed +paired):\n%s", diff)
		}
	})

	t.Run("tag named key without = is a tag", func(t *testing.T) {
		tag := parseTag(t, "<key></key>")
		name := tag.TagName.(*markup_parser.LiteralTagName)
		if name.Name.String() != "key" {
			t.Errorf("tag name = %q, want key", name.Name)
		}
	})
}

func TestParseTagErrors(t *testing.T) {
	t.Run("unmatched closing tag", func(t *testing.T) {
		expectParseError(t, "</div>", "this closing tag has no corresponding opening tag")
	})

	t.Run("unmatched opening tag", func(t *testing.T) {
		expectParseError(t, "<div>", "this opening tag has no corresponding closing tag")
	})

	t.Run("mismatched close is not matched non-locally", func(t *testing.T) {
		// the inner </span> never matches the outer <div>
		expectParseError(t, "<div><span></div></span>", "this closing tag has no corresponding opening tag")
	})

	t.Run("void element with children", func(t *testing.T) {
		err := expectParseError(t, `<br>"text"</br>`, "void element and cannot have children")
		if !strings.Contains(err.Msg, "<br/>") {
			t.Errorf("error %q should hint at `<br/>`", err.Msg)
		}
	})

	t.Run("void element without self-close fails even when empty", func(t *testing.T) {
		expectParseError(t, "<img></img>", "void element and cannot have children")
	})

	t.Run("every void element accepts self-closing syntax", func(t *testing.T) {
		for _, name := range []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr"} {
			if _, err := markup_parser.Parse("<"+name+"/>", "test.html"); err != nil {
				t.Errorf("Parse(<%s/>) error: %v", name, err)
			}
		}
	})

	t.Run("capitalized names are not tags", func(t *testing.T) {
		expectParseError(t, "<Div></Div>", "expected a valid html element")
	})

	t.Run("only one root element", func(t *testing.T) {
		expectParseError(t, "<br/><br/>", "only one root html element allowed")
	})
}

func TestDynamicTags(t *testing.T) {
	t.Run("dynamic open and close", func(t *testing.T) {
		tag := parseTag(t, "<@{name_expr}></@>")
		name := tag.TagName.(*markup_parser.DynamicTagName)
		if name.Name.Expr == nil || name.Name.Expr.String() != "name_expr" {
			t.Errorf("dynamic name expr = %v, want name_expr", name.Name.Expr)
		}
	})

	t.Run("dynamic tag with children parses regardless of expression", func(t *testing.T) {
		tag := parseTag(t, `<@{expr}>"child"</@>`)
		if len(tag.Children.Children) != 1 {
			t.Errorf("children = %d, want 1", len(tag.Children.Children))
		}
	})

	t.Run("nested dynamic tags close innermost first", func(t *testing.T) {
		tag := parseTag(t, "<@{outer}><@{inner}></@></@>")
		inner := tag.Children.Children[0].(*markup_parser.HtmlTag)
		if inner.TagName.(*markup_parser.DynamicTagName).Name.Expr.String() != "inner" {
			t.Errorf("inner tag = %v", inner.TagName)
		}
	})

	t.Run("opening dynamic tag requires an expression block", func(t *testing.T) {
		expectParseError(t, "<@></@>", "this dynamic tag is missing an expression block defining its value")
	})

	t.Run("dynamic closing tag must not have a body", func(t *testing.T) {
		expectParseError(t, "<@{expr}></@{expr}>", "dynamic closing tags must not have a body (hint: replace it with just `</@>`)")
	})

	t.Run("dynamic and literal keys never match", func(t *testing.T) {
		// the literal close is not a match, so it reads as an orphan child
		expectParseError(t, "<@{expr}></div>", "this closing tag has no corresponding opening tag")
	})

	t.Run("unclosed dynamic tag", func(t *testing.T) {
		expectParseError(t, "<@{expr}>", "this opening tag has no corresponding closing tag")
	})
}

func TestValueRemapping(t *testing.T) {
	t.Run("input keeps the dedicated value slot", func(t *testing.T) {
		tag := parseTag(t, `<input value="x"/>`)
		if tag.Attributes.Value == nil {
			t.Fatal("value slot not set on input")
		}
		if len(tag.Attributes.Attributes) != 0 {
			t.Errorf("ordinary attributes = %v, want none", tag.Attributes.Attributes)
		}
	})

	t.Run("textarea keeps the dedicated value slot", func(t *testing.T) {
		tag := parseTag(t, `<textarea value="x"></textarea>`)
		if tag.Attributes.Value == nil {
			t.Fatal("value slot not set on textarea")
		}
	})

	t.Run("span gets value remapped into ordinary attributes", func(t *testing.T) {
		tag := parseTag(t, `<span value="x"/>`)
		if tag.Attributes.Value != nil {
			t.Fatal("value slot should have been remapped")
		}
		if len(tag.Attributes.Attributes) != 1 || tag.Attributes.Attributes[0].Label.String() != "value" {
			t.Fatalf("ordinary attributes = %v, want one named value", tag.Attributes.Attributes)
		}
	})

	t.Run("remapped value lands after source-order attributes", func(t *testing.T) {
		tag := parseTag(t, `<span value="x" id="a"/>`)
		var labels []string
		for _, attr := range tag.Attributes.Attributes {
			labels = append(labels, attr.Label.String())
		}
		if diff := cmp.Diff([]string{"id", "value"}, labels); diff != "" {
			t.Errorf("attribute order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("dynamic tags defer the remap", func(t *testing.T) {
		tag := parseTag(t, `<@{expr} value="x"></@>`)
		if tag.Attributes.Value == nil {
			t.Fatal("dynamic tag must keep the value slot for the runtime rewrite")
		}
	})
}

func TestFragments(t *testing.T) {
	t.Run("empty fragment", func(t *testing.T) {
		node := parse(t, "<></>")
		list := node.(*markup_parser.HtmlList)
		if !list.Children.IsEmpty() {
			t.Errorf("children = %d, want none", len(list.Children.Children))
		}
	})

	t.Run("fragment with children", func(t *testing.T) {
		node := parse(t, "<><br/><hr/></>")
		list := node.(*markup_parser.HtmlList)
		if len(list.Children.Children) != 2 {
			t.Errorf("children = %d, want 2", len(list.Children.Children))
		}
	})

	t.Run("keyed fragment", func(t *testing.T) {
		node := parse(t, `<key="k"><br/></>`)
		list := node.(*markup_parser.HtmlList)
		if list.Key == nil {
			t.Fatal("fragment key not parsed")
		}
		if text, ok := list.Key.LiteralString(); !ok || text != "k" {
			t.Errorf("key = %v, want literal k", list.Key)
		}
	})

	t.Run("unmatched closing fragment", func(t *testing.T) {
		expectParseError(t, "</>", "this closing fragment has no corresponding opening fragment")
	})

	t.Run("unclosed fragment", func(t *testing.T) {
		expectParseError(t, "<><br/>", "this opening fragment has no corresponding closing fragment")
	})
}

func TestRootModes(t *testing.T) {
	t.Run("empty input is legal at the root", func(t *testing.T) {
		node := parse(t, "")
		list, ok := node.(*markup_parser.HtmlList)
		if !ok || !list.Children.IsEmpty() {
			t.Errorf("Parse(\"\") = %#v, want empty fragment", node)
		}
	})

	t.Run("empty input is an error in nested mode", func(t *testing.T) {
		if _, err := markup_parser.ParseNested("", "test.html"); err == nil {
			t.Error("ParseNested(\"\") expected error")
		}
	})

	t.Run("nested mode parses one construct", func(t *testing.T) {
		node, err := markup_parser.ParseNested("<br/>", "test.html")
		if err != nil {
			t.Fatalf("ParseNested error: %v", err)
		}
		if _, ok := node.(*markup_parser.HtmlTag); !ok {
			t.Errorf("ParseNested = %T, want *HtmlTag", node)
		}
	})
}

// fakeChildParser consumes exactly one token and yields a fixed text node,
// standing in for the grammar dispatcher
type fakeChildParser struct{}

func (fakeChildParser) ParseChild(c token_stream.Cursor) (markup_parser.Node, token_stream.Cursor, *util.ParseError) {
	return &markup_parser.HtmlText{Text: "stub"}, c.Advance(), nil
}

func TestTagParserWithSyntheticCollector(t *testing.T) {
	tokens, err := token_stream.Tokenize("<div>anything</div>", "test.html")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	c := token_stream.NewCursor(util.NewParseSourceFile("<div>anything</div>", "test.html"), tokens)

	tag, rest, parseErr := markup_parser.ParseHtmlTag(c, fakeChildParser{})
	if parseErr != nil {
		t.Fatalf("ParseHtmlTag error: %v", parseErr)
	}
	if !rest.Done() {
		t.Error("input not fully consumed")
	}
	if len(tag.Children.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(tag.Children.Children))
	}
	if text := tag.Children.Children[0].(*markup_parser.HtmlText); text.Text != "stub" {
		t.Errorf("child = %q, want the synthetic collector's output", text.Text)
	}
}
