package markup_parser

import (
	"fmt"

	"hmc-go/packages/compiler/src/util"
	"hmc-go/packages/compiler/src/vdom"
)

// nonCapitalizedASCII reports whether a name is pure ASCII with a lowercase
// first letter. Capitalized names denote embedded-component syntax and are
// not tags.
func nonCapitalizedASCII(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] > 127 {
			return false
		}
	}
	first := name[0]
	return 'a' <= first && first <= 'z'
}

// validateTagOpen applies the compile-time rules that need the tag name up
// front. Both checks have runtime twins emitted by the code generator for
// dynamic tag names; the predicates themselves live in vdom so the two paths
// share one definition.
func validateTagOpen(open *TagOpen) *util.ParseError {
	switch name := open.TagName.(type) {
	case *LiteralTagName:
		if !open.SelfClosing && vdom.IsVoidElement(name.Name.String()) {
			return util.NewParseError(open.SourceSpan(), fmt.Sprintf(
				"the tag `<%s>` is a void element and cannot have children (hint: rewrite this as `<%s/>`)",
				name.Name, name.Name,
			))
		}
	case *DynamicTagName:
		if name.Name.Expr == nil {
			return util.NewParseError(
				open.TagName.SourceSpan(),
				"this dynamic tag is missing an expression block defining its value",
			)
		}
	}
	return nil
}

// rehomeValueAttribute moves a parsed `value` attribute back into the
// ordinary attribute list for every literal tag name that is not input-like.
// The special `value` slot only means something on input and textarea. For
// dynamic tag names the same rewrite is deferred to generated runtime code.
func rehomeValueAttribute(open *TagOpen) {
	name, ok := open.TagName.(*LiteralTagName)
	if !ok {
		return
	}
	if vdom.IsInputLike(name.Name.String()) {
		return
	}
	if value := open.Attributes.Value; value != nil {
		open.Attributes.Value = nil
		open.Attributes.Attributes = append(open.Attributes.Attributes, TagAttribute{
			Label: NewDashedName("value", value.SourceSpan()),
			Value: value,
		})
	}
}
