package vdom

import (
	"fmt"
	"strings"
)

// voidElements lists the element names that may never have children.
// See https://html.spec.whatwg.org/multipage/syntax.html#void-elements
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns whether the tag name denotes a void element. The
// check is case-insensitive; it backs both the parse-time rejection of
// literal void tags with children and the runtime guard emitted for dynamic
// tag names, so the two can never disagree.
func IsVoidElement(name string) bool {
	return voidElements[strings.ToLower(name)]
}

// IsInputLike returns whether the tag name keeps the special `value` slot.
// For every other element `value` is an ordinary attribute.
func IsInputLike(name string) bool {
	switch strings.ToLower(name) {
	case "input", "textarea":
		return true
	}
	return false
}

// Href represents an attribute value that went through the href conversion
type Href string

// Hrefer is implemented by values that convert themselves to an Href
type Hrefer interface {
	Href() Href
}

// ToHref converts an attribute value to an Href
func ToHref(value interface{}) Href {
	switch v := value.(type) {
	case Href:
		return v
	case Hrefer:
		return v.Href()
	case string:
		return Href(v)
	default:
		return Href(fmt.Sprint(value))
	}
}
