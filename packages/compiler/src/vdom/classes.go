package vdom

import (
	"fmt"
	"strings"
)

// Classes represents a merged class list. Entries keep insertion order and
// duplicates are dropped.
type Classes struct {
	entries []string
	seen    map[string]bool
}

// NewClasses creates an empty class list
func NewClasses() *Classes {
	return &Classes{seen: map[string]bool{}}
}

// ClassesFrom converts a single collection value into a class list. Accepted
// shapes: string (space separated), []string, *Classes, fmt.Stringer.
func ClassesFrom(value interface{}) *Classes {
	classes := NewClasses()
	classes.Extend(value)
	return classes
}

// Extend merges one value into the class list
func (c *Classes) Extend(value interface{}) *Classes {
	switch v := value.(type) {
	case nil:
	case *Classes:
		if v != nil {
			for _, entry := range v.entries {
				c.push(entry)
			}
		}
	case string:
		for _, entry := range strings.Fields(v) {
			c.push(entry)
		}
	case []string:
		for _, entry := range v {
			c.Extend(entry)
		}
	case []interface{}:
		for _, entry := range v {
			c.Extend(entry)
		}
	case fmt.Stringer:
		c.Extend(v.String())
	default:
		c.Extend(fmt.Sprint(v))
	}
	return c
}

func (c *Classes) push(entry string) {
	if entry == "" || c.seen[entry] {
		return
	}
	if c.seen == nil {
		c.seen = map[string]bool{}
	}
	c.seen[entry] = true
	c.entries = append(c.entries, entry)
}

// IsEmpty returns whether the class list has no entries
func (c *Classes) IsEmpty() bool {
	return len(c.entries) == 0
}

// String renders the class list as a space separated attribute value
func (c *Classes) String() string {
	return strings.Join(c.entries, " ")
}
