package vdom

// VNode represents one virtual-DOM node
type VNode interface {
	vnode()
}

// VText represents a text node
type VText struct {
	Text string
}

func (VText) vnode() {}

// VList represents an ordered list of sibling nodes, optionally keyed
type VList struct {
	Key      string
	Children []VNode
}

func (*VList) vnode() {}

// Attribute represents one plain key/value attribute. Attributes keep their
// insertion order; a remapped `value` lands after every attribute written in
// the source.
type Attribute struct {
	Name  string
	Value string
}

// Listener represents an attached event listener. Listeners are shared by
// reference between the node and whoever registered them.
type Listener struct {
	Event    string
	Callback interface{}
}

// VTag represents an element node under construction
type VTag struct {
	tag string

	Attributes []Attribute
	Kind       *string
	Value      *string
	Checked    *bool
	NodeRef    interface{}
	Key        *string
	Listeners  []*Listener
	Children   []VNode
}

func (*VTag) vnode() {}

// NewVTag creates a new VTag with the given tag name
func NewVTag(tag string) *VTag {
	return &VTag{tag: tag}
}

// Tag returns the tag name
func (t *VTag) Tag() string {
	return t.tag
}

// AddAttribute appends one key/value attribute
func (t *VTag) AddAttribute(name, value string) {
	t.Attributes = append(t.Attributes, Attribute{Name: name, Value: value})
}

// Attr returns the last value set for an attribute name
func (t *VTag) Attr(name string) (string, bool) {
	for i := len(t.Attributes) - 1; i >= 0; i-- {
		if t.Attributes[i].Name == name {
			return t.Attributes[i].Value, true
		}
	}
	return "", false
}

// AddListener attaches one event listener
func (t *VTag) AddListener(listener *Listener) {
	t.Listeners = append(t.Listeners, listener)
}

// AddChild appends one child node
func (t *VTag) AddChild(child VNode) {
	t.Children = append(t.Children, child)
}
