package ir

// Attr is a named attribute on a node. A nil Value means the attribute
// carried no value.
type Attr struct {
	Name  string
	Value *string
}

type Node struct {
	Name     string
	Content  *string
	Attrs    []Attr
	Children []*Node

	Parent      *Node `json:"-"`
	ParentIndex int   `json:"-"`
}

func NewNode(name string) *Node {
	return &Node{Name: name}
}

func (n *Node) WithContent(s string) *Node {
	n.Content = &s
	return n
}

func (n *Node) WithAttr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: &value})
	return n
}

// WithNullAttr adds an attribute without a value.
func (n *Node) WithNullAttr(name string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name})
	return n
}

// Append adds child as the last child of n and returns child.
func (n *Node) Append(child *Node) *Node {
	child.Parent = n
	child.ParentIndex = len(n.Children)
	n.Children = append(n.Children, child)
	return child
}

// HasContent reports whether n has text content.
func (n *Node) HasContent() bool {
	return n.Content != nil
}

func (n *Node) Attr(name string) (string, bool) {
	for i := range n.Attrs {
		a := &n.Attrs[i]
		if a.Name != name {
			continue
		}
		if a.Value == nil {
			return "", true
		}
		return *a.Value, true
	}
	return "", false
}

func (n *Node) Root() *Node {
	x := n
	for x.Parent != nil {
		x = x.Parent
	}
	return x
}

// Walk visits n and its descendants depth first, preorder, stopping early
// when f returns false.
func (n *Node) Walk(f func(*Node) bool) bool {
	if !f(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(f) {
			return false
		}
	}
	return true
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{Name: n.Name}
	if n.Content != nil {
		c := *n.Content
		res.Content = &c
	}
	if len(n.Attrs) != 0 {
		res.Attrs = make([]Attr, len(n.Attrs))
		for i, a := range n.Attrs {
			res.Attrs[i].Name = a.Name
			if a.Value != nil {
				v := *a.Value
				res.Attrs[i].Value = &v
			}
		}
	}
	for _, c := range n.Children {
		res.Append(c.Clone())
	}
	return res
}
