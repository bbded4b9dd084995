package model

// TreeNode represents one path segment in the skeleton tree.
type TreeNode struct {
	Name     string               // Segment text, never empty and never containing "/"
	Dir      bool                 // Explicitly marked as a directory (trailing slash or intermediate segment)
	Children map[string]*TreeNode // Child segments keyed by name
}

// NewRoot returns the synthetic, unnamed root of a tree.
func NewRoot() *TreeNode {
	return &TreeNode{Dir: true, Children: map[string]*TreeNode{}}
}

// Child returns the child called name, creating it if it does not exist yet.
func (n *TreeNode) Child(name string) *TreeNode {
	if c, ok := n.Children[name]; ok {
		return c
	}
	c := &TreeNode{Name: name, Children: map[string]*TreeNode{}}
	n.Children[name] = c
	return c
}

// HasChildren reports whether the node has at least one child.
// Ordering uses this rather than IsDir.
func (n *TreeNode) HasChildren() bool {
	return len(n.Children) > 0
}

// IsDir reports whether the node is a directory: it either has children or
// was explicitly marked as one.
func (n *TreeNode) IsDir() bool {
	return n.Dir || n.HasChildren()
}
