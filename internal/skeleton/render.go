package skeleton

import (
	"bufio"
	"io"
	"sort"

	"acstools/internal/model"
)

// DefaultMaxDepth is used when no depth argument is given.
const DefaultMaxDepth = 6

// Options control how a tree is rendered.
type Options struct {
	MaxDepth int  // Number of levels printed below the root; root's children are level 0
	Classify bool // Append "/" to directory names
}

// Ordered returns the children of n in display order: children that have
// children of their own first, then leaves, each group sorted by name.
// Grouping looks at HasChildren, so an empty directory given only as "x/"
// is listed among the leaves.
func Ordered(n *model.TreeNode) []*model.TreeNode {
	var dirs, files []*model.TreeNode
	for _, c := range n.Children {
		if c.HasChildren() {
			dirs = append(dirs, c)
		} else {
			files = append(files, c)
		}
	}
	sortByName(dirs)
	sortByName(files)
	return append(dirs, files...)
}

func sortByName(nodes []*model.TreeNode) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
}

// Render returns one formatted line per visible node below root.
func Render(root *model.TreeNode, opts Options) []string {
	return renderChildren(root, "", 0, opts, nil)
}

func renderChildren(dir *model.TreeNode, prefix string, level int, opts Options, lines []string) []string {
	if level >= opts.MaxDepth {
		return lines
	}

	children := Ordered(dir)
	for i, n := range children {
		connector, indent := model.ConnectorMiddle, model.IndentOpen
		if i == len(children)-1 {
			connector, indent = model.ConnectorLast, model.IndentClosed
		}
		lines = append(lines, prefix+connector+Label(n, opts.Classify))
		if n.HasChildren() {
			lines = renderChildren(n, prefix+indent, level+1, opts, lines)
		}
	}
	return lines
}

// Label is the printed name of a node.
func Label(n *model.TreeNode, classify bool) string {
	if classify && n.IsDir() {
		return n.Name + model.DirSuffix
	}
	return n.Name
}

// Write renders the tree to w, one line per node.
func Write(w io.Writer, root *model.TreeNode, opts Options) error {
	bw := bufio.NewWriter(w)
	for _, line := range Render(root, opts) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
