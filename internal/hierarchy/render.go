package hierarchy

import "strings"

// FlatNode is one entry of the flattened traversal, consumed by reporting
// collaborators. Name is the raw authored name, not the formatted one.
type FlatNode struct {
	Name     string `json:"name"`
	Depth    int    `json:"depth"`
	FileID   string `json:"file_id"`
	ParentID string `json:"parent_id,omitempty"`
}

// Render serializes the tree as an indented text dump: one line per node,
// 2×depth dashes followed by the formatted display name, pre-order from the
// ordered root list. Trailing whitespace is trimmed.
func (g *Graph) Render() string {
	var b strings.Builder
	for _, root := range g.Roots {
		renderNode(&b, root, 0)
	}
	return strings.TrimRight(b.String(), " \n")
}

func renderNode(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("-", 2*depth))
	b.WriteString(FormatName(n.Name))
	b.WriteByte('\n')
	for _, child := range n.Children {
		renderNode(b, child, depth+1)
	}
}

// Flatten returns the nodes in the same traversal order as Render.
func (g *Graph) Flatten() []FlatNode {
	var out []FlatNode
	for _, root := range g.Roots {
		out = flattenNode(out, root, 0)
	}
	return out
}

func flattenNode(out []FlatNode, n *Node, depth int) []FlatNode {
	out = append(out, FlatNode{
		Name:     n.Name,
		Depth:    depth,
		FileID:   n.FileID,
		ParentID: n.ParentID,
	})
	for _, child := range n.Children {
		out = flattenNode(out, child, depth+1)
	}
	return out
}
