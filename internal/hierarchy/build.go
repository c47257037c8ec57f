// Package hierarchy rebuilds the GameObject tree of a scene from its flat
// record stream and renders it for display.
//
// Parent/child structure is not stored on GameObject records: it lives on
// separate transform records that reference each other by transform fileID.
// The builder therefore works in three passes over the transforms — index,
// parent, attach — translating transform IDs to owning-object IDs through a
// table that must be complete before the structural passes run.
package hierarchy

import (
	"sort"

	"github.com/tbruun/scenedoctor/internal/unity"
)

// Node is one GameObject in the reconstructed tree.
type Node struct {
	// FileID is the GameObject's file-scoped identifier.
	FileID string `json:"file_id"`

	// Name is the raw display name as authored. Never empty.
	Name string `json:"name"`

	// ParentID is the resolved parent GameObject fileID. Empty for roots.
	ParentID string `json:"parent_id,omitempty"`

	// Children holds owned child nodes in authored order.
	Children []*Node `json:"children,omitempty"`
}

// Graph is the per-scene analysis result: the ordered root set plus an
// arena of all nodes keyed by object fileID. Edges are expressed through the
// arena, never as pointer cycles.
type Graph struct {
	Roots []*Node

	nodes map[string]*Node
}

// Node returns the node for an object fileID, or nil.
func (g *Graph) Node(fileID string) *Node {
	return g.nodes[fileID]
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Build reconstructs the object tree from a scene's records.
func Build(records []unity.Record) *Graph {
	g := &Graph{nodes: make(map[string]*Node)}

	for _, obj := range unity.ExtractGameObjects(records) {
		g.nodes[obj.FileID] = &Node{FileID: obj.FileID, Name: obj.Name}
	}

	transforms := unity.ExtractTransforms(records)

	// Index pass: transform ID -> owning object ID, plus declared child
	// lists keyed by owner. The table must be complete before the parent
	// and attach passes run.
	owner := make(map[string]string, len(transforms))
	childLists := make(map[string][]string)
	for _, t := range transforms {
		owner[t.FileID] = t.OwnerID
		if len(t.Children) > 0 {
			childLists[t.OwnerID] = t.Children
		}
	}

	// Parent pass: translate each transform's father through the owner
	// table and assign the result to the owning object's node.
	for _, t := range transforms {
		if t.FatherID == "" || t.FatherID == unity.NullFileID {
			continue
		}
		node := g.nodes[t.OwnerID]
		if node == nil {
			continue
		}
		if parentObj, ok := owner[t.FatherID]; ok {
			if _, known := g.nodes[parentObj]; known {
				node.ParentID = parentObj
			}
		}
	}

	// Attach pass: rebuild each owner's child list in declared order.
	// Child transform IDs that do not resolve to a known owner are skipped
	// without error.
	for ownerObj, children := range childLists {
		parent := g.nodes[ownerObj]
		if parent == nil {
			continue
		}
		parent.Children = nil
		for _, childTransform := range children {
			childObj, ok := owner[childTransform]
			if !ok {
				continue
			}
			if child := g.nodes[childObj]; child != nil {
				parent.Children = append(parent.Children, child)
			}
		}
	}

	g.Roots = resolveRoots(g, records, owner)
	return g
}

// resolveRoots orders the parentless node set. The explicit root-ordering
// section wins when present and non-empty after translation; otherwise the
// parentless set is sorted by display name with ordinal comparison.
func resolveRoots(g *Graph, records []unity.Record, owner map[string]string) []*Node {
	parentless := make(map[string]*Node)
	for id, node := range g.nodes {
		if node.ParentID == "" {
			parentless[id] = node
		}
	}

	var roots []*Node
	for _, transformID := range unity.RootOrder(records) {
		if transformID == unity.NullFileID {
			continue
		}
		objID, ok := owner[transformID]
		if !ok {
			continue
		}
		if node, ok := parentless[objID]; ok {
			roots = append(roots, node)
			delete(parentless, objID)
		}
	}
	if len(roots) > 0 {
		return roots
	}

	return sortedByName(parentless)
}

func sortedByName(nodes map[string]*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].FileID < out[j].FileID
	})
	return out
}
