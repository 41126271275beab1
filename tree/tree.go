package tree

import (
	"fmt"
	"io"
)

// Box-drawing renderer taken from https://github.com/Tufin/asciitree, kept
// for its unicode padding logic. The original library built a tree to
// visualize arbitrary nested paths (e.g. filesystem-like prefixes); here it
// renders the spanning tree of a surveillance overlay graph instead (see
// topology.go), so Add's generic if-absent/if-present hooks — unused by
// that caller — are dropped in favor of a plain Insert.

// Tree maps a node label to its children.
type Tree map[string]Tree

// Insert adds `path` (root-first) to the tree, creating any missing
// intermediate nodes.
func (t Tree) Insert(path []string) {
	if len(path) == 0 {
		return
	}
	next, ok := t[path[0]]
	if !ok {
		next = Tree{}
		t[path[0]] = next
	}
	next.Insert(path[1:])
}

// Fprint renders the tree as ASCII box-drawing art.
func (tree Tree) Fprint(w io.Writer, root bool, padding string) {
	if tree == nil {
		return
	}

	index := 0
	for k, v := range tree {
		fmt.Fprintf(w, "%s%s\n", padding+getPadding(root, getBoxType(index, len(tree))), k)
		v.Fprint(w, false, padding+getPadding(root, getBoxTypeExternal(index, len(tree))))
		index++
	}
}

type BoxType int

const (
	Regular BoxType = iota
	Last
	AfterLast
	Between
)

func (boxType BoxType) String() string {
	switch boxType {
	case Regular:
		return "├" // ├
	case Last:
		return "└" // └
	case AfterLast:
		return " "
	case Between:
		return "│" // │
	default:
		panic("invalid box type")
	}
}

func getBoxType(index int, length int) BoxType {
	if index+1 == length {
		return Last
	} else if index+1 > length {
		return AfterLast
	}
	return Regular
}

func getBoxTypeExternal(index int, length int) BoxType {
	if index+1 == length {
		return AfterLast
	}
	return Between
}

func getPadding(root bool, boxType BoxType) string {
	if root {
		return ""
	}
	return boxType.String() + " "
}
