// ABOUTME: Implicit complete binary tree arithmetic over level-order indices
// ABOUTME: Parent, children, sibling, level and leaf tests computed from depth alone

package engine

// The tree is stored in level order. For depth 4:
//
//	level 0:                 0
//	level 1:         1               2
//	level 2:     3       4       5       6
//	level 3:   7   8   9  10  11  12  13  14
//
// Node i has parent (i-1)/2 and children 2i+1, 2i+2. Leaves are the last
// 2^(depth-1) indices.

// NodeCount returns the number of nodes in a tree of the given depth.
func NodeCount(depth int) int {
	return 1<<depth - 1
}

// LeafCount returns the number of leaves in a tree of the given depth.
func LeafCount(depth int) int {
	return 1 << (depth - 1)
}

// FirstLeaf returns the index of the left-most leaf.
func FirstLeaf(depth int) int {
	return NodeCount(depth) - LeafCount(depth)
}

// Valid reports whether id indexes a node of a tree of the given depth.
func Valid(depth, id int) bool {
	return id >= 0 && id < NodeCount(depth)
}

// IsLeaf reports whether id is a leaf of a tree of the given depth.
func IsLeaf(depth, id int) bool {
	return Valid(depth, id) && id >= FirstLeaf(depth)
}

// Parent returns the parent of id. The root has no parent.
func Parent(id int) (int, bool) {
	if id <= 0 {
		return 0, false
	}
	return (id - 1) / 2, true
}

// Children returns the left and right children of id. Leaves have none.
func Children(depth, id int) (left, right int, ok bool) {
	if !Valid(depth, id) || IsLeaf(depth, id) {
		return 0, 0, false
	}
	return 2*id + 1, 2*id + 2, true
}

// Sibling returns the other child of id's parent.
func Sibling(id int) (int, bool) {
	p, ok := Parent(id)
	if !ok {
		return 0, false
	}
	if id == 2*p+1 {
		return 2*p + 2, true
	}
	return 2*p + 1, true
}

// Level returns the distance from the root; the root is level 0.
func Level(id int) int {
	lvl := 0
	for n := id + 1; n > 1; n >>= 1 {
		lvl++
	}
	return lvl
}

// LevelRange returns the first and last index on the given level.
func LevelRange(level int) (first, last int) {
	first = 1<<level - 1
	return first, 2*first
}
