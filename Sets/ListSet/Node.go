package ListSet

// A cell of the chain. nx is owned exclusively by this node; the first node is owned by the set.
type node struct {
	v  int32
	nx *node
}

// A cell of the arena chain. nx is an index into the arena, 0 is the end of the chain.
// For released cells nx links the free list instead.
type slot[S any] struct {
	v  int32
	nx S
}
