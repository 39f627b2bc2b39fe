package ListSet

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/g-m-twostay/go-lists/Sets"
)

var (
	_ Sets.OrderedSet[int32] = (*ListSet)(nil)
	_ Sets.Printer           = (*ListSet)(nil)
)

// ListSet is a set of int32 kept as a sorted singly linked chain without repeated values.
// All operations walk the chain from the head, so they are O(n).
// The zero value is an empty set. ListSet isn't thread-safe.
type ListSet struct {
	head *node
	sz   uint64 // number of nodes reachable from head; can't overflow since there are at most 2^32 distinct int32.
}

// New empty ListSet.
func New() *ListSet {
	return &ListSet{}
}

// Size of the set.
func (u *ListSet) Size() uint64 {
	return u.sz
}

// Insert v into the set. Returns false if v is already present, in which case the set is unchanged.
func (u *ListSet) Insert(v int32) bool {
	link := &u.head
	for ; *link != nil; link = &(*link).nx {
		if cur := *link; v == cur.v {
			return false
		} else if v < cur.v {
			break
		}
	}
	// the new node takes over the suffix that *link owned.
	*link = &node{v: v, nx: *link}
	u.sz++
	return true
}

// Delete v from the set. Returns false if v isn't present.
func (u *ListSet) Delete(v int32) bool {
	link := &u.head
	for ; *link != nil; link = &(*link).nx {
		if cur := *link; v == cur.v {
			*link, cur.nx = cur.nx, nil
			u.sz--
			return true
		} else if v < cur.v {
			return false
		}
	}
	return false
}

// Has v in the set.
func (u *ListSet) Has(v int32) bool {
	for cur := u.head; cur != nil && cur.v <= v; cur = cur.nx {
		if cur.v == v {
			return true
		}
	}
	return false
}

// Min element of the set. Returns false if the set is empty.
func (u *ListSet) Min() (int32, bool) {
	if u.head == nil {
		return 0, false
	}
	return u.head.v, true
}

// Max element of the set. Returns false if the set is empty.
func (u *ListSet) Max() (int32, bool) {
	if u.head == nil {
		return 0, false
	}
	cur := u.head
	for cur.nx != nil {
		cur = cur.nx
	}
	return cur.v, true
}

// Range calls f on the elements in ascending order. Stops when f returns false.
func (u *ListSet) Range(f func(int32) bool) {
	for cur := u.head; cur != nil; cur = cur.nx {
		if !f(cur.v) {
			return
		}
	}
}

// All elements in ascending order. Every call walks the chain again from the head.
// The set must not be modified during the iteration.
func (u *ListSet) All() iter.Seq[int32] {
	return u.Range
}

// Slice of all elements in ascending order.
func (u *ListSet) Slice() []int32 {
	s := make([]int32, 0, u.sz)
	for v := range u.All() {
		s = append(s, v)
	}
	return s
}

// Clear the set. Nodes are detached one at a time from the head, so it uses constant stack
// space regardless of the length of the chain.
func (u *ListSet) Clear() {
	for cur := u.head; cur != nil; {
		cur, cur.nx = cur.nx, nil
	}
	u.head, u.sz = nil, 0
}

// Print writes the length and the chain to w.
func (u *ListSet) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "length: %d\n%s\n", u.sz, u)
	return err
}

func (u *ListSet) String() string {
	var sb strings.Builder
	writeChain(&sb, u.All())
	return sb.String()
}

// writeChain renders elements as "1 -> 2 -> end".
func writeChain(sb *strings.Builder, all iter.Seq[int32]) {
	for v := range all {
		fmt.Fprintf(sb, "%d -> ", v)
	}
	sb.WriteString("end")
}
