package ListSet

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/g-m-twostay/go-lists/Sets"
	"golang.org/x/exp/constraints"
)

var (
	_ Sets.OrderedSet[int32] = (*ArrListSet[uint32])(nil)
	_ Sets.Printer           = (*ArrListSet[uint32])(nil)
)

// FullError is raised by ArrListSet.Insert when every index of S is already in use.
type FullError struct {
	Cap uint64
}

func (e *FullError) Error() string {
	return fmt.Sprintf("arena is full: all %d indexes are in use, use a wider index type", e.Cap)
}

// ArrListSet is the same sorted chain as ListSet, but the cells are stored in one slice and
// linked by index instead of by pointer. S is the index type, it bounds the number of elements
// to the max value of S.
// Released cells go on a free list and are reused by later inserts.
// Must be created with NewArr.
type ArrListSet[S constraints.Unsigned] struct {
	ss   []slot[S] // ss[0] is a sentinel, ss[0].nx is the head of the chain.
	free S         // free is the beginning of the linked list that contains all the released indexes.
	sz   S
}

// NewArr returns an empty ArrListSet with room for capacity elements before the arena grows.
func NewArr[S constraints.Unsigned](capacity uint) *ArrListSet[S] {
	return &ArrListSet[S]{ss: make([]slot[S], 1, capacity+1)}
}

// addFree index once.
func (u *ArrListSet[S]) addFree(i S) {
	u.ss[i] = slot[S]{nx: u.free}
	u.free = i
}

// alloc an index holding v, either from the free list or by growing the arena.
func (u *ArrListSet[S]) alloc(v int32) S {
	if i := u.free; i != 0 {
		u.free = u.ss[i].nx
		u.ss[i] = slot[S]{v: v}
		return i
	}
	if uint64(len(u.ss)) > uint64(^S(0)) {
		panic(&FullError{uint64(^S(0))})
	}
	u.ss = append(u.ss, slot[S]{v: v})
	return S(len(u.ss) - 1)
}

// Size of the set.
func (u *ArrListSet[S]) Size() uint64 {
	return uint64(u.sz)
}

// Insert v into the set. Returns false if v is already present.
// Panics with *FullError if v is absent and no index is left.
func (u *ArrListSet[S]) Insert(v int32) bool {
	prev, cur := S(0), u.ss[0].nx
	for ; cur != 0; prev, cur = cur, u.ss[cur].nx {
		if c := u.ss[cur].v; v == c {
			return false
		} else if v < c {
			break
		}
	}
	n := u.alloc(v)
	u.ss[n].nx = cur
	u.ss[prev].nx = n
	u.sz++
	return true
}

// Delete v from the set. Returns false if v isn't present.
func (u *ArrListSet[S]) Delete(v int32) bool {
	for prev, cur := S(0), u.ss[0].nx; cur != 0; prev, cur = cur, u.ss[cur].nx {
		if c := u.ss[cur].v; v == c {
			u.ss[prev].nx = u.ss[cur].nx
			u.addFree(cur)
			u.sz--
			return true
		} else if v < c {
			return false
		}
	}
	return false
}

// Has v in the set.
func (u *ArrListSet[S]) Has(v int32) bool {
	for cur := u.ss[0].nx; cur != 0 && u.ss[cur].v <= v; cur = u.ss[cur].nx {
		if u.ss[cur].v == v {
			return true
		}
	}
	return false
}

// Min element of the set. Returns false if the set is empty.
func (u *ArrListSet[S]) Min() (int32, bool) {
	if h := u.ss[0].nx; h != 0 {
		return u.ss[h].v, true
	}
	return 0, false
}

// Max element of the set, found by walking to the tail. Returns false if the set is empty.
func (u *ArrListSet[S]) Max() (int32, bool) {
	cur := u.ss[0].nx
	if cur == 0 {
		return 0, false
	}
	for u.ss[cur].nx != 0 {
		cur = u.ss[cur].nx
	}
	return u.ss[cur].v, true
}

// Range calls f on the elements in ascending order. Stops when f returns false.
func (u *ArrListSet[S]) Range(f func(int32) bool) {
	for cur := u.ss[0].nx; cur != 0; cur = u.ss[cur].nx {
		if !f(u.ss[cur].v) {
			return
		}
	}
}

// All elements in ascending order, restartable.
func (u *ArrListSet[S]) All() iter.Seq[int32] {
	return u.Range
}

// Slice of all elements in ascending order.
func (u *ArrListSet[S]) Slice() []int32 {
	s := make([]int32, 0, u.sz)
	u.Range(func(v int32) bool {
		s = append(s, v)
		return true
	})
	return s
}

// Clear the set. O(1) if reset==false, the arena keeps its memory for later inserts.
// If reset==true the arena is released as well.
func (u *ArrListSet[S]) Clear(reset bool) {
	if reset {
		u.ss = make([]slot[S], 1)
	} else {
		u.ss = u.ss[:1]
		u.ss[0] = slot[S]{}
	}
	u.free, u.sz = 0, 0
}

// Print writes the length and the chain to w.
func (u *ArrListSet[S]) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "length: %d\n%s\n", u.sz, u)
	return err
}

func (u *ArrListSet[S]) String() string {
	var sb strings.Builder
	writeChain(&sb, u.All())
	return sb.String()
}
