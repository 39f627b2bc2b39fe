package comparisons

import (
	"math"
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/go-lists/Sets/ListSet"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	benchmarkItemCount       = 1024
	benchmarkValRange  int32 = 4 * benchmarkItemCount
)

// same random workload for every container: ops[i]>=0 is insert, ops[i]<0 is delete of ^ops[i].
var ops = func() []int32 {
	rg := rand.New(rand.NewSource(0))
	a := make([]int32, benchmarkItemCount)
	for i := range a {
		v := rg.Int31n(benchmarkValRange)
		if rg.Intn(2) == 0 {
			v = ^v
		}
		a[i] = v
	}
	return a
}()

func BenchmarkMixedListSet(b *testing.B) {
	for range b.N {
		s := ListSet.New()
		for _, v := range ops {
			if v >= 0 {
				s.Insert(v)
			} else {
				s.Delete(^v)
			}
		}
		s.Clear()
	}
}

func BenchmarkMixedArrListSet(b *testing.B) {
	s := ListSet.NewArr[uint32](benchmarkItemCount)
	b.ResetTimer()
	for range b.N {
		for _, v := range ops {
			if v >= 0 {
				s.Insert(v)
			} else {
				s.Delete(^v)
			}
		}
		s.Clear(false)
	}
}

func BenchmarkMixedTreeSet(b *testing.B) {
	for range b.N {
		s := treeset.NewWith(utils.Int32Comparator)
		for _, v := range ops {
			if v >= 0 {
				s.Add(v)
			} else {
				s.Remove(^v)
			}
		}
	}
}

func BenchmarkMixedBTree(b *testing.B) {
	for range b.N {
		s := btree.NewOrderedG[int32](16)
		for _, v := range ops {
			if v >= 0 {
				s.ReplaceOrInsert(v)
			} else {
				s.Delete(^v)
			}
		}
	}
}

func BenchmarkMixedLLRB(b *testing.B) {
	for range b.N {
		s := llrb.New()
		for _, v := range ops {
			if v >= 0 {
				s.ReplaceOrInsert(llrb.Int(v))
			} else {
				s.Delete(llrb.Int(^v))
			}
		}
	}
}

func setupListSet(b *testing.B) *ListSet.ListSet {
	b.Helper()
	s := ListSet.New()
	for i := int32(benchmarkItemCount - 1); i >= 0; i-- {
		s.Insert(i)
	}
	return s
}

func setupLinkedList(b *testing.B) *singlylinkedlist.List {
	b.Helper()
	l := singlylinkedlist.New()
	for i := int32(0); i < benchmarkItemCount; i++ {
		l.Add(i)
	}
	return l
}

func setupHaxMap(b *testing.B) *haxmap.Map[int32, struct{}] {
	b.Helper()
	m := haxmap.New[int32, struct{}]()
	for i := int32(0); i < benchmarkItemCount; i++ {
		m.Set(i, struct{}{})
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int32, struct{}] {
	b.Helper()
	m := hashmap.New[int32, struct{}]()
	for i := int32(0); i < benchmarkItemCount; i++ {
		m.Set(i, struct{}{})
	}
	return m
}

// membership lookups: the sorted chain stops early, an unsorted list can't.
func BenchmarkHasListSet(b *testing.B) {
	s := setupListSet(b)
	b.ResetTimer()
	for range b.N {
		for i := int32(0); i < benchmarkItemCount; i++ {
			if !s.Has(i) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasLinkedList(b *testing.B) {
	l := setupLinkedList(b)
	b.ResetTimer()
	for range b.N {
		for i := int32(0); i < benchmarkItemCount; i++ {
			if !l.Contains(i) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := int32(0); i < benchmarkItemCount; i++ {
			if _, ok := m.Get(i); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := int32(0); i < benchmarkItemCount; i++ {
			if _, ok := m.Get(i); !ok {
				b.Fail()
			}
		}
	}
}

// TestSameContents makes sure the benchmarked containers agree on the workload.
func TestSameContents(t *testing.T) {
	s := ListSet.New()
	a := ListSet.NewArr[uint16](0)
	ref := llrb.New()
	for _, v := range ops {
		if v >= 0 {
			s.Insert(v)
			a.Insert(v)
			ref.ReplaceOrInsert(llrb.Int(v))
		} else {
			s.Delete(^v)
			a.Delete(^v)
			ref.Delete(llrb.Int(^v))
		}
	}
	if uint64(ref.Len()) != s.Size() || s.Size() != a.Size() {
		t.Fatalf("sizes differ: llrb %d, ListSet %d, ArrListSet %d", ref.Len(), s.Size(), a.Size())
	}
	i := 0
	want := s.Slice()
	// llrb.Int can't be compared with llrb.Inf, so the pivot is the smallest int32.
	ref.AscendGreaterOrEqual(llrb.Int(math.MinInt32), func(it llrb.Item) bool {
		if i >= len(want) {
			t.Errorf("llrb has extra element %v", it)
		} else if int32(it.(llrb.Int)) != want[i] {
			t.Errorf("element %d is %d, want %v", i, want[i], it)
		}
		i++
		return true
	})
	if i != len(want) {
		t.Fatalf("walked %d llrb elements, want %d", i, len(want))
	}
	for j, v := range a.Slice() {
		if v != want[j] {
			t.Errorf("arena element %d is %d, want %d", j, v, want[j])
		}
	}
}
