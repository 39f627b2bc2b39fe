package Sets

import (
	"io"
	"iter"
)

// OrderedSet holds distinct elements and yields them in ascending order.
type OrderedSet[E any] interface {
	Insert(E) bool
	Delete(E) bool
	Has(E) bool
	Size() uint64
	All() iter.Seq[E]
	Range(func(E) bool)
	Min() (E, bool)
	Max() (E, bool)
}

type Printer interface {
	Print(io.Writer) error
	String() string
}
