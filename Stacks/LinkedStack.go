package Stacks

import "iter"

var _ Stack[int] = (*LinkedStack[int])(nil)

type node[T any] struct {
	v  T
	nx *node[T]
}

// LinkedStack is a LIFO stack backed by a singly linked list, only the head is ever touched.
// The zero value is an empty stack. It isn't thread-safe.
type LinkedStack[T any] struct {
	head *node[T]
	sz   uint
}

func MakeLinkedStack[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

func (u *LinkedStack[T]) Empty() bool {
	return u.head == nil
}

func (u *LinkedStack[T]) Size() uint {
	return u.sz
}

// Push item on top; the new node takes over the old head.
func (u *LinkedStack[T]) Push(item T) {
	u.head = &node[T]{item, u.head}
	u.sz++
}

// Pop the top item. Returns *EmptyStackError if the stack is empty.
func (u *LinkedStack[T]) Pop() (T, error) {
	if u.head == nil {
		return *new(T), &EmptyStackError{"Pop"}
	}
	top := u.head
	u.head, top.nx = top.nx, nil
	u.sz--
	return top.v, nil
}

// Peek at the top item without removing it.
func (u *LinkedStack[T]) Peek() (T, error) {
	if u.head == nil {
		return *new(T), &EmptyStackError{"Peek"}
	}
	return u.head.v, nil
}

// PeekPtr returns a pointer to the top item so it can be modified in place, or nil if the stack is empty.
// The pointer is only valid until the next Pop or Clear.
func (u *LinkedStack[T]) PeekPtr() *T {
	if u.head == nil {
		return nil
	}
	return &u.head.v
}

// All items from top to bottom without removing them.
func (u *LinkedStack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := u.head; cur != nil; cur = cur.nx {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// Drain pops the items from top to bottom while iterating. Items not reached when the loop stops stay in the stack.
func (u *LinkedStack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for u.head != nil {
			if v, _ := u.Pop(); !yield(v) {
				return
			}
		}
	}
}

// Clear the stack one node at a time.
func (u *LinkedStack[T]) Clear() {
	for cur := u.head; cur != nil; {
		cur, cur.nx = cur.nx, nil
	}
	u.head, u.sz = nil, 0
}
