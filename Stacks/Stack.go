package Stacks

type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
	Size() uint
}

type EmptyStackError struct {
	op string
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot " + e.op + "."
}
