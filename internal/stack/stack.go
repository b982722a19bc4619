// Package stack provides a minimal LIFO stack used to track the open path of a depth-first walk.
package stack

// Stack is a last-in-first-out collection.
type Stack[T comparable] interface {
	Empty() bool
	Size() int
	Top() T
	Push(T)
	Pop() (T, bool)
	// IndexOf returns the position of the first occurrence of element counted from the bottom of the stack, or -1.
	IndexOf(element T) int
	// From returns a copy of the elements starting at the given position up to the top.
	From(index int) []T
}

// NewStack creates an empty stack.
func NewStack[T comparable]() Stack[T] {
	return &stack[T]{}
}

type stack[T comparable] []T

func (s stack[T]) Empty() bool {
	return s.Size() == 0
}

func (s stack[T]) Size() int {
	return len(s)
}

func (s stack[T]) Top() T {
	return s[len(s)-1]
}

func (s *stack[T]) Push(element T) {
	*s = append(*s, element)
}

func (s *stack[T]) Pop() (T, bool) {
	if s.Empty() {
		var zero T
		return zero, false
	}
	top := s.Top()
	*s = (*s)[:len(*s)-1]
	return top, true
}

func (s stack[T]) IndexOf(element T) int {
	for i, e := range s {
		if e == element {
			return i
		}
	}
	return -1
}

func (s stack[T]) From(index int) []T {
	if index < 0 || index > len(s) {
		return nil
	}
	result := make([]T, len(s)-index)
	copy(result, s[index:])
	return result
}
