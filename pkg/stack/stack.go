package stack

import (
	"errors"
)

var ErrEmptyStack = errors.New("empty stack")

type stack[T interface{}] struct {
	s []T
}

// Stack is a LIFO container. It is not safe for concurrent use.
type Stack[T interface{}] interface {
	Push(v T)
	Pop() T
	Size() int
}

func New[T interface{}](initialSize int) Stack[T] {
	return &stack[T]{make([]T, 0, initialSize)}
}

func (s *stack[T]) Push(value T) {
	s.s = append(s.s, value)
}

// Pop removes and returns the top value. It panics with ErrEmptyStack on an
// empty stack.
func (s *stack[T]) Pop() T {
	l := len(s.s)
	if l == 0 {
		panic(ErrEmptyStack)
	}

	var zero T
	value := s.s[l-1]
	s.s[l-1] = zero
	s.s = s.s[:l-1]
	return value
}

func (s *stack[T]) Size() int {
	return len(s.s)
}
