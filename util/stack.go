package util

// Stack is a generic last-in-first-out container.
type Stack[T any] struct {
	items []T
}

// Push appends an item to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item. The zero value is returned for an empty stack.
func (s *Stack[T]) Pop() (item T) {
	if len(s.items) == 0 {
		return
	}

	item = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (item T) {
	if len(s.items) == 0 {
		return
	}
	return s.items[len(s.items)-1]
}

// Len reports the number of items currently on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
