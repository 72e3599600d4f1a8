package calc

// stack is a LIFO that refuses to grow past limit.
type stack[T any] struct {
	items []T
	limit int
}

func newStack[T any](limit int) stack[T] {
	n := limit
	if n > 16 {
		n = 16
	}
	return stack[T]{items: make([]T, 0, n), limit: limit}
}

func (s *stack[T]) push(v T) bool {
	if s.limit > 0 && len(s.items) >= s.limit {
		return false
	}
	s.items = append(s.items, v)
	return true
}

func (s *stack[T]) pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func (s *stack[T]) peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *stack[T]) len() int { return len(s.items) }
