// internal/runutil/lru_set.go
package runutil

import "container/list"

// LRUSet is a size-bounded set of recently seen keys. The least recently
// seen key is evicted once the set is full.
type LRUSet[K comparable] struct {
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

// NewLRUSet returns a set holding at most capacity keys (minimum 1).
func NewLRUSet[K comparable](capacity int) *LRUSet[K] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUSet[K]{cap: capacity, ll: list.New(), m: make(map[K]*list.Element, capacity)}
}

// Len is the number of keys currently held.
func (s *LRUSet[K]) Len() int { return s.ll.Len() }

// Add records k and reports whether it was already present.
func (s *LRUSet[K]) Add(k K) bool {
	if e, ok := s.m[k]; ok {
		s.ll.MoveToFront(e)
		return true
	}
	s.m[k] = s.ll.PushFront(k)
	if s.ll.Len() > s.cap {
		tail := s.ll.Back()
		s.ll.Remove(tail)
		delete(s.m, tail.Value.(K))
	}
	return false
}
