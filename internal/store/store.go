// Package store provides the in-process history lists that hold generated
// records for the lifetime of the process. Each flow owns one List; there
// is no persistence and no sharing across processes.
package store

import "sync"

// List is an ordered in-memory collection. Mutation is append, prepend,
// or a full clear; elements are never updated in place.
type List[T any] struct {
	mu    sync.RWMutex
	items []T
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Prepend inserts v at the head, so Recent returns newest first.
func (l *List[T]) Prepend(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]T{v}, l.items...)
}

// Append inserts v at the tail, preserving chronological order.
func (l *List[T]) Append(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, v)
}

// Recent returns a copy of up to n items from the head of the list.
// n <= 0 returns all items.
func (l *List[T]) Recent(n int) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n <= 0 || n > len(l.items) {
		n = len(l.items)
	}
	out := make([]T, n)
	copy(out, l.items[:n])
	return out
}

func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Clear removes all items. Used only by the chat flow's bulk clear.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}
