// Package content holds the learning material shown next to the
// simulations: videos, flashcards and practice questions.
package content

import "github.com/google/uuid"

// Item is a record together with its generated identifier.
type Item[T any] struct {
	ID    string
	Value T
}

// Collection is an ordered, in-memory list of records keyed by generated
// ids. Order is insertion order; Replace keeps a record's position.
type Collection[T any] struct {
	items []Item[T]
}

func NewCollection[T any](values ...T) *Collection[T] {
	c := &Collection[T]{}
	for _, v := range values {
		c.Append(v)
	}
	return c
}

// Append adds v at the end and returns its new id.
func (c *Collection[T]) Append(v T) string {
	id := uuid.NewString()
	c.items = append(c.items, Item[T]{ID: id, Value: v})
	return id
}

// Replace swaps the record stored under id. It reports whether id exists.
func (c *Collection[T]) Replace(id string, v T) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items[i].Value = v
	return true
}

// Remove deletes the record stored under id. It reports whether id existed.
func (c *Collection[T]) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

func (c *Collection[T]) Get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i].Value, true
	}
	var zero T
	return zero, false
}

// All returns a copy of the items in order.
func (c *Collection[T]) All() []Item[T] {
	out := make([]Item[T], len(c.items))
	copy(out, c.items)
	return out
}

// Values returns the records in order without their ids.
func (c *Collection[T]) Values() []T {
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = it.Value
	}
	return out
}

func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) index(id string) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
