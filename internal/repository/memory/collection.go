package memory

import (
	"errors"
	"sync"
)

var (
	ErrDuplicateID = errors.New("record id already exists")
	ErrNoRecord    = errors.New("record does not exist")
)

// Collection is an ordered, keyed in-memory record set. Listing returns
// records in insertion order. Every read hands out a copy produced by the
// clone function, so callers never alias a live record.
//
// A Collection is safe for concurrent use on its own; workflows spanning
// several collections take no cross-collection lock.
type Collection[K comparable, V any] struct {
	mu    sync.RWMutex
	order []K
	items map[K]V
	clone func(V) V
}

func NewCollection[K comparable, V any](clone func(V) V) *Collection[K, V] {
	return &Collection[K, V]{
		items: make(map[K]V),
		clone: clone,
	}
}

// Insert adds a record under a new key. Keys are unique for the lifetime of
// the collection's process.
func (c *Collection[K, V]) Insert(key K, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; ok {
		return ErrDuplicateID
	}
	c.items[key] = c.clone(value)
	c.order = append(c.order, key)
	return nil
}

// Get returns a copy of the record under key, if present.
func (c *Collection[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.clone(v), true
}

// Replace overwrites an existing record and reports whether the key existed.
func (c *Collection[K, V]) Replace(key K, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		return false
	}
	c.items[key] = c.clone(value)
	return true
}

// Delete removes the record under key and returns it.
func (c *Collection[K, V]) Delete(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return v, true
}

// List returns all records in insertion order.
func (c *Collection[K, V]) List() []V {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]V, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.clone(c.items[k]))
	}
	return out
}

// Select returns the records matching pred, in insertion order.
func (c *Collection[K, V]) Select(pred func(V) bool) []V {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []V
	for _, k := range c.order {
		if pred(c.items[k]) {
			out = append(out, c.clone(c.items[k]))
		}
	}
	return out
}

// First returns the earliest-inserted record matching pred.
func (c *Collection[K, V]) First(pred func(V) bool) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, k := range c.order {
		if pred(c.items[k]) {
			return c.clone(c.items[k]), true
		}
	}
	var zero V
	return zero, false
}

func (c *Collection[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
