package repositories

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a record id is unknown to a collection.
var ErrNotFound = errors.New("record not found")

// collection is an ordered in-memory table of records keyed by an int id.
// Records are stored by value and copied on the way in and out so callers
// never share memory with the table.
type collection[T any] struct {
	mu       sync.RWMutex
	items    []T
	nextID   int
	revision uint64
	idOf     func(*T) int
	setID    func(*T, int)
}

func newCollection[T any](idOf func(*T) int, setID func(*T, int)) *collection[T] {
	return &collection[T]{idOf: idOf, setID: setID, nextID: 1}
}

// load replaces the contents with seed and restarts the id sequence after
// the highest seeded id.
func (c *collection[T]) load(seed []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(seed))
	copy(c.items, seed)
	c.nextID = 1
	for i := range c.items {
		if id := c.idOf(&c.items[i]); id >= c.nextID {
			c.nextID = id + 1
		}
	}
	c.revision++
}

func (c *collection[T]) list() []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*T, 0, len(c.items))
	for i := range c.items {
		item := c.items[i]
		out = append(out, &item)
	}
	return out
}

func (c *collection[T]) get(id int) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		item := c.items[i]
		return &item, true
	}
	return nil, false
}

func (c *collection[T]) find(match func(*T) bool) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if match(&c.items[i]) {
			item := c.items[i]
			return &item, true
		}
	}
	return nil, false
}

// insert assigns the next id to item and appends it.
func (c *collection[T]) insert(item *T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setID(item, c.nextID)
	c.nextID++
	c.items = append(c.items, *item)
	c.revision++
}

func (c *collection[T]) replace(item *T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(c.idOf(item))
	if i < 0 {
		return false
	}
	c.items[i] = *item
	c.revision++
	return true
}

// mutate applies fn to the stored record under the write lock and returns
// a copy of the result.
func (c *collection[T]) mutate(id int, fn func(*T)) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, false
	}
	fn(&c.items[i])
	c.revision++
	item := c.items[i]
	return &item, true
}

func (c *collection[T]) remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.revision++
	return true
}

func (c *collection[T]) rev() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.revision
}

// indexOf must be called with the lock held.
func (c *collection[T]) indexOf(id int) int {
	for i := range c.items {
		if c.idOf(&c.items[i]) == id {
			return i
		}
	}
	return -1
}
