// Package sizecache memoizes per-item compressed sizes within one
// batch call.
package sizecache

import "sync"

type slot struct {
	once sync.Once
	size int64
	err  error
}

// Cache holds one write-once slot per batch item. Each slot carries an
// explicit computed state via its sync.Once, so a size of zero needs
// no sentinel meaning.
//
// Cache is safe for concurrent use: when two lanes first-touch the
// same index, one computes and the other blocks until the value is
// available.
type Cache struct {
	slots []slot
}

// New creates a cache with n uncomputed slots.
func New(n int) *Cache {
	return &Cache{slots: make([]slot, n)}
}

// Len returns the number of slots.
func (c *Cache) Len() int { return len(c.slots) }

// Do returns the size for index i, invoking compute at most once per
// index across all callers. A compute error is cached and returned to
// every caller of the slot.
func (c *Cache) Do(i int, compute func() (int64, error)) (int64, error) {
	s := &c.slots[i]
	s.once.Do(func() {
		s.size, s.err = compute()
	})
	return s.size, s.err
}
