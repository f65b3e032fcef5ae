package render

import "image"

type cacheKey struct {
	id    uint64
	state string
	size  image.Point
}

// Cache holds prerendered material surfaces per element, state and size.
// An element's entries are dropped when it renders at a new size or when
// Drop is called for it, normally from the element tree's release hook.
type Cache struct {
	entries map[cacheKey]Surface
	sizes   map[uint64]image.Point
	hits    int
	misses  int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]Surface), sizes: make(map[uint64]image.Point)}
}

// Get returns the surface for (id, state, size), building it on a miss.
// A nil result from build is not stored.
func (c *Cache) Get(id uint64, state string, size image.Point, build func() Surface) Surface {
	if prev, ok := c.sizes[id]; ok && prev != size {
		c.Drop(id)
	}
	k := cacheKey{id: id, state: state, size: size}
	if s, ok := c.entries[k]; ok {
		c.hits++
		return s
	}
	c.misses++
	s := build()
	if s != nil {
		c.entries[k] = s
		c.sizes[id] = size
	}
	return s
}

// Drop forgets every entry of id.
func (c *Cache) Drop(id uint64) {
	for k := range c.entries {
		if k.id == id {
			delete(c.entries, k)
		}
	}
	delete(c.sizes, id)
}

// Len returns the number of stored surfaces.
func (c *Cache) Len() int { return len(c.entries) }

// Stats returns the hit and miss counts since creation.
func (c *Cache) Stats() (hits, misses int) { return c.hits, c.misses }
