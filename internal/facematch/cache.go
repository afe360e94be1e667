package facematch

import "sync"

// Cache is the in-memory known-faces set used during live tracking. Entries
// keep their insertion order, which the matcher relies on for tie-breaking.
// Registration commits mutate the cache while the tracking loop reads it
// from another goroutine, so access goes through a read-write lock and
// readers work on snapshots.
type Cache struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]KnownFace
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]KnownFace)}
}

// Put inserts or replaces a face. Re-registering an existing name keeps its
// original position in the insertion order.
func (c *Cache) Put(face KnownFace) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[face.Name]; !ok {
		c.order = append(c.order, face.Name)
	}
	c.entries[face.Name] = face
}

// Delete removes a face by name. Deleting an unknown name is a no-op.
func (c *Cache) Delete(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[name]; !ok {
		return
	}
	delete(c.entries, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Get returns the face registered under name, if any.
func (c *Cache) Get(name string) (KnownFace, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	face, ok := c.entries[name]
	return face, ok
}

// Snapshot returns a copy of all known faces in insertion order. The caller
// can iterate it without holding any lock.
func (c *Cache) Snapshot() []KnownFace {
	c.mu.RLock()
	defer c.mu.RUnlock()

	faces := make([]KnownFace, 0, len(c.order))
	for _, name := range c.order {
		faces = append(faces, c.entries[name])
	}
	return faces
}

// Names returns all registered names in insertion order.
func (c *Cache) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Len returns the number of known faces.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Hydrate replaces the cache contents with the given faces, preserving their
// order. Used at startup to load the registered set from the store.
func (c *Cache) Hydrate(faces []KnownFace) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order = c.order[:0]
	c.entries = make(map[string]KnownFace, len(faces))
	for _, face := range faces {
		if _, ok := c.entries[face.Name]; !ok {
			c.order = append(c.order, face.Name)
		}
		c.entries[face.Name] = face
	}
}
