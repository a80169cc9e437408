package rename

import "fansort/internal/classify"

// DirCache memoizes the directory-scoped classification so files sharing a
// folder reuse one expensive result. Validity is exactly one traversal pass:
// the walker drops a directory's entry when it enters that directory and
// nothing is persisted across runs.
type DirCache struct {
	entries map[string]classify.Scoped
}

// NewDirCache returns an empty cache.
func NewDirCache() *DirCache {
	return &DirCache{entries: make(map[string]classify.Scoped)}
}

// Get returns the cached scoped classification for dir, if present.
func (c *DirCache) Get(dir string) (classify.Scoped, bool) {
	scoped, ok := c.entries[dir]
	return scoped, ok
}

// Put stores the scoped classification for dir.
func (c *DirCache) Put(dir string, scoped classify.Scoped) {
	c.entries[dir] = scoped
}

// Delete removes the entry for dir, if any.
func (c *DirCache) Delete(dir string) {
	delete(c.entries, dir)
}

// Clear drops every entry. Called at the start of each run.
func (c *DirCache) Clear() {
	clear(c.entries)
}

// Len reports the number of cached directories.
func (c *DirCache) Len() int {
	return len(c.entries)
}
