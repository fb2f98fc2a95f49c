// Package universe resolves option universes for an underlying through an
// external brokerage collaborator.
package universe

import (
	"strings"
	"sync"
)

// UnderlyingCache memoizes the true underlying ticker per stripped option
// root, e.g. BRKB -> BRK.B. entries are populated lazily and kept for the
// life of the owning resolver. fully synchronized, readers never block on an
// in-flight lookup, so concurrent misses on the same root may each trigger a
// network call, last writer wins
type UnderlyingCache struct {
	sync.RWMutex
	byRoot map[string]string
}

func NewUnderlyingCache() *UnderlyingCache {
	return &UnderlyingCache{byRoot: make(map[string]string)}
}

func (uc *UnderlyingCache) Get(root string) (string, bool) {
	uc.RLock()
	defer uc.RUnlock()

	u, ok := uc.byRoot[root]
	return u, ok
}

func (uc *UnderlyingCache) Put(root string, underlying string) {
	uc.Lock()
	defer uc.Unlock()

	uc.byRoot[root] = underlying
}

// Resolve returns the cached underlying ticker for root, or invokes lookup and
// caches the result. a failed or empty lookup falls back to root itself and is
// not cached, so a later lookup can still populate the entry. brokerage slash
// punctuation in the lookup result is converted to the canonical dot form
func (uc *UnderlyingCache) Resolve(root string, lookup func(root string) (string, error)) string {
	if u, ok := uc.Get(root); ok {
		return u
	}

	u, err := lookup(root)
	if err != nil || u == "" {
		return root
	}

	u = strings.ReplaceAll(u, "/", ".")
	uc.Put(root, u)
	return u
}
