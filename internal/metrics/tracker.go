package metrics

import (
	"sort"
	"sync"

	"github.com/plexsphere/linkmond/internal/sampler"
)

// targetTracker is a concurrency-safe mapping from link name to the sampler
// handle issued for it. Link plug and unplug events are infrequent, so one
// coarse lock over the whole map is enough; the lock is never held across
// sampler calls.
type targetTracker struct {
	mu    sync.Mutex
	links map[string]sampler.Handle
}

func newTargetTracker() *targetTracker {
	return &targetTracker{links: make(map[string]sampler.Handle)}
}

// insert stores the handle under the link name, overwriting any previous
// mapping. It returns the superseded handle; the caller decides whether to
// release it.
func (t *targetTracker) insert(name string, h sampler.Handle) (prev sampler.Handle, replaced bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev, replaced = t.links[name]
	t.links[name] = h
	return prev, replaced
}

// remove deletes the link name and returns its handle. Absence is not an
// error.
func (t *targetTracker) remove(name string) (sampler.Handle, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	h, ok := t.links[name]
	if ok {
		delete(t.links, name)
	}
	return h, ok
}

// names returns the tracked link names in sorted order.
func (t *targetTracker) names() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.links))
	for name := range t.links {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
