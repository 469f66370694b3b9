package metrics

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/plexsphere/linkmond/internal/sampler"
)

// mockSampler records added and removed targets behind a mutex so
// concurrent tracking tests can use it directly.
type mockSampler struct {
	mu      sync.Mutex
	addErr  error
	rmErr   error
	targets map[sampler.Handle]sampler.LinkTarget
	removed []sampler.Handle
}

func newMockSampler() *mockSampler {
	return &mockSampler{targets: make(map[sampler.Handle]sampler.LinkTarget)}
}

func (m *mockSampler) AddTarget(_ context.Context, spec sampler.LinkTarget, _ sampler.CollectionPolicy) (sampler.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return sampler.Handle{}, m.addErr
	}
	h := sampler.Handle(uuid.New())
	m.targets[h] = spec
	return h, nil
}

func (m *mockSampler) RemoveTarget(_ context.Context, h sampler.Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rmErr != nil {
		return m.rmErr
	}
	delete(m.targets, h)
	m.removed = append(m.removed, h)
	return nil
}

func (m *mockSampler) live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.targets)
}

func (m *mockSampler) removedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.removed)
}

func (m *mockSampler) specs() []sampler.LinkTarget {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sampler.LinkTarget, 0, len(m.targets))
	for _, spec := range m.targets {
		out = append(out, spec)
	}
	return out
}

func (m *mockSampler) specFor(h sampler.Handle) (sampler.LinkTarget, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	spec, ok := m.targets[h]
	return spec, ok
}
