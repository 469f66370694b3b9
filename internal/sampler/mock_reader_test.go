package sampler

import (
	"context"
	"fmt"
	"sync"
)

// mockLinkStatReader serves canned stats per link name and records reads.
type mockLinkStatReader struct {
	mu    sync.Mutex
	stats map[string]*LinkStats
	err   error
	reads map[string]int
}

func newMockReader() *mockLinkStatReader {
	return &mockLinkStatReader{
		stats: make(map[string]*LinkStats),
		reads: make(map[string]int),
	}
}

func (m *mockLinkStatReader) setStats(link string, stats *LinkStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats[link] = stats
}

func (m *mockLinkStatReader) readCount(link string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads[link]
}

func (m *mockLinkStatReader) ReadLinkStats(_ context.Context, linkName string) (*LinkStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads[linkName]++
	if m.err != nil {
		return nil, m.err
	}
	stats, ok := m.stats[linkName]
	if !ok {
		return nil, fmt.Errorf("link %q does not exist", linkName)
	}
	cp := *stats
	return &cp, nil
}
