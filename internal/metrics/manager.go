// Package metrics owns the telemetry producer registry and the mutable set
// of monitored datalinks for the local node.
//
// One Manager exists per process. Construction registers the link sampler
// as a producer; after that the collection system pulls samples through the
// registry on its own schedule while callers track and untrack links as
// they appear and disappear.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/plexsphere/linkmond/internal/identity"
)

// DefaultCollectionInterval is the interval on which the collection system
// is expected to poll this producer.
const DefaultCollectionInterval = 30 * time.Second

// DefaultLinkSampleInterval is the default interval between link statistic
// samples.
const DefaultLinkSampleInterval = 10 * time.Second

// linkTracker is the capability boundary for link telemetry. The platform
// constructor selects the kernel-backed implementation or the permanently
// failing stub, so callers never need platform conditionals.
type linkTracker interface {
	trackPhysicalLink(ctx context.Context, linkName string, interval time.Duration) error
	trackVirtualLink(ctx context.Context, linkName, hostname string, interval time.Duration) error
	stopTrackingLink(ctx context.Context, linkName string) error
	trackedLinks() []string
}

// Manager owns the producer registry, the link sampler, and the tracked
// target map for one node.
type Manager struct {
	registry *ProducerRegistry
	tracker  linkTracker
}

// NewManager constructs the metrics manager for this process. On platforms
// with kernel link statistics it creates the sampler and registers it into
// a fresh producer registry keyed by the node ID; construction fails if
// either step does. Elsewhere only the registry is created and all tracking
// operations fail.
func NewManager(id identity.Identity, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	registry := NewProducerRegistry(id.NodeID)
	tracker, err := newLinkTracker(id, registry, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("metrics manager initialized",
		"component", "metrics",
		"node_id", id.NodeID.String(),
		"serial", id.Baseboard.SerialNumber(),
	)
	return &Manager{
		registry: registry,
		tracker:  tracker,
	}, nil
}

// Registry returns the producer registry for the pull path.
func (m *Manager) Registry() *ProducerRegistry {
	return m.registry
}

// TrackPhysicalLink starts sampling statistics for a physical datalink on
// the given interval. The link is labeled with the node identity and the
// locally resolved hostname. Re-tracking an already tracked name replaces
// its target and releases the superseded one.
func (m *Manager) TrackPhysicalLink(ctx context.Context, linkName string, interval time.Duration) error {
	return m.tracker.trackPhysicalLink(ctx, linkName, interval)
}

// TrackVirtualLink starts sampling statistics for a virtual datalink,
// labeled with the caller-supplied hostname instead of the node's own.
//
// Virtual links are not recorded in the tracked-link map, so they cannot
// later be stopped by name with StopTrackingLink.
func (m *Manager) TrackVirtualLink(ctx context.Context, linkName, hostname string, interval time.Duration) error {
	return m.tracker.trackVirtualLink(ctx, linkName, hostname, interval)
}

// StopTrackingLink stops sampling the named datalink. Stopping a link that
// was never tracked, or already stopped, is not an error.
func (m *Manager) StopTrackingLink(ctx context.Context, linkName string) error {
	return m.tracker.stopTrackingLink(ctx, linkName)
}

// TrackedLinks returns the names of the currently tracked physical links,
// sorted.
func (m *Manager) TrackedLinks() []string {
	return m.tracker.trackedLinks()
}
