//go:build !linux

package metrics

import (
	"log/slog"

	"github.com/plexsphere/linkmond/internal/identity"
)

// newLinkTracker returns the permanently failing tracker: without kernel
// link statistics there is no sampler and nothing registers as a producer.
// The registry itself still exists for other producers.
func newLinkTracker(_ identity.Identity, _ *ProducerRegistry, logger *slog.Logger) (linkTracker, error) {
	logger.Warn("link telemetry is not supported on this platform", "component", "metrics")
	return unsupportedTracker{}, nil
}
