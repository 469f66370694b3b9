//go:build linux

package metrics

import (
	"log/slog"

	"github.com/plexsphere/linkmond/internal/identity"
	"github.com/plexsphere/linkmond/internal/sampler"
)

// newLinkTracker builds the kernel-backed tracker: it opens the system
// sampler and registers it as a producer. Registration happens exactly
// once, here; a failure of either step fails manager construction.
func newLinkTracker(id identity.Identity, registry *ProducerRegistry, logger *slog.Logger) (linkTracker, error) {
	s, err := sampler.NewSystem(logger)
	if err != nil {
		return nil, kstatError("failed to initialize link sampler", err)
	}
	if err := registry.RegisterProducer(s); err != nil {
		return nil, err
	}
	return newKstatTracker(id, s, logger), nil
}
