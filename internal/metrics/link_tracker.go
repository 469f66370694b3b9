package metrics

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/plexsphere/linkmond/internal/hostname"
	"github.com/plexsphere/linkmond/internal/identity"
	"github.com/plexsphere/linkmond/internal/sampler"
)

// linkSampler is the slice of the sampler used by the tracker. Narrowed to
// an interface so tests can substitute a recording fake.
type linkSampler interface {
	AddTarget(ctx context.Context, spec sampler.LinkTarget, policy sampler.CollectionPolicy) (sampler.Handle, error)
	RemoveTarget(ctx context.Context, h sampler.Handle) error
}

// kstatTracker is the kernel-backed linkTracker. It pairs the sampler with
// the name-to-handle map and keeps the two in step: map mutation and handle
// release happen in the same call, though the sampler calls themselves run
// outside the map's critical section because they block on kernel I/O.
type kstatTracker struct {
	identity identity.Identity
	sampler  linkSampler
	targets  *targetTracker
	hostname func() (string, error)
	logger   *slog.Logger
}

func newKstatTracker(id identity.Identity, s linkSampler, logger *slog.Logger) *kstatTracker {
	return &kstatTracker{
		identity: id,
		sampler:  s,
		targets:  newTargetTracker(),
		hostname: hostname.Get,
		logger:   logger.With("component", "metrics"),
	}
}

func (t *kstatTracker) trackPhysicalLink(ctx context.Context, linkName string, interval time.Duration) error {
	host, err := t.hostname()
	if err != nil {
		return hostnameError(err)
	}
	spec := sampler.LinkTarget{
		NodeID:    t.identity.NodeID,
		ClusterID: t.identity.ClusterID,
		Serial:    t.identity.Baseboard.SerialNumber(),
		Hostname:  host,
		LinkName:  linkName,
		Kind:      sampler.KindPhysical,
	}
	h, err := t.sampler.AddTarget(ctx, spec, sampler.NeverExpire(interval))
	if err != nil {
		return kstatError("failed to add link target", err)
	}

	prev, replaced := t.targets.insert(linkName, h)
	if replaced {
		// Release the superseded target so re-tracking a name does not
		// leave a second copy sampling in the background.
		if err := t.sampler.RemoveTarget(ctx, prev); err != nil {
			t.logger.Warn("failed to release superseded link target",
				"link", linkName,
				"handle", prev.String(),
				"error", err,
			)
		}
	}
	t.logger.Info("tracking physical link", "link", linkName, "interval", interval)
	return nil
}

func (t *kstatTracker) trackVirtualLink(ctx context.Context, linkName, host string, interval time.Duration) error {
	spec := sampler.LinkTarget{
		NodeID:    t.identity.NodeID,
		ClusterID: t.identity.ClusterID,
		Serial:    t.identity.Baseboard.SerialNumber(),
		Hostname:  host,
		LinkName:  linkName,
		Kind:      sampler.KindVirtual,
	}
	// The handle is deliberately discarded: virtual links are not entered
	// into the tracked-link map and cannot be stopped by name.
	if _, err := t.sampler.AddTarget(ctx, spec, sampler.NeverExpire(interval)); err != nil {
		return kstatError("failed to add link target", err)
	}
	t.logger.Info("tracking virtual link", "link", linkName, "hostname", host, "interval", interval)
	return nil
}

func (t *kstatTracker) stopTrackingLink(ctx context.Context, linkName string) error {
	h, ok := t.targets.remove(linkName)
	if !ok {
		// Never tracked, or already stopped.
		return nil
	}
	if err := t.sampler.RemoveTarget(ctx, h); err != nil {
		return kstatError("failed to remove link target", err)
	}
	t.logger.Info("stopped tracking link", "link", linkName)
	return nil
}

func (t *kstatTracker) trackedLinks() []string {
	return t.targets.names()
}

// hostnameError maps hostname package failures onto the metrics taxonomy.
func hostnameError(err error) *Error {
	switch {
	case errors.Is(err, hostname.ErrMissingNull):
		return &Error{Kind: KindHostnameMissingNull, Message: "missing NUL byte in hostname", Err: err}
	case errors.Is(err, hostname.ErrNonUTF8):
		return &Error{Kind: KindNonUTF8Hostname, Message: "non-UTF8 hostname", Err: err}
	default:
		return &Error{Kind: KindHostname, Message: "failed to fetch hostname", Err: err}
	}
}
