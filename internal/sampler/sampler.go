// Package sampler maintains a set of monitored datalinks and produces
// per-link traffic statistics for the metrics pull path.
//
// Targets are added and removed dynamically as links come and go. The
// Sampler itself is registered once as a producer; after that the
// collection system pulls samples through it without further mediation.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrUnknownTarget indicates a handle that does not name a tracked target.
var ErrUnknownTarget = errors.New("sampler: unknown target handle")

// LinkKind distinguishes physical datalinks from virtual ones.
type LinkKind string

const (
	// KindPhysical marks a physical datalink owned by the node itself.
	KindPhysical LinkKind = "physical"

	// KindVirtual marks a virtual datalink; its hostname is supplied by
	// the caller rather than resolved locally.
	KindVirtual LinkKind = "virtual"
)

// LinkTarget describes one datalink whose statistics are sampled.
type LinkTarget struct {
	NodeID    uuid.UUID
	ClusterID uuid.UUID
	Serial    string
	Hostname  string
	LinkName  string
	Kind      LinkKind
}

// Handle is an opaque identifier for a tracked target, returned by
// AddTarget and meaningful only to the Sampler that issued it.
type Handle uuid.UUID

// String returns the handle in UUID form.
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// CollectionPolicy controls how often a target's statistics are read from
// the kernel.
type CollectionPolicy struct {
	// Interval is the minimum time between kernel reads for the target.
	// Pulls arriving sooner are served from the cached sample.
	Interval time.Duration
}

// NeverExpire returns a policy that samples every interval and never
// expires the target.
func NeverExpire(interval time.Duration) CollectionPolicy {
	return CollectionPolicy{Interval: interval}
}

// LinkStats holds the raw traffic counters for a single datalink.
type LinkStats struct {
	RxBytes   uint64
	TxBytes   uint64
	RxPackets uint64
	TxPackets uint64
	RxErrors  uint64
	TxErrors  uint64
	RxDropped uint64
	TxDropped uint64
}

// LinkStatReader abstracts kernel-level link statistics retrieval.
type LinkStatReader interface {
	ReadLinkStats(ctx context.Context, linkName string) (*LinkStats, error)
}

var targetLabels = []string{"link_name", "kind", "hostname", "node_id", "cluster_id", "serial"}

var (
	rxBytesDesc = prometheus.NewDesc(
		"link_receive_bytes_total",
		"Bytes received on the datalink.",
		targetLabels, nil)
	txBytesDesc = prometheus.NewDesc(
		"link_transmit_bytes_total",
		"Bytes transmitted on the datalink.",
		targetLabels, nil)
	rxPacketsDesc = prometheus.NewDesc(
		"link_receive_packets_total",
		"Packets received on the datalink.",
		targetLabels, nil)
	txPacketsDesc = prometheus.NewDesc(
		"link_transmit_packets_total",
		"Packets transmitted on the datalink.",
		targetLabels, nil)
	rxErrorsDesc = prometheus.NewDesc(
		"link_receive_errors_total",
		"Receive errors on the datalink.",
		targetLabels, nil)
	txErrorsDesc = prometheus.NewDesc(
		"link_transmit_errors_total",
		"Transmit errors on the datalink.",
		targetLabels, nil)
	rxDroppedDesc = prometheus.NewDesc(
		"link_receive_dropped_total",
		"Inbound packets dropped on the datalink.",
		targetLabels, nil)
	txDroppedDesc = prometheus.NewDesc(
		"link_transmit_dropped_total",
		"Outbound packets dropped on the datalink.",
		targetLabels, nil)
)

// target pairs a tracked link with its policy and the last sample read
// from the kernel.
type target struct {
	spec   LinkTarget
	policy CollectionPolicy
	last   *LinkStats
	readAt time.Time
}

// Sampler reads link statistics for a mutable set of targets and exposes
// them as a prometheus.Collector.
type Sampler struct {
	reader LinkStatReader
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	targets map[Handle]*target
}

// Compile-time guard.
var _ prometheus.Collector = (*Sampler)(nil)

// New creates a Sampler backed by the given reader.
func New(reader LinkStatReader, logger *slog.Logger) *Sampler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sampler{
		reader:  reader,
		logger:  logger.With("component", "sampler"),
		now:     time.Now,
		targets: make(map[Handle]*target),
	}
}

// AddTarget starts sampling the described datalink under the given policy
// and returns a fresh handle for it. The link must exist: the first sample
// is read immediately and its failure rejects the target.
func (s *Sampler) AddTarget(ctx context.Context, spec LinkTarget, policy CollectionPolicy) (Handle, error) {
	stats, err := s.reader.ReadLinkStats(ctx, spec.LinkName)
	if err != nil {
		return Handle{}, fmt.Errorf("sampler: add target %q: %w", spec.LinkName, err)
	}

	h := Handle(uuid.New())
	s.mu.Lock()
	s.targets[h] = &target{
		spec:   spec,
		policy: policy,
		last:   stats,
		readAt: s.now(),
	}
	s.mu.Unlock()

	s.logger.Info("target added",
		"link", spec.LinkName,
		"link_kind", string(spec.Kind),
		"handle", h.String(),
		"interval", policy.Interval,
	)
	return h, nil
}

// RemoveTarget stops sampling the target named by the handle. Removing
// an unknown handle fails with ErrUnknownTarget.
func (s *Sampler) RemoveTarget(_ context.Context, h Handle) error {
	s.mu.Lock()
	tgt, ok := s.targets[h]
	if ok {
		delete(s.targets, h)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("sampler: remove target %s: %w", h, ErrUnknownTarget)
	}
	s.logger.Info("target removed", "link", tgt.spec.LinkName, "handle", h.String())
	return nil
}

// Targets returns a snapshot of the currently tracked link targets.
func (s *Sampler) Targets() []LinkTarget {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LinkTarget, 0, len(s.targets))
	for _, tgt := range s.targets {
		out = append(out, tgt.spec)
	}
	return out
}

// Describe implements prometheus.Collector.
func (s *Sampler) Describe(ch chan<- *prometheus.Desc) {
	ch <- rxBytesDesc
	ch <- txBytesDesc
	ch <- rxPacketsDesc
	ch <- txPacketsDesc
	ch <- rxErrorsDesc
	ch <- txErrorsDesc
	ch <- rxDroppedDesc
	ch <- txDroppedDesc
}

// Collect implements prometheus.Collector. A target's counters are re-read
// from the kernel at most once per policy interval; pulls in between are
// served from the cached sample. A target whose link has vanished keeps
// reporting its last known sample.
func (s *Sampler) Collect(ch chan<- prometheus.Metric) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for h, tgt := range s.targets {
		if now.Sub(tgt.readAt) >= tgt.policy.Interval {
			stats, err := s.reader.ReadLinkStats(context.Background(), tgt.spec.LinkName)
			if err != nil {
				s.logger.Warn("link stat read failed",
					"link", tgt.spec.LinkName,
					"handle", h.String(),
					"error", err,
				)
			} else {
				tgt.last = stats
				tgt.readAt = now
			}
		}
		emit(ch, tgt.spec, tgt.last)
	}
}

func emit(ch chan<- prometheus.Metric, spec LinkTarget, stats *LinkStats) {
	labels := []string{
		spec.LinkName,
		string(spec.Kind),
		spec.Hostname,
		spec.NodeID.String(),
		spec.ClusterID.String(),
		spec.Serial,
	}
	counter := func(desc *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(v), labels...)
	}
	counter(rxBytesDesc, stats.RxBytes)
	counter(txBytesDesc, stats.TxBytes)
	counter(rxPacketsDesc, stats.RxPackets)
	counter(txPacketsDesc, stats.TxPackets)
	counter(rxErrorsDesc, stats.RxErrors)
	counter(txErrorsDesc, stats.TxErrors)
	counter(rxDroppedDesc, stats.RxDropped)
	counter(txDroppedDesc, stats.TxDropped)
}
