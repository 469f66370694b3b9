//go:build linux

package sampler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vishvananda/netlink"
)

// netlinkReader reads link statistics from the kernel over rtnetlink.
type netlinkReader struct {
	handle *netlink.Handle
}

// Compile-time guard.
var _ LinkStatReader = (*netlinkReader)(nil)

// NewSystem opens a netlink handle to the kernel and returns a Sampler
// backed by it. It fails if the netlink socket cannot be created.
func NewSystem(logger *slog.Logger) (*Sampler, error) {
	h, err := netlink.NewHandle()
	if err != nil {
		return nil, fmt.Errorf("sampler: open netlink handle: %w", err)
	}
	return New(&netlinkReader{handle: h}, logger), nil
}

// ReadLinkStats returns the kernel's traffic counters for the named link.
func (r *netlinkReader) ReadLinkStats(_ context.Context, linkName string) (*LinkStats, error) {
	link, err := r.handle.LinkByName(linkName)
	if err != nil {
		return nil, fmt.Errorf("sampler: lookup link %q: %w", linkName, err)
	}
	stats := link.Attrs().Statistics
	if stats == nil {
		return nil, fmt.Errorf("sampler: link %q has no statistics", linkName)
	}
	return &LinkStats{
		RxBytes:   stats.RxBytes,
		TxBytes:   stats.TxBytes,
		RxPackets: stats.RxPackets,
		TxPackets: stats.TxPackets,
		RxErrors:  stats.RxErrors,
		TxErrors:  stats.TxErrors,
		RxDropped: stats.RxDropped,
		TxDropped: stats.TxDropped,
	}, nil
}
