package metrics

import (
	"context"
	"time"
)

// unsupportedTracker is the linkTracker used where kernel link statistics
// are unavailable. Every operation fails and no state is touched.
type unsupportedTracker struct{}

func errUnsupported() *Error {
	return &Error{Kind: KindKstat, Message: "link telemetry is not supported on this platform"}
}

func (unsupportedTracker) trackPhysicalLink(context.Context, string, time.Duration) error {
	return errUnsupported()
}

func (unsupportedTracker) trackVirtualLink(context.Context, string, string, time.Duration) error {
	return errUnsupported()
}

func (unsupportedTracker) stopTrackingLink(context.Context, string) error {
	return errUnsupported()
}

func (unsupportedTracker) trackedLinks() []string {
	return nil
}
