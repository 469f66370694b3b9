package metrics

import "fmt"

// Kind classifies a metrics failure.
type Kind string

const (
	// KindKstat covers failures of the kernel-statistics subsystem:
	// initialization, adding or removing a target, or its categorical
	// absence on unsupported platforms.
	KindKstat Kind = "kstat"

	// KindRegistry covers producer registration failures.
	KindRegistry Kind = "registry"

	// KindHostname covers local hostname resolution failures.
	KindHostname Kind = "hostname"

	// KindNonUTF8Hostname indicates the kernel returned a hostname that is
	// not valid UTF-8.
	KindNonUTF8Hostname Kind = "non-utf8-hostname"

	// KindHostnameMissingNull indicates the kernel hostname buffer had no
	// NUL terminator.
	KindHostnameMissingNull Kind = "hostname-missing-null"
)

// Error is the failure type for all metrics operations. It supports
// errors.Is matching by Kind and wraps the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the formatted error string.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("metrics: %s: %v", e.Message, e.Err)
	}
	return "metrics: " + e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is supports errors.Is matching by Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors for matching failure kinds with errors.Is.
var (
	ErrKstat               = &Error{Kind: KindKstat, Message: "kernel statistics failure"}
	ErrRegistry            = &Error{Kind: KindRegistry, Message: "producer registration failure"}
	ErrHostname            = &Error{Kind: KindHostname, Message: "failed to fetch hostname"}
	ErrNonUTF8Hostname     = &Error{Kind: KindNonUTF8Hostname, Message: "non-UTF8 hostname"}
	ErrHostnameMissingNull = &Error{Kind: KindHostnameMissingNull, Message: "missing NUL byte in hostname"}
)

func kstatError(message string, err error) *Error {
	return &Error{Kind: KindKstat, Message: message, Err: err}
}

func registryError(message string, err error) *Error {
	return &Error{Kind: KindRegistry, Message: message, Err: err}
}
