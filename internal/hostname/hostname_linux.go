//go:build linux

package hostname

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Get resolves the local hostname via uname(2).
func Get() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("hostname: uname: %w", err)
	}
	return parseNodename(uts.Nodename[:])
}
