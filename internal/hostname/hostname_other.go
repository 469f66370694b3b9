//go:build !linux

package hostname

import "errors"

// Get is unavailable without uname(2).
func Get() (string, error) {
	return "", errors.New("hostname: kernel nodename is not available on this platform")
}
