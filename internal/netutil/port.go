package netutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// ErrNoFreePort is returned when every probed port was already bound.
var ErrNoFreePort = errors.New("no available port")

// FindAvailablePort probes TCP ports sequentially starting at startPort
// and returns the first one that binds. A successful probe listener is
// closed immediately; the caller binds it for real afterwards. Only
// "address in use" advances the probe; any other bind error is returned
// as-is. After maxAttempts busy ports the probe gives up with
// ErrNoFreePort.
func FindAvailablePort(ctx context.Context, startPort, maxAttempts int) (int, error) {
	port := startPort
	for attempts := 0; attempts < maxAttempts; attempts++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			ln.Close()
			return port, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return 0, err
		}
		port++
	}
	return 0, fmt.Errorf("%w after %d attempts", ErrNoFreePort, maxAttempts)
}
