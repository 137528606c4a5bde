// Package tunnel provides SSH jump-host dialing for control ports that
// are not directly routable, backed by golang.org/x/crypto/ssh.
//
// The tunnel is only an alternative way of reaching the daemon: the
// control protocol above it is unchanged, still one connection, one
// command, one response.
package tunnel

import (
	"context"
	"net"
)

// Tunnel abstracts an encrypted hop through which the control
// connection can be forwarded.
type Tunnel interface {
	// Connect establishes the tunnel to the gateway.
	Connect(ctx context.Context) error

	// Dial opens a connection to address through the tunnel.
	Dial(ctx context.Context, network, address string) (net.Conn, error)

	// Close tears down the tunnel and frees resources.
	Close() error

	// IsAlive reports whether the underlying connection is still up.
	IsAlive() bool
}
