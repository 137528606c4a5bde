// Package transport provides abstractions for opening the raw
// byte-stream that carries the control channel.  Dialers handle the
// "how" of reaching the daemon - a direct TCP or unix-socket connect,
// or a hop through an SSH jump host - independent of what happens over
// the connection (the control package's job).
package transport

import (
	"context"
	"net"
)

// Dialer opens outbound network connections.  Implementations include
// the plain stream dialer and the SSH jump-host tunnel.
type Dialer interface {
	// Dial establishes a connection to the given network address.
	Dial(ctx context.Context, network, address string) (net.Conn, error)

	// Close releases any long-lived resources held by the dialer
	// (e.g. an SSH session).  Stateless dialers return nil.
	Close() error
}
