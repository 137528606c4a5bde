package transport

import (
	"context"
	"net"

	ncerr "relayctl/internal/errors"
)

// NetDialer establishes direct stream connections: tcp4 or tcp6
// matching the endpoint's address family, or unix for socket paths.
//
// There is deliberately no timeout here.  The connect blocks until the
// kernel gives up or the context is cancelled; a hung control server
// blocks the client, which is the documented behavior for a one-shot
// operator action.
type NetDialer struct{}

// Dial connects to address on the given stream network.
func (d *NetDialer) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, network, address)
	if err != nil {
		return nil, ncerr.WrapConnect("connect", address, err)
	}
	return conn, nil
}

// Close is a no-op for the stateless dialer.
func (d *NetDialer) Close() error { return nil }
