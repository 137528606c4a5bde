package control

import (
	"context"
	"io"

	"relayctl/config"
	"relayctl/internal/transport"
	"relayctl/util"
)

// Client orchestrates a single control exchange: resolve the target,
// load identity material, connect, establish the TLS session, send the
// command, stream the response.  Strictly sequential, strictly one
// connection per invocation.
type Client struct {
	Config *config.Config
	Dialer transport.Dialer
	Logger *util.Logger
	Out    io.Writer
}

// New returns a ready-to-run Client writing the response to out.
func New(cfg *config.Config, dialer transport.Dialer, logger *util.Logger, out io.Writer) *Client {
	return &Client{Config: cfg, Dialer: dialer, Logger: logger, Out: out}
}

// Run performs one connect-handshake-exchange-close cycle.  Every error
// is terminal; the connection is closed on every exit path, including a
// handshake that fails partway through.
func (c *Client) Run(ctx context.Context, command string, args []string) error {
	ep, err := ResolveEndpoint(ctx, c.Config.Server, c.Config)
	if err != nil {
		return err
	}

	// Identity material is loaded before the connect so a bad key pair
	// never results in a half-open connection to the daemon.
	var id *Identity
	if !ep.IsUnix() {
		id, err = LoadIdentity(&c.Config.RemoteControl)
		if err != nil {
			return err
		}
	}

	c.Logger.Verbose("connecting to %s (%s)", ep.Address(), ep.Network())
	raw, err := c.Dialer.Dial(ctx, ep.Network(), ep.Address())
	if err != nil {
		return err
	}
	defer raw.Close()

	conn := io.ReadWriter(raw)
	if !ep.IsUnix() {
		session, err := Establish(ctx, raw, id)
		if err != nil {
			return err
		}
		// Closing the session closes raw too; the deferred raw.Close
		// then degrades to a no-op second close.
		defer session.Close()
		c.Logger.Verbose("TLS session established, peer verified")
		conn = session
	}

	c.Logger.Debug("sending command %q", command)
	return Exchange(conn, c.Out, command, args)
}
