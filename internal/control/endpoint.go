// Package control implements the secure control-channel protocol
// client: target resolution, the mutually-authenticated TLS session,
// and the one-shot command/response exchange.
package control

import (
	"context"
	"net"
	"net/netip"
	"strconv"
	"strings"

	"relayctl/config"
	ncerr "relayctl/internal/errors"
	"relayctl/util"
)

// Endpoint is the concrete dial target for one invocation.  Exactly one
// of Addr or Path is set.
type Endpoint struct {
	Host string     // host or IP as given by the operator
	Port int        // control port
	Addr netip.Addr // resolved address (zero for unix sockets)
	Path string     // unix socket path
}

// IsUnix reports whether the endpoint is a local unix socket.  Unix
// control sockets are protected by filesystem permissions and skip the
// TLS layer entirely.
func (e Endpoint) IsUnix() bool { return e.Path != "" }

// Network returns the stream network matching the endpoint's address
// family.
func (e Endpoint) Network() string {
	switch {
	case e.IsUnix():
		return "unix"
	case e.Addr.Is4() || e.Addr.Is4In6():
		return "tcp4"
	default:
		return "tcp6"
	}
}

// Address returns the dial address for Network.
func (e Endpoint) Address() string {
	if e.IsUnix() {
		return e.Path
	}
	return util.FormatAddr(e.Addr.String(), e.Port)
}

// ResolveEndpoint turns a target spec into an Endpoint.
//
// The spec is "host" or "host@port".  An empty spec falls back to the
// first configured control interface, and failing that to loopback.
// Specs starting with '/' are unix socket paths.  Hostnames resolve to
// exactly one concrete address (the first result); the address family
// is inferred from it, never declared by the caller.
func ResolveEndpoint(ctx context.Context, spec string, cfg *config.Config) (Endpoint, error) {
	if spec == "" {
		if ifs := cfg.RemoteControl.Interfaces; len(ifs) > 0 {
			spec = ifs[0]
		} else {
			spec = config.DefaultControlInterface
		}
	}

	if strings.HasPrefix(spec, "/") {
		return Endpoint{Path: spec}, nil
	}

	host := spec
	port := cfg.RemoteControl.Port
	if i := strings.LastIndex(spec, "@"); i >= 0 {
		host = spec[:i]
		p, err := strconv.Atoi(spec[i+1:])
		if err != nil {
			return Endpoint{}, &ncerr.AddressError{Spec: spec, Reason: "invalid port"}
		}
		if p < 1 || p > 65535 {
			return Endpoint{}, &ncerr.AddressError{Spec: spec, Reason: "port out of range 1-65535"}
		}
		port = p
	}
	if host == "" {
		return Endpoint{}, &ncerr.AddressError{Spec: spec, Reason: "empty host"}
	}

	addr, err := resolveHost(ctx, host)
	if err != nil {
		return Endpoint{}, &ncerr.AddressError{Spec: spec, Reason: "could not resolve host", Err: err}
	}

	return Endpoint{Host: host, Port: port, Addr: addr}, nil
}

// resolveHost returns the single concrete address for host: the literal
// itself when host is an IP, otherwise the first lookup result.
func resolveHost(ctx context.Context, host string) (netip.Addr, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		return addr, nil
	}
	addrs, err := net.DefaultResolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return netip.Addr{}, err
	}
	if len(addrs) == 0 {
		return netip.Addr{}, &net.DNSError{Err: "no addresses", Name: host}
	}
	return addrs[0].Unmap(), nil
}
