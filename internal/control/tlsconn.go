package control

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"

	"relayctl/config"
	ncerr "relayctl/internal/errors"
)

// Identity is the material for one invocation: the client's own
// certificate/key pair and the trusted-issuer pool used to validate the
// daemon's certificate.  The pool is built from the daemon's certificate
// file alone - never the system trust store - so only a daemon holding
// that exact identity (or one issued under it) is accepted.
type Identity struct {
	pair    tls.Certificate
	issuers *x509.CertPool
}

// LoadIdentity reads the identity material from the configured paths.
// A client certificate that does not match the private key fails here,
// before any connection is attempted.
func LoadIdentity(rc *config.RemoteControl) (*Identity, error) {
	pair, err := tls.LoadX509KeyPair(rc.ControlCertFile, rc.ControlKeyFile)
	if err != nil {
		return nil, ncerr.WrapTLS(ncerr.TLSOpIdentity,
			fmt.Errorf("client cert/key pair: %w", err))
	}

	pem, err := os.ReadFile(rc.ServerCertFile)
	if err != nil {
		return nil, ncerr.WrapTLS(ncerr.TLSOpIdentity,
			fmt.Errorf("server certificate: %w", err))
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, ncerr.WrapTLS(ncerr.TLSOpIdentity,
			fmt.Errorf("server certificate %s contains no certificates", rc.ServerCertFile))
	}

	return &Identity{pair: pair, issuers: pool}, nil
}

// clientConfig builds the client-mode TLS configuration.
//
// Handshake-time verification is disabled so that "handshake
// succeeded" and "peer verified" stay two independent checks, the way
// Establish performs them.  The peer is never trusted on handshake
// success alone.
func (id *Identity) clientConfig() *tls.Config {
	return &tls.Config{
		Certificates: []tls.Certificate{id.pair},
		RootCAs:      id.issuers,
		MinVersion:   tls.VersionTLS12,
		//nolint:gosec // verification happens in verifyPeer after the handshake
		InsecureSkipVerify: true,
	}
}

// Establish wraps the raw connection in a TLS client session, performs
// the handshake, and then runs the two mandatory post-handshake checks:
// the peer presented a certificate at all, and that certificate chains
// to the trusted issuer.  An unverified peer is treated exactly like a
// failed connection.
//
// The returned conn shares the raw connection's lifetime; closing
// either closes both.
func Establish(ctx context.Context, raw net.Conn, id *Identity) (*tls.Conn, error) {
	conn := tls.Client(raw, id.clientConfig())
	if err := conn.HandshakeContext(ctx); err != nil {
		return nil, ncerr.WrapTLS(ncerr.TLSOpHandshake, err)
	}
	if err := verifyPeer(conn.ConnectionState(), id.issuers); err != nil {
		return nil, err
	}
	return conn, nil
}

// verifyPeer checks the peer's certificate after a completed handshake.
// Some TLS configurations finish a handshake without peer
// authentication, so an absent certificate is its own failure mode,
// distinct from a chain that fails verification.
func verifyPeer(cs tls.ConnectionState, issuers *x509.CertPool) error {
	if len(cs.PeerCertificates) == 0 {
		return ncerr.WrapTLS(ncerr.TLSOpPeerCert, ncerr.ErrNoPeerCertificate)
	}

	// Chain-only verification: the trust anchor is the daemon's own
	// certificate, so there is no hostname to match against it.
	opts := x509.VerifyOptions{
		Roots:         issuers,
		Intermediates: x509.NewCertPool(),
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}
	for _, cert := range cs.PeerCertificates[1:] {
		opts.Intermediates.AddCert(cert)
	}
	if _, err := cs.PeerCertificates[0].Verify(opts); err != nil {
		return ncerr.WrapTLS(ncerr.TLSOpVerify, err)
	}
	return nil
}
