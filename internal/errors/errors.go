// Package errors provides the error taxonomy for relayctl.
//
// Every error here is terminal for the invocation: a control-client run
// is a single deliberate operator action with no partial-success state,
// so nothing is retried or recovered locally.  Errors carry the failing
// step and propagate unchanged to the top-level handler in main, which
// prints them and exits non-zero.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrNoPeerCertificate marks a handshake that completed without
	// the peer presenting any certificate at all.
	ErrNoPeerCertificate = errors.New("peer presented no certificate")

	// ErrMissingCommand is the usage error for an invocation without
	// a command.
	ErrMissingCommand = errors.New("command required (use --help for usage)")
)

// ── TLS sub-conditions ───────────────────────────────────────────────

// Operation names used in TLSError.Op.
const (
	TLSOpIdentity  = "identity"         // loading the cert/key/trust material
	TLSOpHandshake = "handshake"        // the handshake itself
	TLSOpVerify    = "verify"           // post-handshake chain verification
	TLSOpPeerCert  = "peer-certificate" // peer presented no certificate
)

// ── Structured error types ───────────────────────────────────────────

// AddressError represents a malformed or unresolvable target
// specification.  No connection is attempted after one.
type AddressError struct {
	Spec   string // the offending host[@port] string
	Reason string
	Err    error // underlying resolver error, may be nil
}

func (e *AddressError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("address %q: %s: %v", e.Spec, e.Reason, e.Err)
	}
	return fmt.Sprintf("address %q: %s", e.Spec, e.Reason)
}

func (e *AddressError) Unwrap() error { return e.Err }

// ConnectError represents a failed transport connect, naming the
// address that was attempted.
type ConnectError struct {
	Op   string // "connect"
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// TLSError represents a failure establishing or verifying the control
// session.  Op distinguishes the sub-condition: handshake failure,
// verification failure, and a missing peer certificate are distinct
// outcomes even though all three are equally fatal.
type TLSError struct {
	Op  string
	Err error
}

func (e *TLSError) Error() string {
	return fmt.Sprintf("tls %s: %v", e.Op, e.Err)
}

func (e *TLSError) Unwrap() error { return e.Err }

// IOError represents a failed write or an abnormal read on the
// established session.
type IOError struct {
	Op  string // "write", "read"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// SSHError represents a jump-host failure with gateway context.
type SSHError struct {
	Op   string // "handshake", "auth", "hostkey", "dial"
	Host string
	Port int
	Err  error
}

func (e *SSHError) Error() string {
	return fmt.Sprintf("ssh %s %s:%d: %v", e.Op, e.Host, e.Port, e.Err)
}

func (e *SSHError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// WrapConnect creates a ConnectError.
func WrapConnect(op, addr string, err error) *ConnectError {
	return &ConnectError{Op: op, Addr: addr, Err: err}
}

// WrapTLS creates a TLSError for the given sub-condition.
func WrapTLS(op string, err error) *TLSError {
	return &TLSError{Op: op, Err: err}
}

// WrapIO creates an IOError.
func WrapIO(op string, err error) *IOError {
	return &IOError{Op: op, Err: err}
}

// WrapSSH creates an SSHError.
func WrapSSH(op, host string, port int, err error) *SSHError {
	return &SSHError{Op: op, Host: host, Port: port, Err: err}
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use relayctl/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }
