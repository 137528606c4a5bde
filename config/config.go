// Package config defines the runtime configuration for relayctl and
// provides helpers for loading it from the daemon's config file, the
// environment, and CLI flags.
package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// Config holds every tuneable for a single relayctl invocation.
type Config struct {
	// ── Control channel (from the config file) ───────────────────────
	RemoteControl RemoteControl `yaml:"remote-control"`

	// ── Daemon (from the config file) ────────────────────────────────
	Daemon Daemon `yaml:"daemon"`

	// ── Invocation (flags / environment only) ────────────────────────
	Server  string `yaml:"-"` // -s: host[@port] target, config is used if empty
	Verbose int    `yaml:"-"` // -v count
}

// RemoteControl mirrors the remote-control section of the daemon's
// config file.
type RemoteControl struct {
	// Enabled reports whether the daemon accepts remote control.  A
	// disabled channel is a warning for the client, not an error: the
	// operator may be probing connectivity before turning it on.
	Enabled bool `yaml:"enabled"`

	// Port is the control port used when an interface or -s target
	// carries no explicit @port.
	Port int `yaml:"port"`

	// Interfaces lists the daemon's control listeners.  The first
	// entry is the dial target when -s is omitted.  Entries starting
	// with '/' are unix socket paths.
	Interfaces []string `yaml:"interfaces"`

	// ServerCertFile is the daemon certificate that anchors trust for
	// peer verification.  It is not the client's own identity.
	ServerCertFile string `yaml:"server-cert-file"`

	// ControlKeyFile and ControlCertFile are the client's key pair
	// presented during the mutual handshake.
	ControlKeyFile  string `yaml:"control-key-file"`
	ControlCertFile string `yaml:"control-cert-file"`
}

// Daemon mirrors the daemon section of the config file.
type Daemon struct {
	// Binary is the program the start command execs.
	Binary string `yaml:"binary"`
}

// Default returns a Config populated with the compiled-in defaults.
// File, environment, and flag values overlay it in that order.
func Default() *Config {
	return &Config{
		RemoteControl: RemoteControl{
			Enabled:         true,
			Port:            DefaultControlPort,
			ServerCertFile:  DefaultServerCertFile,
			ControlKeyFile:  DefaultControlKeyFile,
			ControlCertFile: DefaultControlCertFile,
		},
		Daemon: Daemon{Binary: DefaultDaemonBinary},
	}
}

// ── Jump-spec parser ─────────────────────────────────────────────────

// jumpRe matches [user@]host[:port].
var jumpRe = regexp.MustCompile(`^(?:([^@]+)@)?([^:]+)(?::(\d+))?$`)

// ParseJumpSpec extracts user, host, and port from a -J argument such
// as "admin@bastion.example.com:2222".  Port defaults to 22.
func ParseJumpSpec(spec string) (user, host string, port int, err error) {
	m := jumpRe.FindStringSubmatch(spec)
	if m == nil {
		return "", "", 0, fmt.Errorf("invalid jump spec %q - expected [user@]host[:port]", spec)
	}
	user = m[1]
	host = m[2]
	port = DefaultJumpPort
	if m[3] != "" {
		port, err = strconv.Atoi(m[3])
		if err != nil || port < 1 || port > 65535 {
			return "", "", 0, fmt.Errorf("invalid jump port %q", m[3])
		}
	}
	if host == "" {
		return "", "", 0, fmt.Errorf("jump host is required")
	}
	return user, host, port, nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.RemoteControl.Port < 1 || c.RemoteControl.Port > 65535 {
		return fmt.Errorf("control port %d out of range 1-65535", c.RemoteControl.Port)
	}
	if c.Daemon.Binary == "" {
		return fmt.Errorf("daemon binary name is required")
	}
	return nil
}
