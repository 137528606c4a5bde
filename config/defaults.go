package config

// ── Default values ───────────────────────────────────────────────────
//
// All compiled-in defaults live here so they are easy to audit and
// reuse across the config file, environment variables, and CLI flags.

const (
	// DefaultConfigPath is the config file read when -c is not given.
	DefaultConfigPath = "/etc/relayd/relayd.conf"

	// DefaultControlPort is the TCP port the daemon's control channel
	// listens on.
	DefaultControlPort = 8770

	// DefaultControlInterface is used when the config file names no
	// control interfaces and no -s flag is given.
	DefaultControlInterface = "127.0.0.1"

	// DefaultServerCertFile is the daemon's certificate, which doubles
	// as the trust anchor for verifying the daemon's identity.
	DefaultServerCertFile = "/etc/relayd/server.pem"

	// DefaultControlKeyFile is the client's private key.
	DefaultControlKeyFile = "/etc/relayd/control.key"

	// DefaultControlCertFile is the client's certificate.
	DefaultControlCertFile = "/etc/relayd/control.pem"

	// DefaultDaemonBinary is the program exec'd by the start command.
	DefaultDaemonBinary = "relayd"

	// DefaultJumpPort is the standard SSH port for -J jump hosts.
	DefaultJumpPort = 22
)
