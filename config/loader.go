package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Config file  (file.go)
//   4. Defaults  (defaults.go)

import (
	"os"
	"strconv"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the RELAYCTL_ prefix.

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing is applied so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("RELAYCTL_SERVER"); v != "" {
		cfg.Server = v
	}
	if v := envInt("RELAYCTL_PORT"); v > 0 {
		cfg.RemoteControl.Port = v
	}
	if v := os.Getenv("RELAYCTL_SERVER_CERT_FILE"); v != "" {
		cfg.RemoteControl.ServerCertFile = v
	}
	if v := os.Getenv("RELAYCTL_CONTROL_KEY_FILE"); v != "" {
		cfg.RemoteControl.ControlKeyFile = v
	}
	if v := os.Getenv("RELAYCTL_CONTROL_CERT_FILE"); v != "" {
		cfg.RemoteControl.ControlCertFile = v
	}
	if v := os.Getenv("RELAYCTL_DAEMON_BINARY"); v != "" {
		cfg.Daemon.Binary = v
	}
	if v := envInt("RELAYCTL_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
