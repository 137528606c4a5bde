// Package cmd wires up the CLI flags and dispatches to the control
// client.
package cmd

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"relayctl/config"
	"relayctl/internal/control"
	"relayctl/internal/daemon"
	ncerr "relayctl/internal/errors"
	"relayctl/internal/transport"
	"relayctl/tunnel"
	"relayctl/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X relayctl/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs one control exchange (or the start
// special case).
func Execute(ctx context.Context, args []string) error {
	var (
		cfgPath string
		server  string
		verbose int

		jumpSpec      string
		sshKeyPath    string
		sshPassword   bool
		useSSHAgent   bool
		strictHostKey bool
		knownHosts    string

		showVersion, showHelp bool
	)

	fs := flag.NewFlagSet("relayctl", flag.ContinueOnError)

	// ── target ───────────────────────────────────────────────────
	fs.StringVarP(&cfgPath, "config", "c", config.DefaultConfigPath, "Config file")
	fs.StringVarP(&server, "server", "s", "", "Server address host[@port]; config is used if omitted")

	// ── SSH jump host ────────────────────────────────────────────
	fs.StringVarP(&jumpSpec, "jump", "J", "", "Reach the control port via [user@]host[:port]")
	fs.StringVar(&sshKeyPath, "ssh-key", "", "SSH private key file")
	fs.BoolVar(&sshPassword, "ssh-password", false, "Prompt for SSH password")
	fs.BoolVar(&useSSHAgent, "ssh-agent", false, "Use SSH agent")
	fs.BoolVar(&strictHostKey, "strict-hostkey", false, "Verify SSH host keys")
	fs.StringVar(&knownHosts, "known-hosts", "", "Custom known_hosts path")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&verbose, "verbose", "v", "Increase verbosity (repeatable)")

	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("relayctl %s\n", version)
		return nil
	}

	// ── positional arguments: command [args...] ──────────────────
	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(fs)
		return ncerr.ErrMissingCommand
	}
	command, cmdArgs := remaining[0], remaining[1:]

	// ── start: exec the daemon, no control channel involved ──────
	if command == "start" {
		return daemon.Start(daemonBinary(cfgPath), cfgPath)
	}

	// ── config: file, then environment, then flags ───────────────
	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		return err
	}
	config.LoadFromEnv(cfg)
	if server != "" {
		cfg.Server = server
	}
	if verbose > 0 {
		cfg.Verbose = verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := util.NewLogger(cfg.Verbose)

	if !cfg.RemoteControl.Enabled {
		logger.Warn("remote control is disabled in the config file")
	}

	// ── build the dialer ─────────────────────────────────────────
	var dialer transport.Dialer = &transport.NetDialer{}
	if jumpSpec != "" {
		user, host, port, err := config.ParseJumpSpec(jumpSpec)
		if err != nil {
			return fmt.Errorf("jump: %w", err)
		}
		tun := tunnel.NewSSHTunnel(&tunnel.SSHConfig{
			User:          user,
			Host:          host,
			Port:          port,
			KeyPath:       sshKeyPath,
			PromptPass:    sshPassword,
			UseAgent:      useSSHAgent,
			StrictHostKey: strictHostKey,
			KnownHosts:    knownHosts,
		}, logger)
		logger.Verbose("establishing SSH tunnel to %s:%d", host, port)
		if err := tun.Connect(ctx); err != nil {
			return err
		}
		dialer = tun
	}
	defer dialer.Close()

	client := control.New(cfg, dialer, logger, os.Stdout)
	return client.Run(ctx, command, cmdArgs)
}

// ── helpers ──────────────────────────────────────────────────────────

// daemonBinary peeks at the config file for a custom daemon binary
// name.  start must work even against a config the daemon itself would
// reject, so file errors fall back to the default.
func daemonBinary(cfgPath string) string {
	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		return config.DefaultDaemonBinary
	}
	return cfg.Daemon.Binary
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `relayctl - remote control utility for the relayd daemon v%s

Sends one command to a running relayd over a mutually-authenticated
TLS control channel and prints the response.

Usage:
  relayctl [options] <command> [args...]

Commands:
  start         start the daemon; runs relayd with the config file
  stop          stop the daemon
  reload        reload the daemon
  status        show daemon status
  (any other command is passed to the daemon verbatim)

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  relayctl status                             Query the local daemon
  relayctl -s 192.0.2.10@8770 reload          Control a remote daemon
  relayctl -J admin@bastion -s 10.0.0.5 stop  Hop through a jump host
`)
}
