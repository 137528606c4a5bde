//go:build unix

package daemon

import (
	"fmt"
	"os"
	"syscall"
)

// run replaces the current process image with the daemon.
func run(path, binary, configPath string) error {
	argv := []string{binary, "-c", configPath}
	if err := syscall.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("could not exec %s: %w", binary, err)
	}
	return nil // unreachable: Exec does not return on success
}
