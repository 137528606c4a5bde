// Package daemon handles the one command that bypasses the control
// channel entirely: start, which launches the daemon itself.
package daemon

import (
	"fmt"
	"os/exec"
)

// Start launches the daemon binary with the given config file.  On unix
// this replaces the client process image and does not return on
// success; elsewhere it runs the daemon as a child and waits.
func Start(binary, configPath string) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("could not find %s: %w", binary, err)
	}
	return run(path, binary, configPath)
}
