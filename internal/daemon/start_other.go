//go:build !unix

package daemon

import (
	"fmt"
	"os"
	"os/exec"
)

// run starts the daemon as a child process with inherited stdio.  There
// is no exec(2) here, so the closest equivalent is to wait and mirror
// the daemon's exit.
func run(path, binary, configPath string) error {
	cmd := exec.Command(path, "-c", configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("could not run %s: %w", binary, err)
	}
	return nil
}
