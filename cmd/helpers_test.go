package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// writeMinimalConfig writes a valid config file pointing at nothing in
// particular and returns its path.
func writeMinimalConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "relayd.conf")
	data := []byte(`remote-control:
  enabled: true
  port: 8770
  interfaces: ["127.0.0.1"]
`)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}
