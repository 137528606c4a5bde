package control

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"
	"testing"

	ncerr "relayctl/internal/errors"
)

func TestRequestLine(t *testing.T) {
	tests := []struct {
		command string
		args    []string
		want    string
	}{
		{"status", nil, "RCTL1 status\n"},
		{"reload", []string{}, "RCTL1 reload\n"},
		{"flush", []string{"zone", "example.com"}, "RCTL1 flush zone example.com\n"},
	}
	for _, tt := range tests {
		if got := RequestLine(tt.command, tt.args); got != tt.want {
			t.Errorf("RequestLine(%q, %v) = %q, want %q", tt.command, tt.args, got, tt.want)
		}
	}
}

func TestExchange_RoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	go func() {
		defer server.Close()
		line, err := bufio.NewReader(server).ReadString('\n')
		if err != nil || line != "RCTL1 status\n" {
			return
		}
		server.Write([]byte("OK\n"))
	}()

	var out bytes.Buffer
	if err := Exchange(client, &out, "status", nil); err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if got := out.String(); got != "OK\n" {
		t.Errorf("output = %q, want %q", got, "OK\n")
	}
}

func TestExchange_Streaming(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	var want bytes.Buffer
	go func() {
		defer server.Close()
		r := bufio.NewReader(server)
		if _, err := r.ReadString('\n'); err != nil {
			return
		}
		for i := 0; i < 100; i++ {
			server.Write([]byte(fmt.Sprintf("chunk-%03d;", i)))
		}
	}()
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&want, "chunk-%03d;", i)
	}

	var out bytes.Buffer
	if err := Exchange(client, &out, "dump", nil); err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if out.String() != want.String() {
		t.Errorf("streamed output lost or reordered:\ngot  %q\nwant %q",
			out.String(), want.String())
	}
}

func TestExchange_WriteFailure(t *testing.T) {
	conn := &faultConn{writeErr: fmt.Errorf("broken pipe")}

	err := Exchange(conn, io.Discard, "status", nil)
	if err == nil {
		t.Fatal("expected write error")
	}
	var ioe *ncerr.IOError
	if !ncerr.As(err, &ioe) || ioe.Op != "write" {
		t.Fatalf("want IOError{write}, got %v", err)
	}
}

func TestExchange_AbnormalRead(t *testing.T) {
	conn := &faultConn{readErr: fmt.Errorf("connection reset by peer")}

	err := Exchange(conn, io.Discard, "status", nil)
	if err == nil {
		t.Fatal("expected read error")
	}
	var ioe *ncerr.IOError
	if !ncerr.As(err, &ioe) || ioe.Op != "read" {
		t.Fatalf("want IOError{read}, got %v", err)
	}
}

func TestExchange_OutputSinkFailure(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	go func() {
		defer server.Close()
		r := bufio.NewReader(server)
		if _, err := r.ReadString('\n'); err != nil {
			return
		}
		server.Write([]byte("data the sink refuses\n"))
	}()

	err := Exchange(client, &failWriter{}, "status", nil)
	if err == nil {
		t.Fatal("expected sink write error")
	}
	var ioe *ncerr.IOError
	if !ncerr.As(err, &ioe) || ioe.Op != "write" {
		t.Fatalf("want IOError{write}, got %v", err)
	}
}

// ── test doubles ─────────────────────────────────────────────────────

// faultConn fails writes and/or reads with configured errors.  A nil
// readErr reports clean EOF.
type faultConn struct {
	writeErr error
	readErr  error
}

func (c *faultConn) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	return len(p), nil
}

func (c *faultConn) Read(p []byte) (int, error) {
	if c.readErr != nil {
		return 0, c.readErr
	}
	return 0, io.EOF
}

type failWriter struct{}

func (w *failWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("sink closed")
}
