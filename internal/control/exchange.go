package control

import (
	"io"
	"strings"

	ncerr "relayctl/internal/errors"
)

// protocolTag prefixes every request line so the daemon can reject
// stray connections from non-control clients early.
const protocolTag = "RCTL1"

// readBufSize bounds the relay buffer.  The response streams through it
// chunk by chunk, so memory stays constant regardless of response size.
const readBufSize = 1024

// RequestLine builds the single-line wire request for a command.
func RequestLine(command string, args []string) string {
	parts := append([]string{protocolTag, command}, args...)
	return strings.Join(parts, " ") + "\n"
}

// Exchange sends the command as one logical write, then relays the
// response to out as it arrives until the peer closes the session.
//
// The engine is a transparent relay: no parsing, no buffering of the
// whole response.  A clean close by the peer ends the exchange
// successfully; every other failure, on either the session or the
// output sink, is terminal.
func Exchange(conn io.ReadWriter, out io.Writer, command string, args []string) error {
	if _, err := io.WriteString(conn, RequestLine(command, args)); err != nil {
		return ncerr.WrapIO("write", err)
	}

	buf := make([]byte, readBufSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return ncerr.WrapIO("write", werr)
			}
		}
		if ncerr.Is(err, io.EOF) {
			// Peer closed the session cleanly: end of response.
			return nil
		}
		if err != nil {
			return ncerr.WrapIO("read", err)
		}
	}
}
