package control

// certtest_test.go - throwaway PKI for the mTLS tests.
//
// The trust layout mirrors a real deployment: the daemon's certificate
// is self-signed and acts as its own issuer, and the control (client)
// certificate is signed by the daemon's key.  Each side trusts exactly
// the other's issuer and nothing else.

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"relayctl/config"
)

// testPKI holds one daemon identity plus a matching client identity,
// written out as PEM files the way LoadIdentity expects them.
type testPKI struct {
	RC         config.RemoteControl // file paths for LoadIdentity
	ServerCert tls.Certificate      // the daemon's serving identity
	ServerPool *x509.CertPool       // trust anchor for client verification
}

func newTestPKI(t *testing.T) *testPKI {
	t.Helper()
	dir := t.TempDir()

	serverKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	serverTmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "relayd"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1")},
	}
	serverDER, err := x509.CreateCertificate(rand.Reader, serverTmpl, serverTmpl,
		&serverKey.PublicKey, serverKey)
	if err != nil {
		t.Fatal(err)
	}
	serverCert, err := x509.ParseCertificate(serverDER)
	if err != nil {
		t.Fatal(err)
	}

	clientKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	clientTmpl := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{CommonName: "relayctl"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	clientDER, err := x509.CreateCertificate(rand.Reader, clientTmpl, serverCert,
		&clientKey.PublicKey, serverKey)
	if err != nil {
		t.Fatal(err)
	}

	rc := config.RemoteControl{
		Enabled:         true,
		Port:            config.DefaultControlPort,
		ServerCertFile:  filepath.Join(dir, "server.pem"),
		ControlKeyFile:  filepath.Join(dir, "control.key"),
		ControlCertFile: filepath.Join(dir, "control.pem"),
	}
	writePEM(t, rc.ServerCertFile, "CERTIFICATE", serverDER)
	writePEM(t, rc.ControlCertFile, "CERTIFICATE", clientDER)
	writeKeyPEM(t, rc.ControlKeyFile, clientKey)

	pool := x509.NewCertPool()
	pool.AddCert(serverCert)

	return &testPKI{
		RC: rc,
		ServerCert: tls.Certificate{
			Certificate: [][]byte{serverDER},
			PrivateKey:  serverKey,
		},
		ServerPool: pool,
	}
}

// serverTLSConfig is the daemon side of the mutual handshake.
func (p *testPKI) serverTLSConfig() *tls.Config {
	return &tls.Config{
		Certificates: []tls.Certificate{p.ServerCert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    p.ServerPool,
		MinVersion:   tls.VersionTLS12,
	}
}

// rogueTLSConfig is a server identity the client has never heard of.
// It requests no client certificate so the raw handshake completes and
// the failure has to come from the client's own verification step.
func rogueTLSConfig(t *testing.T) *tls.Config {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(99),
		Subject:               pkix.Name{CommonName: "rogue"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatal(err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{{Certificate: [][]byte{der}, PrivateKey: key}},
		MinVersion:   tls.VersionTLS12,
	}
}

// ── PEM helpers ──────────────────────────────────────────────────────

func writePEM(t *testing.T, path, blockType string, der []byte) {
	t.Helper()
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
}

func writeKeyPEM(t *testing.T, path string, key *ecdsa.PrivateKey) {
	t.Helper()
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatal(err)
	}
	writePEM(t, path, "EC PRIVATE KEY", der)
}
