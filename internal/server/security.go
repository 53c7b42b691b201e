package server

import (
	"crypto/tls"
	"fmt"
	"net"
)

// TLSListener opens TLS-wrapped listeners using a certificate and key
// loaded from disk at listen time.
type TLSListener struct {
	certFile string
	keyFile  string
}

// NewTLSListener creates a TLSListener that reads the given certificate
// and private key files.
func NewTLSListener(certFile, keyFile string) *TLSListener {
	return &TLSListener{
		certFile: certFile,
		keyFile:  keyFile,
	}
}

// Listen loads the key pair and opens a TLS listener on addr.
func (l *TLSListener) Listen(network, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFile, l.keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}
	return tls.Listen(network, addr, tlsConfig)
}

// PlainListener opens unencrypted listeners.
type PlainListener struct{}

// NewPlainListener creates a PlainListener.
func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

// Listen opens a plain listener on addr.
func (l *PlainListener) Listen(network, addr string) (net.Listener, error) {
	return net.Listen(network, addr)
}
