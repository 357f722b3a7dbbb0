// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package tests

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/technicianted/whiptls/pkg/logging"
	"github.com/technicianted/whiptls/pkg/security"
	"github.com/technicianted/whiptls/pkg/server"
	"github.com/technicianted/whiptls/pkg/tlsutils"

	"github.com/stretchr/testify/require"
)

const testResponse = "hello, world!"

var testSubject = pkix.Name{
	Organization: []string{"TechTed"},
	Country:      []string{"US"},
}

type ServerWrapper struct {
	Server *server.Server
	CAPool *x509.CertPool
}

func testHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testResponse)
	})
}

// CreateNewTLSServer starts a tls server configured with directives in
// addition to a freshly issued certificate.
func CreateNewTLSServer(t *testing.T, logger logging.TraceLogger, directives string) *ServerWrapper {
	return CreateNewTLSServerWithHandler(t, logger, directives, testHandler())
}

// CreateNewTLSServerWithHandler is CreateNewTLSServer serving handler.
func CreateNewTLSServerWithHandler(t *testing.T, logger logging.TraceLogger, directives string, handler http.Handler) *ServerWrapper {
	ca, err := tlsutils.NewSelfSignedCA(testSubject, time.Now().Add(1*time.Minute))
	require.NoError(t, err)
	certBytes, keyBytes, err := ca.CreateAndSignCertificate(
		tlsutils.NewServerCertificate(testSubject, []string{"127.0.0.1"}, time.Now().Add(1*time.Minute)))
	require.NoError(t, err)

	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certPath, certBytes, 0600))
	require.NoError(t, os.WriteFile(keyPath, keyBytes, 0600))

	opts := &security.ServerOptions{}
	line := fmt.Sprintf("tls tls-cert=%s tls-key=%s %s", certPath, keyPath, directives)
	require.NoError(t, security.ParseLine(opts, "tls-", line, logger))

	return startServer(t, logger, opts, ca.CACertPool(), handler)
}

// CreateNewServer starts a plain text server.
func CreateNewServer(t *testing.T, logger logging.TraceLogger) *ServerWrapper {
	return startServer(t, logger, &security.ServerOptions{}, nil, testHandler())
}

func startServer(t *testing.T, logger logging.TraceLogger, opts *security.ServerOptions, pool *x509.CertPool, handler http.Handler) *ServerWrapper {
	s := server.NewServer(server.ServerOptions{
		ListenAddress: "127.0.0.1:0",
		TLS:           opts,
	}, handler)
	require.NoError(t, s.Start(logger))
	t.Cleanup(func() {
		require.NoError(t, s.Stop(1*time.Second, logger))
	})

	return &ServerWrapper{
		Server: s,
		CAPool: pool,
	}
}
