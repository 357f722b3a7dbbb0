// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package tests

import (
	"crypto/tls"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/technicianted/whiptls/pkg/logging"
	"github.com/technicianted/whiptls/pkg/server/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func requireActiveConnectionsAroundRequest(t *testing.T, s *ServerWrapper, transport, url string, httpTransport *http.Transport) {
	port := strconv.Itoa(s.Server.Addr().(*net.TCPAddr).Port)
	active := metrics.ActiveConnections.WithLabelValues(transport, port)
	accepted := metrics.AcceptedConnections.WithLabelValues(transport, port)
	require.Equal(t, 0.0, testutil.ToFloat64(active))

	client := &http.Client{Timeout: 5 * time.Second, Transport: httpTransport}
	require.Equal(t, testResponse, get(t, client, url))

	// the keep-alive connection stays open until the client drops it
	require.Equal(t, 1.0, testutil.ToFloat64(active))
	require.Equal(t, 1.0, testutil.ToFloat64(accepted))

	httpTransport.CloseIdleConnections()
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(active) == 0
	}, 5*time.Second, 10*time.Millisecond)
	require.Equal(t, 1.0, testutil.ToFloat64(accepted))
}

func TestServerActiveConnectionsTLS(t *testing.T) {
	logger := logging.NewTraceLogger(t.Name())

	s := CreateNewTLSServer(t, logger, "")
	requireActiveConnectionsAroundRequest(t, s, metrics.TransportTLS,
		"https://"+s.Server.Addr().String(),
		&http.Transport{TLSClientConfig: &tls.Config{RootCAs: s.CAPool}})
}

func TestServerActiveConnectionsPlainText(t *testing.T) {
	logger := logging.NewTraceLogger(t.Name())

	s := CreateNewServer(t, logger)
	requireActiveConnectionsAroundRequest(t, s, metrics.TransportPlain,
		"http://"+s.Server.Addr().String(),
		&http.Transport{})
}

func TestServerRequestSeesTLSState(t *testing.T) {
	logger := logging.NewTraceLogger(t.Name())

	states := make(chan *tls.ConnectionState, 1)
	s := CreateNewTLSServerWithHandler(t, logger, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		states <- r.TLS
		w.Write([]byte(testResponse))
	}))
	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{TLSClientConfig: &tls.Config{RootCAs: s.CAPool}},
	}
	require.Equal(t, testResponse, get(t, client, "https://"+s.Server.Addr().String()))
	state := <-states
	require.NotNil(t, state)
	require.True(t, state.HandshakeComplete)
}
