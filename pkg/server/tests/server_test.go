// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package tests

import (
	"crypto/tls"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/technicianted/whiptls/pkg/logging"

	"github.com/stretchr/testify/require"
)

func get(t *testing.T, client *http.Client, url string) string {
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestServerPlainText(t *testing.T) {
	logger := logging.NewTraceLogger(t.Name())

	s := CreateNewServer(t, logger)
	client := &http.Client{Timeout: 5 * time.Second}
	require.Equal(t, testResponse, get(t, client, "http://"+s.Server.Addr().String()))
}

func TestServerTLSWithoutEecdh(t *testing.T) {
	logger := logging.NewTraceLogger(t.Name())

	s := CreateNewTLSServer(t, logger, "tls-min-version=1.2")

	for _, curve := range []tls.CurveID{tls.CurveP256, tls.CurveP384, tls.X25519} {
		client := &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{TLSClientConfig: &tls.Config{
				RootCAs:          s.CAPool,
				CurvePreferences: []tls.CurveID{curve},
			}},
		}
		require.Equal(t, testResponse, get(t, client, "https://"+s.Server.Addr().String()))
	}
}
