// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

//go:build !whiptls_noecdh

package tests

import (
	"crypto/tls"
	"net/http"
	"testing"
	"time"

	"github.com/technicianted/whiptls/pkg/logging"

	"github.com/stretchr/testify/require"
)

func TestServerTLSEecdhCurve(t *testing.T) {
	logger := logging.NewTraceLogger(t.Name())

	s := CreateNewTLSServer(t, logger, "tls-dh=prime256v1:")

	client := &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{TLSClientConfig: &tls.Config{
			RootCAs:          s.CAPool,
			MinVersion:       tls.VersionTLS13,
			CurvePreferences: []tls.CurveID{tls.CurveP256},
		}},
	}
	require.Equal(t, testResponse, get(t, client, "https://"+s.Server.Addr().String()))

	mismatched := &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{TLSClientConfig: &tls.Config{
			RootCAs:          s.CAPool,
			MinVersion:       tls.VersionTLS13,
			CurvePreferences: []tls.CurveID{tls.CurveP384},
		}},
	}
	_, err := mismatched.Get("https://" + s.Server.Addr().String())
	require.Error(t, err)
}
