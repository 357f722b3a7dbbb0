// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

//go:build whiptls_noecdh

package security_test

import (
	"crypto/tls"
	"testing"

	"github.com/technicianted/whiptls/pkg/security"

	"github.com/stretchr/testify/require"
)

func TestStandardLibraryWithoutECDH(t *testing.T) {
	logger, hook := newTestLogger(t)

	require.False(t, security.StandardLibrary{}.SupportsECDH())

	config := &tls.Config{}
	o := newServerOptions(t, "", "dh=prime256v1:/etc/dh.pem")
	err := o.UpdateContextEecdh(&security.TLSContext{Config: config}, security.StandardLibrary{}, logger)
	require.ErrorIs(t, err, security.ErrEECDHUnavailable)
	require.Nil(t, config.CurvePreferences)
	requireLoggedError(t, hook, "not available")
}

func TestNewServerContextWithoutECDHDegrades(t *testing.T) {
	logger, _ := newTestLogger(t)
	certs := newTestCertificates(t)

	o := newServerOptions(t, "", "cert="+certs.CertPath, "key="+certs.KeyPath, "dh=secp384r1:")
	config, err := security.NewServerContext(o, security.StandardLibrary{}, logger)
	require.NoError(t, err)
	require.Nil(t, config.CurvePreferences)
}
