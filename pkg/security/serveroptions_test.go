// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/technicianted/whiptls/pkg/logging"
	"github.com/technicianted/whiptls/pkg/security/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (logging.TraceLogger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	return logger.WithField("subsystem", t.Name()), hook
}

func requireDH(t *testing.T, o *ServerOptions, dh, file, curve string) {
	t.Helper()
	require.Equal(t, dh, o.DH())
	require.Equal(t, file, o.DHParamsFile())
	require.Equal(t, curve, o.EECDHCurve())
}

func TestServerOptionsEmptyTokenEnablesTLS(t *testing.T) {
	logger, _ := newTestLogger(t)

	o := &ServerOptions{}
	require.NoError(t, o.Parse("dh=secp384r1:/etc/dhparams.pem", logger))
	require.False(t, o.EncryptTransport)

	require.NoError(t, o.Parse("", logger))
	require.True(t, o.EncryptTransport)
	requireDH(t, o, "secp384r1:/etc/dhparams.pem", "/etc/dhparams.pem", "secp384r1")
}

func TestServerOptionsDH(t *testing.T) {
	logger, _ := newTestLogger(t)

	testCases := []struct {
		token string
		dh    string
		file  string
		curve string
	}{
		{"dh=secp384r1:/etc/dhparams.pem", "secp384r1:/etc/dhparams.pem", "/etc/dhparams.pem", "secp384r1"},
		{"dh=/etc/dhparams.pem", "/etc/dhparams.pem", "/etc/dhparams.pem", ""},
		{"dh=", "", "", ""},
		{"dh=prime256v1:c:\\dh:params.pem", "prime256v1:c:\\dh:params.pem", "c:\\dh:params.pem", "prime256v1"},
		{"dh=prime256v1:", "prime256v1:", "", "prime256v1"},
		{"dh=:/a.pem", ":/a.pem", "/a.pem", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			o := &ServerOptions{}
			require.NoError(t, o.Parse("dh=X25519:/previous.pem", logger))
			require.NoError(t, o.Parse(tc.token, logger))
			requireDH(t, o, tc.dh, tc.file, tc.curve)
		})
	}
}

func TestServerOptionsDHClears(t *testing.T) {
	logger, _ := newTestLogger(t)

	o := &ServerOptions{}
	require.NoError(t, o.Parse("dh=secp384r1:/a.pem", logger))
	require.NoError(t, o.Parse("dh=", logger))
	requireDH(t, o, "", "", "")
}

func TestServerOptionsCurveIffColon(t *testing.T) {
	logger, _ := newTestLogger(t)
	r := rand.New(rand.NewSource(1))
	values := []string{"", "/a.pem", "prime256v1:/b.pem", "secp521r1:", "x:y:z"}

	for i := 0; i < 200; i++ {
		o := &ServerOptions{}
		for n := r.Intn(6); n > 0; n-- {
			value := values[r.Intn(len(values))]
			if r.Intn(2) == 0 {
				require.NoError(t, o.Parse("dhparams="+value, logger))
			} else {
				require.NoError(t, o.Parse("dh="+value, logger))
			}
		}
		value := values[r.Intn(len(values))]
		require.NoError(t, o.Parse("dh="+value, logger))
		hasColon := strings.Contains(value, ":")
		curveEmpty := o.EECDHCurve() == ""
		if hasColon {
			prefix, _, _ := strings.Cut(value, ":")
			require.Equal(t, prefix, o.EECDHCurve(), value)
		} else {
			require.True(t, curveEmpty, value)
		}
	}
}

func TestServerOptionsDHParamsIgnoredAfterCurve(t *testing.T) {
	logger, hook := newTestLogger(t)
	ignored := testutil.ToFloat64(metrics.Directives.WithLabelValues(metrics.DirectiveDHParams, metrics.ResultIgnored))

	o := &ServerOptions{}
	require.NoError(t, o.Parse("dh=secp384r1:/a.pem", logger))
	require.NoError(t, o.Parse("dhparams=/b.pem", logger))
	requireDH(t, o, "secp384r1:/a.pem", "/a.pem", "secp384r1")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Contains(t, entry.Message, "UPGRADE WARNING")
	require.Equal(t, ignored+1, testutil.ToFloat64(metrics.Directives.WithLabelValues(metrics.DirectiveDHParams, metrics.ResultIgnored)))
}

func TestServerOptionsDHParams(t *testing.T) {
	logger, hook := newTestLogger(t)

	o := &ServerOptions{}
	require.NoError(t, o.Parse("dhparams=/b.pem", logger))
	requireDH(t, o, "/b.pem", "/b.pem", "")

	// without a curve the legacy form replaces a previous dh= file
	require.NoError(t, o.Parse("dh=/a.pem", logger))
	require.NoError(t, o.Parse("dhparams=/c.pem", logger))
	requireDH(t, o, "/c.pem", "/c.pem", "")

	for _, entry := range hook.AllEntries() {
		require.NotEqual(t, logrus.WarnLevel, entry.Level)
	}
}

func TestServerOptionsDelegatesToPeerOptions(t *testing.T) {
	logger, _ := newTestLogger(t)

	o := &ServerOptions{}
	require.NoError(t, o.Parse("cert=/etc/cert.pem", logger))
	require.Equal(t, "/etc/cert.pem", o.CertFile)

	err := o.Parse("dhx=/etc/x.pem", logger)
	require.ErrorIs(t, err, ErrUnknownDirective)
	requireDH(t, o, "", "", "")
}

func TestServerOptionsDumpCfg(t *testing.T) {
	logger, _ := newTestLogger(t)

	o := &ServerOptions{}
	require.NoError(t, o.Parse("dh=prime256v1:/etc/dh.pem", logger))

	b := &strings.Builder{}
	require.NoError(t, o.DumpCfg(b, "tls-"))
	require.Equal(t, " tls-disable", b.String())

	require.NoError(t, o.Parse("", logger))
	require.NoError(t, o.Parse("cert=/etc/cert.pem", logger))
	b.Reset()
	require.NoError(t, o.DumpCfg(b, "tls-"))
	require.Equal(t, " tls tls-cert=/etc/cert.pem tls-dh=prime256v1:/etc/dh.pem", b.String())
	require.Equal(t, "tls tls-cert=/etc/cert.pem tls-dh=prime256v1:/etc/dh.pem", o.String())
}

func TestServerOptionsDumpCfgNormalizesDHParams(t *testing.T) {
	logger, _ := newTestLogger(t)

	o := &ServerOptions{}
	require.NoError(t, o.Parse("", logger))
	require.NoError(t, o.Parse("dhparams=/b.pem", logger))

	b := &strings.Builder{}
	require.NoError(t, o.DumpCfg(b, "ssl-"))
	require.Equal(t, " ssl ssl-dh=/b.pem", b.String())
}

func TestServerOptionsDumpCfgNoDH(t *testing.T) {
	logger, _ := newTestLogger(t)

	o := &ServerOptions{}
	require.NoError(t, o.Parse("", logger))
	require.NoError(t, o.Parse("dh=", logger))

	b := &strings.Builder{}
	require.NoError(t, o.DumpCfg(b, "tls-"))
	require.Equal(t, " tls", b.String())
}

func TestServerOptionsRoundTrip(t *testing.T) {
	logger, _ := newTestLogger(t)

	for _, token := range []string{
		"dh=secp384r1:/etc/dhparams.pem",
		"dh=/etc/dhparams.pem",
		"dh=",
		"dh=a:b:c",
		"dh=prime256v1:/etc/dh#2.pem",
	} {
		t.Run(token, func(t *testing.T) {
			o := &ServerOptions{}
			require.NoError(t, o.Parse("", logger))
			require.NoError(t, o.Parse("min-version=1.2", logger))
			require.NoError(t, o.Parse(token, logger))

			b := &strings.Builder{}
			require.NoError(t, o.DumpCfg(b, "tls-"))

			reparsed := &ServerOptions{}
			require.NoError(t, ParseLine(reparsed, "tls-", b.String(), logger))
			require.Equal(t, o, reparsed)
		})
	}
}

func TestServerOptionsClone(t *testing.T) {
	logger, _ := newTestLogger(t)

	o := &ServerOptions{}
	require.NoError(t, o.Parse("", logger))
	require.NoError(t, o.Parse("cipher=TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256", logger))
	require.NoError(t, o.Parse("dh=prime256v1:/etc/dh.pem", logger))

	c := o.Clone()
	require.Equal(t, o, c)

	c.Ciphers[0] = "changed"
	require.NoError(t, c.Parse("dh=", logger))
	require.Equal(t, "TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256", o.Ciphers[0])
	requireDH(t, o, "prime256v1:/etc/dh.pem", "/etc/dh.pem", "prime256v1")
}
