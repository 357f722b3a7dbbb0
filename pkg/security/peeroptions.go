// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"crypto/tls"
	"fmt"
	"io"
	"strings"

	"github.com/technicianted/whiptls/pkg/logging"
	"github.com/technicianted/whiptls/pkg/security/metrics"
)

var tlsVersions = map[string]uint16{
	"1.0": tls.VersionTLS10,
	"1.1": tls.VersionTLS11,
	"1.2": tls.VersionTLS12,
	"1.3": tls.VersionTLS13,
}

// PeerOptions are the tls options shared by every tls endpoint.
type PeerOptions struct {
	// EncryptTransport enables tls on the endpoint.
	EncryptTransport bool
	// CertFile is the path to the pem certificate chain.
	CertFile string
	// KeyFile is the path to the pem private key.
	KeyFile string
	// CAFile is the path to pem ca certificates used to verify peers.
	CAFile string
	// MinVersion is the minimum tls version, one of 1.0, 1.1, 1.2 or 1.3.
	MinVersion string
	// Ciphers are the allowed cipher suite names.
	Ciphers []string
}

// Parse consumes a single directive token with its prefix already removed.
func (o *PeerOptions) Parse(token string, logger logging.TraceLogger) error {
	name, value, hasValue := strings.Cut(token, "=")
	if !hasValue {
		if token == "disable" {
			o.EncryptTransport = false
			metrics.Directives.WithLabelValues(metrics.DirectivePeer, metrics.ResultAccepted).Inc()
			return nil
		}
		metrics.Directives.WithLabelValues(metrics.DirectivePeer, metrics.ResultRejected).Inc()
		return fmt.Errorf("%w: %q", ErrUnknownDirective, token)
	}

	var err error
	switch name {
	case "cert":
		o.CertFile = value
	case "key":
		o.KeyFile = value
	case "cafile":
		o.CAFile = value
	case "min-version":
		if _, ok := tlsVersions[value]; !ok {
			err = fmt.Errorf("%w: min-version=%s", ErrInvalidDirective, value)
			break
		}
		o.MinVersion = value
	case "cipher":
		var ciphers []string
		ciphers, err = parseCiphers(value)
		if err == nil {
			o.Ciphers = ciphers
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownDirective, token)
	}
	if err != nil {
		metrics.Directives.WithLabelValues(metrics.DirectivePeer, metrics.ResultRejected).Inc()
		return err
	}

	logger.Tracef("parsed tls option %s", name)
	metrics.Directives.WithLabelValues(metrics.DirectivePeer, metrics.ResultAccepted).Inc()
	return nil
}

// DumpCfg writes the options as space separated directives named with prefix.
func (o *PeerOptions) DumpCfg(w io.Writer, prefix string) error {
	if !o.EncryptTransport {
		_, err := fmt.Fprintf(w, " %sdisable", prefix)
		return err
	}

	if _, err := fmt.Fprintf(w, " %s", bareDirective(prefix)); err != nil {
		return err
	}
	values := []struct{ name, value string }{
		{"cert", o.CertFile},
		{"key", o.KeyFile},
		{"cafile", o.CAFile},
		{"min-version", o.MinVersion},
		{"cipher", strings.Join(o.Ciphers, ":")},
	}
	for _, v := range values {
		if v.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, " %s%s=%s", prefix, v.name, v.value); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of o.
func (o *PeerOptions) Clone() PeerOptions {
	c := *o
	if o.Ciphers != nil {
		c.Ciphers = append([]string(nil), o.Ciphers...)
	}
	return c
}

// TLSMinVersion returns the crypto/tls version for MinVersion, or 0 if unset.
func (o *PeerOptions) TLSMinVersion() uint16 {
	return tlsVersions[o.MinVersion]
}

// CipherSuiteIDs resolves Ciphers to crypto/tls identifiers.
func (o *PeerOptions) CipherSuiteIDs() []uint16 {
	if len(o.Ciphers) == 0 {
		return nil
	}
	ids := make([]uint16, 0, len(o.Ciphers))
	for _, name := range o.Ciphers {
		if id, ok := cipherSuiteID(name); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// bareDirective is the directive that only enables tls, e.g. "tls" for "tls-".
func bareDirective(prefix string) string {
	return strings.TrimSuffix(prefix, "-")
}

func parseCiphers(value string) ([]string, error) {
	if value == "" {
		return nil, nil
	}
	names := strings.Split(value, ":")
	for _, name := range names {
		if _, ok := cipherSuiteID(name); !ok {
			return nil, fmt.Errorf("%w: unknown cipher %s", ErrInvalidDirective, name)
		}
	}
	return names, nil
}

func cipherSuiteID(name string) (uint16, bool) {
	for _, suites := range [][]*tls.CipherSuite{tls.CipherSuites(), tls.InsecureCipherSuites()} {
		for _, s := range suites {
			if s.Name == name {
				return s.ID, true
			}
		}
	}
	return 0, false
}
