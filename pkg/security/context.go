// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/technicianted/whiptls/pkg/logging"
)

// NewServerContext builds a server tls config from opts. EECDH failures are
// logged and leave the config with the crypto/tls default curves; every other
// failure is returned.
func NewServerContext(opts *ServerOptions, lib Library, logger logging.TraceLogger) (*tls.Config, error) {
	if !opts.EncryptTransport {
		return nil, ErrTransportDisabled
	}

	cert, err := loadKeyPair(opts.CertFile, opts.KeyFile)
	if err != nil {
		return nil, err
	}

	config := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   opts.TLSMinVersion(),
		CipherSuites: opts.CipherSuiteIDs(),
	}

	if opts.CAFile != "" {
		caCertPool := x509.NewCertPool()
		caCertBytes, err := os.ReadFile(opts.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load ca certificate file: %v", err)
		}
		if !caCertPool.AppendCertsFromPEM(caCertBytes) {
			return nil, fmt.Errorf("failed to load ca certificate from %s", opts.CAFile)
		}
		config.ClientCAs = caCertPool
		config.ClientAuth = tls.VerifyClientCertIfGiven
	}

	if opts.DHParamsFile() != "" {
		params, err := LoadDHParams(opts.DHParamsFile(), logger)
		if err != nil {
			return nil, err
		}
		logger.Infof("loaded %d bit DH parameters from %s, finite field DHE is not negotiated by this tls stack",
			params.P.BitLen(), opts.DHParamsFile())
	}

	if err := opts.UpdateContextEecdh(&TLSContext{Config: config}, lib, logger); err != nil {
		logger.Warnf("continuing without ephemeral ECDH curve restriction")
	}

	return config, nil
}

func loadKeyPair(certPath, keyPath string) (tls.Certificate, error) {
	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to load certificate at %s: %v", certPath, err)
	}
	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to load key at %s: %v", keyPath, err)
	}
	defer ZeroSensitiveMemory(keyPEM)

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to load certificate at %s, %s: %v", certPath, keyPath, err)
	}
	return cert, nil
}
