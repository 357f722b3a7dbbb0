// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package tlsutils

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"time"

	"github.com/technicianted/whiptls/pkg/security"
)

const (
	certificatePEMType = "CERTIFICATE"
	ecKeyPEMType       = "EC PRIVATE KEY"
)

// SelfSignedCA is an ECDSA P-256 certificate authority.
type SelfSignedCA struct {
	privateKey       *ecdsa.PrivateKey
	certificateBytes []byte
	ca               *x509.Certificate
}

func NewSelfSignedCA(subject pkix.Name, validTo time.Time) (*SelfSignedCA, error) {
	ca := &x509.Certificate{
		SerialNumber:          big.NewInt(time.Now().UnixMicro()),
		Subject:               subject,
		NotBefore:             time.Now(),
		NotAfter:              validTo,
		IsCA:                  true,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}

	caPrivKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create private key: %v", err)
	}
	caBytes, err := x509.CreateCertificate(rand.Reader, ca, ca, &caPrivKey.PublicKey, caPrivKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate: %v", err)
	}
	// keep the parsed form so issued certificates carry the CA subject key id
	parsed, err := x509.ParseCertificate(caBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %v", err)
	}

	return &SelfSignedCA{
		privateKey:       caPrivKey,
		ca:               parsed,
		certificateBytes: caBytes,
	}, nil
}

func NewCAFromFiles(keyPath, certPath string) (*SelfSignedCA, error) {
	keyBytes, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, err
	}
	defer security.ZeroSensitiveMemory(keyBytes)
	keyPem, _ := pem.Decode(keyBytes)
	if keyPem == nil {
		return nil, fmt.Errorf("invalid key pem")
	}
	if keyPem.Type != ecKeyPEMType {
		return nil, fmt.Errorf("invalid key type: %s", keyPem.Type)
	}
	key, err := x509.ParseECPrivateKey(keyPem.Bytes)
	security.ZeroSensitiveMemory(keyPem.Bytes)
	if err != nil {
		return nil, err
	}

	certBytes, err := os.ReadFile(certPath)
	if err != nil {
		return nil, err
	}
	certPem, _ := pem.Decode(certBytes)
	if certPem == nil {
		return nil, fmt.Errorf("invalid cert pem")
	}
	if certPem.Type != certificatePEMType {
		return nil, fmt.Errorf("invalid cert type: %s", certPem.Type)
	}
	cert, err := x509.ParseCertificate(certPem.Bytes)
	if err != nil {
		return nil, err
	}

	return &SelfSignedCA{
		privateKey:       key,
		ca:               cert,
		certificateBytes: certPem.Bytes,
	}, nil
}

func (ca *SelfSignedCA) CACertBytes() []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  certificatePEMType,
		Bytes: ca.certificateBytes,
	})
}

func (ca *SelfSignedCA) CAKeyBytes() ([]byte, error) {
	return encodeKey(ca.privateKey)
}

// CACertPool returns a pool holding only the CA certificate.
func (ca *SelfSignedCA) CACertPool() *x509.CertPool {
	pool := x509.NewCertPool()
	pool.AddCert(ca.ca)
	return pool
}

func (ca *SelfSignedCA) CreateAndSignCertificate(cert *x509.Certificate) (certPEMBytes, keyPEMBytes []byte, err error) {
	certPrivKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create private key: %v", err)
	}
	certBytes, err := x509.CreateCertificate(rand.Reader, cert, ca.ca, &certPrivKey.PublicKey, ca.privateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create certificate: %v", err)
	}

	keyPEMBytes, err = encodeKey(certPrivKey)
	if err != nil {
		return nil, nil, err
	}
	certPEMBytes = pem.EncodeToMemory(&pem.Block{
		Type:  certificatePEMType,
		Bytes: certBytes,
	})

	return certPEMBytes, keyPEMBytes, nil
}

// NewServerCertificate returns a leaf template for a server reachable at hosts,
// which may be ip addresses or dns names.
func NewServerCertificate(subject pkix.Name, hosts []string, validTo time.Time) *x509.Certificate {
	cert := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      subject,
		NotBefore:    time.Now().Add(-1 * time.Minute),
		NotAfter:     validTo,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	for _, host := range hosts {
		if ip := net.ParseIP(host); ip != nil {
			cert.IPAddresses = append(cert.IPAddresses, ip)
		} else {
			cert.DNSNames = append(cert.DNSNames, host)
		}
	}
	return cert
}

func encodeKey(key *ecdsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %v", err)
	}
	defer security.ZeroSensitiveMemory(der)

	return pem.EncodeToMemory(&pem.Block{
		Type:  ecKeyPEMType,
		Bytes: der,
	}), nil
}
