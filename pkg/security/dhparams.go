// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"

	"github.com/technicianted/whiptls/pkg/logging"
)

const (
	dhParamsPEMType = "DH PARAMETERS"
	minDHPrimeBits  = 2048
)

// DHParams are PKCS#3 Diffie-Hellman parameters.
type DHParams struct {
	P *big.Int
	G *big.Int
	// PrivateValueLength is the optional private value length in bits.
	PrivateValueLength int
}

type pkcs3DHParams struct {
	P                  *big.Int
	G                  *big.Int
	PrivateValueLength int `asn1:"optional"`
}

// LoadDHParams reads pem encoded DH parameters from path.
func LoadDHParams(path string, logger logging.TraceLogger) (*DHParams, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidDHParams, path, err)
	}
	params, err := ParseDHParams(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if bits := params.P.BitLen(); bits < minDHPrimeBits {
		logger.Warnf("DH parameters in %s use a weak %d bit prime", path, bits)
	}
	return params, nil
}

// ParseDHParams decodes the first DH PARAMETERS pem block of pemBytes.
func ParseDHParams(pemBytes []byte) (*DHParams, error) {
	for {
		var block *pem.Block
		block, pemBytes = pem.Decode(pemBytes)
		if block == nil {
			return nil, fmt.Errorf("%w: no %s pem block", ErrInvalidDHParams, dhParamsPEMType)
		}
		if block.Type != dhParamsPEMType {
			continue
		}

		var raw pkcs3DHParams
		rest, err := asn1.Unmarshal(block.Bytes, &raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDHParams, err)
		}
		if len(rest) != 0 {
			return nil, fmt.Errorf("%w: trailing data after parameters", ErrInvalidDHParams)
		}
		params := &DHParams{P: raw.P, G: raw.G, PrivateValueLength: raw.PrivateValueLength}
		if err := params.validate(); err != nil {
			return nil, err
		}
		return params, nil
	}
}

func (p *DHParams) validate() error {
	two := big.NewInt(2)
	if p.P == nil || p.P.Cmp(two) <= 0 || p.P.Bit(0) == 0 {
		return fmt.Errorf("%w: prime must be odd and greater than 2", ErrInvalidDHParams)
	}
	pMinusOne := new(big.Int).Sub(p.P, big.NewInt(1))
	if p.G == nil || p.G.Cmp(big.NewInt(1)) <= 0 || p.G.Cmp(pMinusOne) >= 0 {
		return fmt.Errorf("%w: generator out of range", ErrInvalidDHParams)
	}
	return nil
}
