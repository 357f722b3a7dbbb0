// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"crypto/ecdh"
	"crypto/rand"
	"crypto/tls"
	"fmt"
)

var _ Library = StandardLibrary{}
var _ Context = &TLSContext{}

type stdCurve struct {
	id    tls.CurveID
	curve ecdh.Curve
}

// curves maps OpenSSL curve short names to the curves crypto/tls negotiates.
var curves = map[string]stdCurve{
	"prime256v1": {id: tls.CurveP256, curve: ecdh.P256()},
	"secp384r1":  {id: tls.CurveP384, curve: ecdh.P384()},
	"secp521r1":  {id: tls.CurveP521, curve: ecdh.P521()},
	"X25519":     {id: tls.X25519, curve: ecdh.X25519()},
}

// StandardLibrary implements Library on top of crypto/tls and crypto/ecdh.
type StandardLibrary struct{}

// SupportsECDH reports whether the build carries ephemeral ECDH support.
func (StandardLibrary) SupportsECDH() bool {
	return ecdhAvailable
}

// CurveByShortName resolves name to its crypto/tls curve identifier.
func (StandardLibrary) CurveByShortName(name string) (CurveID, bool) {
	c, ok := curves[name]
	if !ok {
		return 0, false
	}
	return CurveID(c.id), true
}

// NewCurveParams allocates parameters for curve. A throwaway ephemeral key is
// generated so a curve the runtime cannot operate on is reported here rather
// than on the first handshake.
func (StandardLibrary) NewCurveParams(curve CurveID) (CurveParams, error) {
	for _, c := range curves {
		if CurveID(c.id) != curve {
			continue
		}
		key, err := c.curve.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to generate ephemeral key for curve %d: %v", curve, err)
		}
		return &stdCurveParams{id: curve, key: key}, nil
	}
	return nil, fmt.Errorf("curve %d has no ecdh implementation", curve)
}

type stdCurveParams struct {
	id  CurveID
	key *ecdh.PrivateKey
}

func (p *stdCurveParams) CurveID() CurveID {
	return p.id
}

func (p *stdCurveParams) Release() {
	p.key = nil
}

// TLSContext adapts a *tls.Config to Context.
type TLSContext struct {
	Config *tls.Config
}

// SetTmpECDH restricts the config key exchange to the curve of params.
func (c *TLSContext) SetTmpECDH(params CurveParams) error {
	if c.Config == nil {
		return fmt.Errorf("tls context has no config")
	}
	if params == nil {
		return fmt.Errorf("nil ecdh parameters")
	}
	c.Config.CurvePreferences = []tls.CurveID{tls.CurveID(params.CurveID())}
	return nil
}
