// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package security

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/technicianted/whiptls/pkg/security Library,CurveParams,Context

// CurveID identifies an elliptic curve within a Library.
type CurveID uint16

// Library is the cryptographic library used to resolve and allocate ephemeral
// ECDH parameters. It is passed explicitly to the operations that need it so
// no process-wide library state is consulted.
type Library interface {
	// SupportsECDH reports whether ephemeral ECDH is available in this build.
	SupportsECDH() bool
	// CurveByShortName resolves a curve short name such as "prime256v1".
	CurveByShortName(name string) (CurveID, bool)
	// NewCurveParams allocates key exchange parameters for curve. Callers own
	// the returned value and must Release it.
	NewCurveParams(curve CurveID) (CurveParams, error)
}

// CurveParams are allocated ephemeral ECDH key exchange parameters.
type CurveParams interface {
	CurveID() CurveID
	Release()
}

// Context is a constructed server TLS context.
type Context interface {
	// SetTmpECDH installs params as the context ephemeral ECDH parameters.
	// The context does not take ownership of params.
	SetTmpECDH(params CurveParams) error
}
