// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package security

import "errors"

var (
	// ErrUnknownDirective is returned when a token matches no known directive.
	ErrUnknownDirective = errors.New("unknown tls directive")
	// ErrInvalidDirective is returned when a known directive carries an unusable value.
	ErrInvalidDirective = errors.New("invalid tls directive value")

	// ErrEECDHUnavailable is returned when ephemeral ECDH support is not part of the build.
	ErrEECDHUnavailable = errors.New("EECDH is not available in this build")
	// ErrUnknownCurve is returned when an EECDH curve short name cannot be resolved.
	ErrUnknownCurve = errors.New("unknown EECDH curve")
	// ErrCurveParams is returned when ephemeral ECDH parameters cannot be created.
	ErrCurveParams = errors.New("unable to configure ephemeral ECDH")
	// ErrSetECDH is returned when a context rejects ephemeral ECDH parameters.
	ErrSetECDH = errors.New("unable to set ephemeral ECDH")

	// ErrTransportDisabled is returned when a server context is requested for
	// options that do not enable transport encryption.
	ErrTransportDisabled = errors.New("transport encryption is not enabled")
	// ErrInvalidDHParams is returned for unreadable or malformed DH parameter files.
	ErrInvalidDHParams = errors.New("invalid DH parameters")
)
