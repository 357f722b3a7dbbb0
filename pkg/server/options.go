// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package server

import "github.com/technicianted/whiptls/pkg/security"

// ServerOptions is a set of whiptls server options.
type ServerOptions struct {
	// ListenAddress is the host:port to accept connections on.
	ListenAddress string
	// TLS are the parsed tls directives of the listener. Plain text is served
	// when transport encryption is not enabled.
	TLS *security.ServerOptions
	// Library is the crypto library used to apply EECDH settings. Defaults to
	// security.StandardLibrary.
	Library security.Library
}
