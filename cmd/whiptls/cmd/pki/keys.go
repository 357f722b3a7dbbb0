// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package pki

import (
	"fmt"
	"os"

	"github.com/technicianted/whiptls/pkg/security"
)

// writeKeyPair writes the pem key and certificate. keyPEM is erased before
// returning on every path so callers can exit right after an error.
func writeKeyPair(keyPath string, keyPEM []byte, certPath string, certPEM []byte) error {
	defer security.ZeroSensitiveMemory(keyPEM)

	if err := os.WriteFile(keyPath, keyPEM, 0600); err != nil {
		return fmt.Errorf("failed to write key: %v", err)
	}
	if err := os.WriteFile(certPath, certPEM, 0644); err != nil {
		return fmt.Errorf("failed to write cert: %v", err)
	}
	return nil
}
