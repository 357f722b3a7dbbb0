// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

//go:build whiptls_noecdh

package security

const ecdhAvailable = false
