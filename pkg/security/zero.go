// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"runtime"
	"unsafe"
)

// zeroFill is only ever called through this variable. The compiler cannot
// resolve the target statically, so it can neither inline the fill nor prove
// it free of side effects and drop the stores.
var zeroFill = fillZero

//go:noinline
func fillZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroSensitiveMemory overwrites b with zeros for secret material such as keys
// and passwords that are about to be released or reused. The erase is never
// elided by the optimizer, even when b is not read again. Empty and nil slices
// are left untouched.
//
// The garbage collector may already have copied b elsewhere; only the memory
// behind b is erased.
func ZeroSensitiveMemory(b []byte) {
	if len(b) == 0 {
		return
	}
	zeroFill(b)
	runtime.KeepAlive(b)
}

// ZeroSensitiveRegion erases n bytes starting at p. It is a no-op when p is
// nil or n is zero.
func ZeroSensitiveRegion(p unsafe.Pointer, n uintptr) {
	if p == nil || n == 0 {
		return
	}
	ZeroSensitiveMemory(unsafe.Slice((*byte)(p), n))
}
