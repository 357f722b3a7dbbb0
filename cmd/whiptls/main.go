// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package main

import (
	"fmt"
	"os"

	"github.com/technicianted/whiptls/cmd/whiptls/cmd"
	_ "github.com/technicianted/whiptls/cmd/whiptls/cmd/check"
	_ "github.com/technicianted/whiptls/cmd/whiptls/cmd/pki"
	_ "github.com/technicianted/whiptls/cmd/whiptls/cmd/serve"
)

func main() {
	if err := cmd.RootCMD.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}
