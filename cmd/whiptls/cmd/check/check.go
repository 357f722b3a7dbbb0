// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package check

import (
	"crypto/tls"
	"fmt"
	"os"
	"strings"

	"github.com/technicianted/whiptls/cmd/whiptls/cmd"
	"github.com/technicianted/whiptls/pkg/logging"
	"github.com/technicianted/whiptls/pkg/security"

	"github.com/spf13/cobra"
)

var checkCMD = &cobra.Command{
	Use:   "check",
	Short: "parse tls directives, print their normalized form and verify the server context",
	Run:   checkFunc,
}

var (
	buildContext bool
)

func init() {
	checkCMD.Flags().BoolVar(&buildContext, "build-context", false, "also load certificates and dh parameters and apply eecdh settings")
	cmd.RootCMD.AddCommand(checkCMD)
}

func checkFunc(command *cobra.Command, args []string) {
	logger := logging.NewTraceLogger("check")
	cmd.SetLogging(logger)

	opts, err := cmd.LoadServerOptions(logger)
	if err != nil {
		logger.Fatalf("failed to parse directives: %v", err)
	}

	b := &strings.Builder{}
	if err := opts.DumpCfg(b, cmd.DirectivePrefix); err != nil {
		logger.Fatalf("failed to dump directives: %v", err)
	}
	fmt.Fprintln(os.Stdout, strings.TrimPrefix(b.String(), " "))

	if !buildContext {
		return
	}
	lib := security.StandardLibrary{}
	// NewServerContext only logs eecdh failures, a check has to fail on them
	if err := opts.UpdateContextEecdh(&security.TLSContext{Config: &tls.Config{}}, lib, logger); err != nil {
		logger.Fatalf("eecdh settings are not usable: %v", err)
	}
	if _, err := security.NewServerContext(opts, lib, logger); err != nil {
		logger.Fatalf("failed to build server context: %v", err)
	}
	logger.Infof("server context is valid")
}
