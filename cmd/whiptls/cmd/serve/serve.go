// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package serve

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/technicianted/whiptls/cmd/whiptls/cmd"
	"github.com/technicianted/whiptls/pkg/logging"
	"github.com/technicianted/whiptls/pkg/server"

	"github.com/spf13/cobra"
)

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "start a tls endpoint configured with tls directives",
	Run:   serveFunc,
}

var (
	listenAddress string
)

func init() {
	serveCMD.Flags().StringVar(&listenAddress, "listen", ":8443", "address to listen on")
	cmd.RootCMD.AddCommand(serveCMD)
}

func serveFunc(command *cobra.Command, args []string) {
	logger := logging.NewTraceLogger("controller")

	cmd.CommonSetup(logger)

	opts, err := cmd.LoadServerOptions(logger)
	if err != nil {
		logger.Fatalf("failed to parse directives: %v", err)
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS != nil {
			fmt.Fprintf(w, "tls version %s cipher %s\n", tls.VersionName(r.TLS.Version), tls.CipherSuiteName(r.TLS.CipherSuite))
			return
		}
		fmt.Fprintln(w, http.StatusText(http.StatusOK))
	})

	s := server.NewServer(server.ServerOptions{
		ListenAddress: listenAddress,
		TLS:           opts,
	}, handler)
	if err := s.Start(logger); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Infof("startup sequence completed, listening on %s", s.Addr())
	<-sigChan
	logger.Infof("received shutdown signal")

	if err := s.Stop(5*time.Second, logger); err != nil {
		logger.Warnf("failed to stop server: %v", err)
	}

	logger.Infof("shutdown completed")
}
