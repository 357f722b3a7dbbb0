// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package pki

import (
	"time"

	"github.com/technicianted/whiptls/cmd/whiptls/cmd"
	"github.com/technicianted/whiptls/pkg/logging"
	"github.com/technicianted/whiptls/pkg/tlsutils"

	"github.com/spf13/cobra"
)

var ServerCMD = &cobra.Command{
	Use:   "server",
	Short: "creates a new key pair signed by the ca suitable for a tls server",
	Run:   runServer,
}

var (
	certPath string
	keyPath  string
	hosts    []string
)

func init() {
	ServerCMD.Flags().StringVar(&certPath, "cert-path", "cert.pem", "path to certificate pem file")
	ServerCMD.Flags().StringVar(&keyPath, "key-path", "key.pem", "path to key pem file")
	ServerCMD.Flags().StringSliceVar(&hosts, "hosts", []string{"127.0.0.1", "localhost"}, "ip addresses and dns names of the server")

	PKICMD.AddCommand(ServerCMD)
}

func runServer(command *cobra.Command, args []string) {
	logger := logging.NewTraceLogger("pkiserver")
	cmd.SetLogging(logger)

	logger.Infof("loading ca")
	ca, err := tlsutils.NewCAFromFiles(CAKeyPath, CACertPath)
	if err != nil {
		logger.Fatalf("failed to load ca: %v", err)
	}

	logger.Infof("creating and signing new key pair with subject: %+v", Subject)
	cert := tlsutils.NewServerCertificate(Subject, hosts, time.Now().Add(ValidityDuration))
	certBytes, keyBytes, err := ca.CreateAndSignCertificate(cert)
	if err != nil {
		logger.Fatalf("failed to create certificate: %v", err)
	}
	if err := writeKeyPair(keyPath, keyBytes, certPath, certBytes); err != nil {
		logger.Fatalf("%v", err)
	}

	logger.Infof("done")
}
