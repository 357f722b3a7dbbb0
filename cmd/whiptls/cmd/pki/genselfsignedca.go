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

var GenSelfsignedCACMD = &cobra.Command{
	Use:   "genselfsignedca",
	Short: "generate a self-signed CA",
	Run:   runGenSelfSignedCA,
}

func init() {
	PKICMD.AddCommand(GenSelfsignedCACMD)
}

func runGenSelfSignedCA(command *cobra.Command, args []string) {
	logger := logging.NewTraceLogger("genselfsigned")
	cmd.SetLogging(logger)

	logger.Infof("generating a new self-signed CA with subject: %+v", Subject)
	ca, err := tlsutils.NewSelfSignedCA(Subject, time.Now().Add(ValidityDuration))
	if err != nil {
		logger.Fatalf("failed to create ca: %v", err)
	}

	keyBytes, err := ca.CAKeyBytes()
	if err != nil {
		logger.Fatalf("failed to encode key: %v", err)
	}
	if err := writeKeyPair(CAKeyPath, keyBytes, CACertPath, ca.CACertBytes()); err != nil {
		logger.Fatalf("%v", err)
	}

	logger.Infof("done")
}
