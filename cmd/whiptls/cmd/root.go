// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/technicianted/whiptls/pkg/logging"
	"github.com/technicianted/whiptls/pkg/metrics"
	"github.com/technicianted/whiptls/pkg/security"

	"github.com/spf13/cobra"
)

// RootCMD is the base command
var RootCMD = &cobra.Command{
	Use:   "whiptls",
	Short: "whiptls server tls directive tooling",
}

var (
	LogLevel             string
	MetricsListenAddress string

	DirectivePrefix string
	ConfigPath      string
	Directives      []string
)

func init() {
	RootCMD.PersistentFlags().StringVar(&MetricsListenAddress, "metrics-listen", "", "prometheus metric exposer listen address")
	RootCMD.PersistentFlags().StringVar(&LogLevel, "log-level", "info", "set log level")

	RootCMD.PersistentFlags().StringVar(&DirectivePrefix, "prefix", "tls-", "prefix of tls directives")
	RootCMD.PersistentFlags().StringVar(&ConfigPath, "config", "", "path to a file of configuration lines carrying tls directives")
	RootCMD.MarkFlagFilename("config")
	RootCMD.PersistentFlags().StringSliceVar(&Directives, "directive", nil, "tls directive, may be repeated, e.g. --directive tls-dh=prime256v1:/etc/dh.pem")
}

func CommonSetup(logger logging.TraceLogger) {
	SetLogging(logger)
	if MetricsListenAddress != "" {
		metrics.StartMetricsExposer(MetricsListenAddress, logger)
	}
}

func SetLogging(logger logging.TraceLogger) {
	logging.NewLogFormatter().Register()
	if err := logging.SetLevel(LogLevel); err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Infof("setting log level to %s", LogLevel)
}

// LoadServerOptions parses the --config file followed by --directive flags.
func LoadServerOptions(logger logging.TraceLogger) (*security.ServerOptions, error) {
	opts := &security.ServerOptions{}

	if ConfigPath != "" {
		f, err := os.Open(ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %v", err)
		}
		defer f.Close()
		if err := security.ParseConfig(opts, DirectivePrefix, f, logger); err != nil {
			return nil, fmt.Errorf("%s: %w", ConfigPath, err)
		}
	}

	if err := security.ParseLine(opts, DirectivePrefix, strings.Join(Directives, " "), logger); err != nil {
		return nil, err
	}

	return opts, nil
}
