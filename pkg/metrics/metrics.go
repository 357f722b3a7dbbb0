// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package metrics

import (
	"net/http"
	"strings"

	"github.com/technicianted/whiptls/pkg/logging"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Namespace = "whiptls"
)

// SplitExposerAddress splits "host:port/path" into a listen address and a
// metrics path, defaulting the path to /metrics.
func SplitExposerAddress(address string) (listen, path string) {
	path = "/metrics"
	index := strings.Index(address, "/")
	if index != -1 {
		path = address[index:]
		address = address[0:index]
	}
	return address, path
}

// StartMetricsExposer starts prometheus metrics exposer
func StartMetricsExposer(address string, logger logging.TraceLogger) {
	address, path := SplitExposerAddress(address)
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())
	go func() {
		logger.Infof("starting prometheus exposer: %s%s", address, path)
		err := http.ListenAndServe(address, mux)
		logger.Warnf("prometheus metrics exposer terminated: %v", err)
	}()
}
