// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package metrics

import (
	metricscommon "github.com/technicianted/whiptls/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Subsystem = "server"

	TransportLabel = "transport"
	PortLabel      = "port"

	TransportTLS   = "tls"
	TransportPlain = "plain"
)

var (
	ActiveConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricscommon.Namespace,
			Subsystem: Subsystem,
			Name:      "active_connections",
			Help:      "Active accepted connections",
		},
		[]string{TransportLabel, PortLabel},
	)

	AcceptedConnections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricscommon.Namespace,
			Subsystem: Subsystem,
			Name:      "accepted_connections_total",
			Help:      "Total accepted connections",
		},
		[]string{TransportLabel, PortLabel},
	)
)
