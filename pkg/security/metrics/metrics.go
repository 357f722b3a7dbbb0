// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package metrics

import (
	metricscommon "github.com/technicianted/whiptls/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Subsystem = "security"

	DirectiveLabel = "directive"
	ResultLabel    = "result"

	DirectiveEnable   = "enable"
	DirectiveDH       = "dh"
	DirectiveDHParams = "dhparams"
	DirectivePeer     = "peer"

	ResultAccepted = "accepted"
	ResultIgnored  = "ignored"
	ResultRejected = "rejected"

	ResultConfigured = "configured"
	ResultSkipped    = "skipped"
	ResultFailed     = "failed"
)

var (
	Directives = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricscommon.Namespace,
			Subsystem: Subsystem,
			Name:      "directives_total",
			Help:      "Parsed tls directives by outcome",
		},
		[]string{DirectiveLabel, ResultLabel},
	)

	EECDHUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricscommon.Namespace,
			Subsystem: Subsystem,
			Name:      "eecdh_updates_total",
			Help:      "Ephemeral ECDH context updates by outcome",
		},
		[]string{ResultLabel},
	)
)
