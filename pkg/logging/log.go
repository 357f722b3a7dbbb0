// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package logging

import (
	log "github.com/sirupsen/logrus"
)

type Level = log.Level

const (
	PanicLevel Level = Level(log.PanicLevel)
	FatalLevel Level = Level(log.FatalLevel)
	ErrorLevel Level = Level(log.ErrorLevel)
	WarnLevel  Level = Level(log.WarnLevel)
	InfoLevel  Level = Level(log.InfoLevel)
	DebugLevel Level = Level(log.DebugLevel)
	TraceLevel Level = Level(log.TraceLevel)
)

// TraceLogger is the logger handed to every whiptls component. It is satisfied
// by *logrus.Entry so tests can pass entries of their own loggers.
type TraceLogger interface {
	// Tracef logs a message at level Trace.
	Tracef(format string, args ...interface{})

	// Debugf logs a message at level Debug.
	Debugf(format string, args ...interface{})

	// Infof logs a message at level Info.
	Infof(format string, args ...interface{})

	// Warnf logs a message at level Warn.
	Warnf(format string, args ...interface{})

	// Errorf logs a message at level Error.
	Errorf(format string, args ...interface{})

	// Fatalf logs a message at level Fatal.
	Fatalf(format string, args ...interface{})
}
