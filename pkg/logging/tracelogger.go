// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package logging

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestIDLogField = "requestID"
const subsystemLogField = "subsystem"

// NewTraceLogger creates a new logger given a subsystem and UUID generated requestID.
func NewTraceLogger(subsystem string) TraceLogger {
	return NewTraceLoggerWithRequestID(subsystem, uuid.New().String())
}

// NewTraceLoggerFromLogger creates a logger for subsystem that keeps the requestID of logger.
func NewTraceLoggerFromLogger(subsystem string, logger TraceLogger) TraceLogger {
	id := uuid.UUID{}
	if otherID, err := uuid.Parse(GetRequestID(logger)); err == nil {
		id = otherID
	}
	return NewTraceLoggerWithRequestID(subsystem, id.String())
}

// NewTraceLoggerWithRequestID creates a new logger with a subsystem and given requestID.
func NewTraceLoggerWithRequestID(subsystem string, requestID string) TraceLogger {
	return log.WithFields(log.Fields{
		requestIDLogField: requestID,
		subsystemLogField: subsystem,
	})
}

// GetRequestID returns the logger request ID, or an empty string if the logger
// does not carry one.
func GetRequestID(logger TraceLogger) string {
	entry, ok := logger.(*log.Entry)
	if !ok {
		return ""
	}
	id, _ := entry.Data[requestIDLogField].(string)
	return id
}

// SetLevel sets the global log level by name.
func SetLevel(name string) error {
	switch name {
	case "trace":
		log.SetLevel(log.TraceLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "fatal":
		log.SetLevel(log.FatalLevel)
	default:
		return fmt.Errorf("invalid log level: %s", name)
	}
	return nil
}

func init() {
	log.SetFormatter(&LogFormatter{})
}
