// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package logging

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// LogFormatter renders entries as
// "<time> <requestID> <subsystem> <level> <message> [key=value ...]".
// It implements logrus.Formatter and is registered by default.
type LogFormatter struct{}

// NewLogFormatter creates a new trace logging output formatter.
func NewLogFormatter() *LogFormatter {
	return &LogFormatter{}
}

// Register sets the formatter in the log system.
func (formatter *LogFormatter) Register() {
	log.SetFormatter(formatter)
}

// Format perform custom logger formatting.
func (formatter *LogFormatter) Format(entry *log.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteString(fmt.Sprintf("%-29s", entry.Time.Format("2006-01-02T15:04:05.999999-07:00")))
	b.WriteString(" ")
	requestID, ok := entry.Data[requestIDLogField].(string)
	if !ok || requestID == "" {
		requestID = uuid.Nil.String()
	}
	b.WriteString(requestID)
	b.WriteString(" ")
	subsystem, ok := entry.Data[subsystemLogField]
	if !ok {
		subsystem = "unknown"
	}
	b.WriteString(fmt.Sprintf("%-20s", subsystem))
	b.WriteString(fmt.Sprintf("%-5s", entry.Level.String()))
	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k == requestIDLogField || k == subsystemLogField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(fmt.Sprintf(" %s=%v", k, entry.Data[k]))
	}
	b.WriteString("\n")

	return b.Bytes(), nil
}
