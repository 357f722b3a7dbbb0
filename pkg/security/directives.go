// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/technicianted/whiptls/pkg/logging"
)

// ParseLine feeds the tls directives of a configuration line to opts. Words
// starting with prefix are passed to Parse without the prefix, and the bare
// directive ("tls" for "tls-") is passed as the empty token. Other words are
// skipped. A word starting with # comments out the rest of the line; a # inside
// a word, such as in a file name, is kept.
func ParseLine(opts *ServerOptions, prefix, line string, logger logging.TraceLogger) error {
	bare := bareDirective(prefix)
	for _, word := range strings.Fields(line) {
		var token string
		switch {
		case strings.HasPrefix(word, "#"):
			return nil
		case word == bare || word == prefix:
			token = ""
		case strings.HasPrefix(word, prefix):
			token = word[len(prefix):]
		default:
			continue
		}
		if err := opts.Parse(token, logger); err != nil {
			return err
		}
	}
	return nil
}

// ParseConfig applies ParseLine to each line read from r.
func ParseConfig(opts *ServerOptions, prefix string, r io.Reader, logger logging.TraceLogger) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := ParseLine(opts, prefix, scanner.Text(), logger); err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}
	return scanner.Err()
}
