// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package metrics

import (
	"net"
	"strconv"
	"sync"

	"github.com/technicianted/whiptls/pkg/logging"
)

var _ net.Conn = &InstrumentedConn{}
var _ net.Listener = &InstrumentedListener{}

// InstrumentedConn is a wrapper around net.Conn that tracks it in ActiveConnections.
type InstrumentedConn struct {
	net.Conn
	transport string
	port      string
	closeOnce sync.Once
	logger    logging.TraceLogger
}

func NewInstrumentedConn(conn net.Conn, transport string, port int, logger logging.TraceLogger) *InstrumentedConn {
	strPort := strconv.Itoa(port)
	ActiveConnections.WithLabelValues(transport, strPort).Inc()
	AcceptedConnections.WithLabelValues(transport, strPort).Inc()

	c := &InstrumentedConn{
		Conn:      conn,
		transport: transport,
		port:      strPort,
		logger:    logging.NewTraceLoggerFromLogger("tcpconn", logger),
	}
	c.logger.Tracef("instrumented connection from %v created", conn.RemoteAddr())
	return c
}

// Close closes the underlying connection. The gauge is decremented once no
// matter how often Close is called.
func (c *InstrumentedConn) Close() error {
	c.closeOnce.Do(func() {
		ActiveConnections.WithLabelValues(c.transport, c.port).Dec()
		c.logger.Tracef("connection closed")
	})
	return c.Conn.Close()
}

// InstrumentedListener wraps every accepted connection in an InstrumentedConn.
type InstrumentedListener struct {
	net.Listener
	transport string
	port      int
	logger    logging.TraceLogger
}

func NewInstrumentedListener(lis net.Listener, transport string, logger logging.TraceLogger) *InstrumentedListener {
	port := 0
	if addr, ok := lis.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	return &InstrumentedListener{
		Listener:  lis,
		transport: transport,
		port:      port,
		logger:    logger,
	}
}

func (l *InstrumentedListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	return NewInstrumentedConn(conn, l.transport, l.port, l.logger), nil
}
