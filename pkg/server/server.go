// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.
package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/technicianted/whiptls/pkg/logging"
	"github.com/technicianted/whiptls/pkg/security"
	"github.com/technicianted/whiptls/pkg/server/metrics"
)

// Server serves an http handler on a listener whose tls context is built from
// ServerOptions.
type Server struct {
	options    ServerOptions
	handler    http.Handler
	listener   net.Listener
	httpServer *http.Server
}

// NewServer creates a new Server with options serving handler.
func NewServer(options ServerOptions, handler http.Handler) *Server {
	if options.Library == nil {
		options.Library = security.StandardLibrary{}
	}
	if options.TLS == nil {
		options.TLS = &security.ServerOptions{}
	}
	return &Server{
		options: options,
		handler: handler,
	}
}

// Start sets up the listener and starts serving in the background.
func (s *Server) Start(logger logging.TraceLogger) error {
	logger.Infof("starting server on %s", s.options.ListenAddress)

	if err := s.setupListener(logger); err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			logger.Errorf("failed to serve: %v", err)
		}
	}()

	return nil
}

// Addr returns the listener address. It is nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop shuts the server down, waiting up to timeout for active requests.
func (s *Server) Stop(timeout time.Duration, logger logging.TraceLogger) error {
	logger.Infof("stopping server")

	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %v", err)
	}
	return nil
}

func (s *Server) setupListener(logger logging.TraceLogger) error {
	lis, err := net.Listen("tcp", s.options.ListenAddress)
	if err != nil {
		return err
	}

	if !s.options.TLS.EncryptTransport {
		logger.Infof("using plain text listener")
		s.listener = metrics.NewInstrumentedListener(lis, metrics.TransportPlain, logger)
		return nil
	}

	logger.Infof("using tls listener with %s", s.options.TLS)
	tlsConfig, err := security.NewServerContext(s.options.TLS, s.options.Library, logger)
	if err != nil {
		lis.Close()
		return err
	}
	// instrument below tls so net/http still sees *tls.Conn
	s.listener = tls.NewListener(metrics.NewInstrumentedListener(lis, metrics.TransportTLS, logger), tlsConfig)

	return nil
}
