// Copyright (c) technicianted. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"fmt"
	"io"
	"strings"

	"github.com/technicianted/whiptls/pkg/logging"
	"github.com/technicianted/whiptls/pkg/security/metrics"
)

const (
	dhDirective       = "dh="
	dhParamsDirective = "dhparams="
)

// ServerOptions are the tls options of a server facing endpoint. They extend
// PeerOptions with Diffie-Hellman and ephemeral ECDH settings.
//
// The dh, dhParamsFile and eecdhCurve fields always reflect the last accepted
// dh= or dhparams= directive.
type ServerOptions struct {
	PeerOptions

	// dh is the raw value of the last dh= or dhparams= directive.
	dh string
	// dhParamsFile is the path to pem encoded DH parameters.
	dhParamsFile string
	// eecdhCurve is the ephemeral ECDH curve short name. Empty disables EECDH.
	eecdhCurve string
}

// DH returns the raw value of the active dh= or dhparams= directive.
func (o *ServerOptions) DH() string {
	return o.dh
}

// DHParamsFile returns the configured DH parameters file path.
func (o *ServerOptions) DHParamsFile() string {
	return o.dhParamsFile
}

// EECDHCurve returns the configured ephemeral ECDH curve short name.
func (o *ServerOptions) EECDHCurve() string {
	return o.eecdhCurve
}

// Parse consumes a single directive token with its prefix already removed.
// The empty token enables transport encryption. dh= and dhparams= are handled
// here and everything else is passed to PeerOptions.
//
// A dh= value of the form curve:file selects an EECDH curve and a DH
// parameters file. Only the first colon splits. A dhparams= directive is
// ignored with a warning once dh= has selected a curve.
func (o *ServerOptions) Parse(token string, logger logging.TraceLogger) error {
	if token == "" {
		o.EncryptTransport = true
		metrics.Directives.WithLabelValues(metrics.DirectiveEnable, metrics.ResultAccepted).Inc()
		return nil
	}

	switch {
	case strings.HasPrefix(token, dhDirective):
		o.dhParamsFile = ""
		o.eecdhCurve = ""

		o.dh = token[len(dhDirective):]
		if o.dh != "" {
			if pos := strings.IndexByte(o.dh, ':'); pos != -1 {
				o.eecdhCurve = o.dh[:pos]
				o.dhParamsFile = o.dh[pos+1:]
			} else {
				o.dhParamsFile = o.dh
			}
		}
		logger.Debugf("dh configured with eecdh curve %q and params file %q", o.eecdhCurve, o.dhParamsFile)
		metrics.Directives.WithLabelValues(metrics.DirectiveDH, metrics.ResultAccepted).Inc()

	case strings.HasPrefix(token, dhParamsDirective):
		if o.eecdhCurve != "" {
			logger.Warnf("UPGRADE WARNING: EECDH settings in dh= override dhparams=")
			metrics.Directives.WithLabelValues(metrics.DirectiveDHParams, metrics.ResultIgnored).Inc()
			return nil
		}

		o.dh = token[len(dhParamsDirective):]
		o.dhParamsFile = o.dh
		metrics.Directives.WithLabelValues(metrics.DirectiveDHParams, metrics.ResultAccepted).Inc()

	default:
		return o.PeerOptions.Parse(token, logger)
	}

	return nil
}

// DumpCfg writes the options as space separated directives named with prefix.
// DH settings are always written in the dh= form.
func (o *ServerOptions) DumpCfg(w io.Writer, prefix string) error {
	if err := o.PeerOptions.DumpCfg(w, prefix); err != nil {
		return err
	}

	if !o.EncryptTransport {
		return nil
	}

	if o.dh != "" {
		if _, err := fmt.Fprintf(w, " %sdh=%s", prefix, o.dh); err != nil {
			return err
		}
	}
	return nil
}

// String returns DumpCfg output with the "tls-" prefix.
func (o *ServerOptions) String() string {
	b := &strings.Builder{}
	// strings.Builder writes never fail
	_ = o.DumpCfg(b, "tls-")
	return strings.TrimPrefix(b.String(), " ")
}

// Clone returns a deep copy of o, including its PeerOptions.
func (o *ServerOptions) Clone() *ServerOptions {
	return &ServerOptions{
		PeerOptions:  o.PeerOptions.Clone(),
		dh:           o.dh,
		dhParamsFile: o.dhParamsFile,
		eecdhCurve:   o.eecdhCurve,
	}
}

// UpdateContextEecdh configures ctx to use ephemeral ECDH with the configured
// curve. It does nothing when no curve is configured. On failure ctx is left
// without EECDH parameters; the error is logged and returned and it is up to
// the caller to decide whether to continue.
func (o *ServerOptions) UpdateContextEecdh(ctx Context, lib Library, logger logging.TraceLogger) (err error) {
	if o.eecdhCurve == "" {
		metrics.EECDHUpdates.WithLabelValues(metrics.ResultSkipped).Inc()
		return nil
	}

	defer func() {
		if err != nil {
			logger.Errorf("%v", err)
			metrics.EECDHUpdates.WithLabelValues(metrics.ResultFailed).Inc()
			return
		}
		metrics.EECDHUpdates.WithLabelValues(metrics.ResultConfigured).Inc()
	}()

	logger.Tracef("setting ephemeral ECDH curve to %s", o.eecdhCurve)

	if !lib.SupportsECDH() {
		return fmt.Errorf("%w: build with ecdh support to use curve %s", ErrEECDHUnavailable, o.eecdhCurve)
	}

	curve, ok := lib.CurveByShortName(o.eecdhCurve)
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownCurve, o.eecdhCurve)
	}

	params, err := lib.NewCurveParams(curve)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCurveParams, err)
	}
	defer params.Release()

	if err := ctx.SetTmpECDH(params); err != nil {
		return fmt.Errorf("%w: %v", ErrSetECDH, err)
	}

	return nil
}
