// Package module wires the timezone detector, its lookup client and HTTP routes
package module

import (
	"tzdetect/internal/adapters/lookup"
	"tzdetect/internal/core/detector"
	"tzdetect/internal/modkit"
	"tzdetect/internal/modkit/httpkit"
	perr "tzdetect/internal/platform/errors"
	"tzdetect/internal/platform/logger"
	"tzdetect/internal/services/timezone/domain"
	tzhttp "tzdetect/internal/services/timezone/http"
	"tzdetect/internal/services/timezone/service"
)

// Ports exposed by the timezone module
type Ports struct {
	Integrator domain.IntegratorPort
	Detector   domain.DetectorPort
}

// Module implements modkit.Module
type Module struct {
	built modkit.Built
	ports Ports

	det *detector.Detector
}

// New builds the module from deps.Cfg; zero fields of overrides keep the configured value
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) (*Module, error) {
	cfg := merge(FromConfig(deps.Cfg), overrides)

	log := logger.Named("timezone")
	client := lookup.NewClient(cfg.Lookup)
	det, err := detector.New(cfg.Detector, client, detector.WithLogger(log))
	if err != nil {
		return nil, perr.WithOp(err, "timezone.New")
	}
	svc := service.New(det, service.WithLogger(log))

	m := &Module{
		det:   det,
		ports: Ports{Integrator: svc, Detector: det},
	}

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("timezone"),
		modkit.WithPorts(m.ports),
		modkit.WithRegister(func(r httpkit.Router) { tzhttp.Register(r, svc) }),
	}, opts...)...)
	m.built = b

	log.Info().
		Str("base_url", det.Options().BaseURL).
		Str("using", det.Options().Using.String()).
		Str("as", det.Options().As).
		Str("on", string(det.Options().On)).
		Bool("raise_errors", det.Options().RaiseErrors).
		Msg("timezone detector ready")
	return m, nil
}

func merge(cfg, o Options) Options {
	d, od := &cfg.Detector, o.Detector
	if !od.Using.IsZero() {
		d.Using = od.Using
	}
	if od.As != "" {
		d.As = od.As
	}
	if od.On != "" {
		d.On = od.On
	}
	if od.BaseURL != "" {
		d.BaseURL = od.BaseURL
	}
	// bool overrides only switch on
	d.RaiseErrors = d.RaiseErrors || od.RaiseErrors
	d.Log = d.Log || od.Log

	l, ol := &cfg.Lookup, o.Lookup
	if ol.UserAgent != "" {
		l.UserAgent = ol.UserAgent
	}
	if ol.Timeout > 0 {
		l.Timeout = ol.Timeout
	}
	if ol.RatePerSec > 0 {
		l.RatePerSec = ol.RatePerSec
	}
	if ol.Burst > 0 {
		l.Burst = ol.Burst
	}
	if ol.HTTPClient != nil {
		l.HTTPClient = ol.HTTPClient
	}
	return cfg
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Integrator returns the lifecycle integrator
func (m *Module) Integrator() domain.IntegratorPort { return m.ports.Integrator }

// Detector returns the underlying detector
func (m *Module) Detector() *detector.Detector { return m.det }

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

var _ modkit.Module = (*Module)(nil)
