// Package module wires applicants into the API using modkit
package module

import (
	"net/http"

	modkit "kycbridge/internal/modkit"
	"kycbridge/internal/modkit/httpkit"
	"kycbridge/internal/provider/sumsub"

	"kycbridge/internal/services/applicants/domain"
	ahttp "kycbridge/internal/services/applicants/http"
	asvc "kycbridge/internal/services/applicants/service"
)

// Module implements the applicants API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc asvc.Service
}

// Ports declares the optional injected provider for this module
// when left nil the module builds a sumsub client from config
type Ports struct {
	Provider domain.ProviderPort
}

// New constructs the applicants module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("applicants"),
		modkit.WithPrefix("/applicants"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}

	provider := injected.Provider
	if provider == nil {
		cfg := FromConfig(deps.Cfg)
		client, err := sumsub.New(sumsub.Config{
			BaseURL: cfg.BaseURL,
			Token:   cfg.Token,
			Secret:  cfg.Secret,
			Level:   cfg.Level,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			panic("applicants module: " + err.Error())
		}
		provider = client
	}

	svc := asvc.New(deps.PG, provider)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptServicePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ahttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
