// Package module wires the accounts service into the API using modkit
package module

import (
	"context"
	"time"

	"tzdetect/internal/modkit"
	"tzdetect/internal/modkit/httpkit"
	"tzdetect/internal/platform/net/middleware"
	acchttp "tzdetect/internal/services/accounts/http"
	"tzdetect/internal/services/accounts/repo"
	"tzdetect/internal/services/accounts/service"
)

// Module implements modkit.Module
type Module struct {
	built modkit.Built
	svc   *service.Svc
	deps  modkit.Deps
}

// New constructs the accounts module; it needs a database
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	if !deps.HasPG() {
		panic("accounts module: requires a PG TxRunner")
	}
	timeout := deps.Cfg.Prefix("TZDETECT_ACCOUNTS_").MayDuration("STATEMENT_TIMEOUT", 5*time.Second)
	svc := service.New(deps.PG, repo.NewPG(), timeout)

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("accounts"),
		modkit.WithPrefix("/accounts"),
		modkit.WithPorts(svc),
		modkit.WithMiddlewares(middleware.AllowJSON()),
		modkit.WithRegister(func(r httpkit.Router) { acchttp.Register(r, svc) }),
	}, opts...)...)
	return &Module{built: b, svc: svc, deps: deps}
}

// Migrate creates the accounts table when missing
func (m *Module) Migrate(ctx context.Context) error {
	return repo.Migrate(ctx, m.deps.PG)
}

// Hooks returns the registry timezone detection attaches to
func (m *Module) Hooks() *service.Svc { return m.svc }

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.built.Ports }

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

var _ modkit.Module = (*Module)(nil)
