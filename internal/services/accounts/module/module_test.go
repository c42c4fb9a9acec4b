package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"tzdetect/internal/modkit"
	"tzdetect/internal/platform/config"
	phttp "tzdetect/internal/platform/net/http"
	"tzdetect/internal/platform/store"
	kit "tzdetect/internal/platform/testkit"
	"tzdetect/internal/services/accounts/service"
)

// noDB accepts writes and fails every query
type noDB struct{}

func (noDB) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (noDB) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, context.Canceled
}
func (noDB) QueryRow(context.Context, string, ...any) store.Row { return nil }
func (d noDB) Tx(ctx context.Context, fn func(store.RowQuerier) error) error {
	return fn(d)
}

func TestNew_RequiresPG(t *testing.T) {
	t.Parallel()
	kit.MustPanic(t, func() { New(modkit.Deps{Cfg: config.New()}) })
}

func TestModule_Wiring(t *testing.T) {
	t.Parallel()

	m := New(modkit.Deps{Cfg: config.New(), PG: noDB{}})
	if m.Name() != "accounts" {
		t.Fatalf("Name = %q", m.Name())
	}
	if _, ok := m.Ports().(*service.Svc); !ok {
		t.Fatalf("Ports = %T", m.Ports())
	}
	if m.Hooks() == nil {
		t.Fatal("Hooks nil")
	}
	if err := m.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/acme", nil))
	if rec.Code == http.StatusNotFound && !strings.Contains(rec.Body.String(), "status_code") {
		t.Fatalf("route not mounted: %d %s", rec.Code, rec.Body.String())
	}
	if rec.Code < 400 {
		t.Fatalf("expected the failing db to surface, got %d", rec.Code)
	}
}

func TestModule_RejectsNonJSONBodies(t *testing.T) {
	t.Parallel()

	m := New(modkit.Deps{Cfg: config.New(), PG: noDB{}})
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	req := httptest.NewRequest(http.MethodPut, "/accounts/acme", strings.NewReader("name=Acme"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", rec.Code)
	}
}
