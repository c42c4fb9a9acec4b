// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"

	"tzdetect/internal/modkit/repokit"
	perr "tzdetect/internal/platform/errors"
	"tzdetect/internal/platform/store"
	pstrings "tzdetect/internal/platform/strings"
	"tzdetect/internal/services/accounts/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

const columns = `id, name, city, state, country, zip, timezone, created_at, updated_at`

// Get loads one account
func (r *queries) Get(ctx context.Context, id string) (domain.Account, error) {
	a, err := store.StructByName[domain.Account](ctx, r.q,
		`SELECT `+columns+` FROM accounts WHERE id = $1`, id)
	return a, dbErr(err, "get account %s", id)
}

// Insert creates the row and returns it as stored
func (r *queries) Insert(ctx context.Context, a domain.Account) (domain.Account, error) {
	out, err := store.StructByName[domain.Account](ctx, r.q, `
		INSERT INTO accounts (id, name, city, state, country, zip, timezone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+columns,
		a.ID, a.Name, a.City, a.State, a.Country, a.Zip, pstrings.SQLNullPtr(a.Timezone))
	return out, dbErr(err, "insert account %s", a.ID)
}

// Update replaces the writable columns and returns the stored row
func (r *queries) Update(ctx context.Context, a domain.Account) (domain.Account, error) {
	out, err := store.StructByName[domain.Account](ctx, r.q, `
		UPDATE accounts
		   SET name = $2, city = $3, state = $4, country = $5, zip = $6, timezone = $7,
		       updated_at = now()
		 WHERE id = $1
		RETURNING `+columns,
		a.ID, a.Name, a.City, a.State, a.Country, a.Zip, pstrings.SQLNullPtr(a.Timezone))
	return out, dbErr(err, "update account %s", a.ID)
}

// Delete removes the row; a missing id is NotFound
func (r *queries) Delete(ctx context.Context, id string) error {
	return dbErr(store.ExecOne(ctx, r.q, `DELETE FROM accounts WHERE id = $1`, id), "delete account %s", id)
}

// dbErr keeps coded errors and maps driver errors; nil stays nil
func dbErr(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	if _, ok := perr.As(err); ok {
		return err
	}
	return perr.FromPostgresf(err, format, a...)
}
