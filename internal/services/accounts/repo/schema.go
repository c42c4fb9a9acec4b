package repo

import (
	"context"

	"tzdetect/internal/modkit/repokit"
	perr "tzdetect/internal/platform/errors"
)

// Schema creates the accounts table when missing
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id         text        PRIMARY KEY,
	name       text        NOT NULL,
	city       text        NOT NULL DEFAULT '',
	state      text        NOT NULL DEFAULT '',
	country    text        NOT NULL DEFAULT '',
	zip        text        NOT NULL DEFAULT '',
	timezone   text,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
)`

// Migrate applies Schema; it is idempotent
func Migrate(ctx context.Context, q repokit.Queryer) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return perr.FromPostgresf(err, "migrate accounts")
	}
	return nil
}
