// Package service provides the accounts service implementation
package service

import (
	"context"
	"time"

	"tzdetect/internal/core/subject"
	"tzdetect/internal/modkit/repokit"
	perr "tzdetect/internal/platform/errors"
	"tzdetect/internal/platform/logger"
	pstrings "tzdetect/internal/platform/strings"
	"tzdetect/internal/platform/validate"
	"tzdetect/internal/services/accounts/domain"
)

// Svc saves accounts and runs the registered pre-create and pre-save hooks
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	hooks  repokit.SaveHooks[subject.FieldWritable]
	log    *logger.Logger
}

var _ domain.ServicePort = (*Svc)(nil)

// New constructs the accounts service; writes are bounded by stmtTimeout when it is positive
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo], stmtTimeout time.Duration) *Svc {
	if db == nil {
		panic("accounts.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("accounts.Service requires a non-nil Repo binder")
	}
	if stmtTimeout > 0 {
		db = repokit.WithBeginHooks(db, repokit.StatementTimeout(stmtTimeout))
	}
	return &Svc{db: db, binder: binder, log: logger.Named("accounts")}
}

// RegisterPreCreateHook runs fn before an account is inserted
func (s *Svc) RegisterPreCreateHook(fn func(ctx context.Context, subj subject.FieldWritable) error) {
	s.hooks.OnCreate(fn)
}

// RegisterPreSaveHook runs fn before every insert and update
func (s *Svc) RegisterPreSaveHook(fn func(ctx context.Context, subj subject.FieldWritable) error) {
	s.hooks.OnSave(fn)
}

// Get loads one account
func (s *Svc) Get(ctx context.Context, id string) (domain.Account, error) {
	if err := validate.Struct(domain.Key{ID: id}); err != nil {
		return domain.Account{}, err
	}
	return repokit.MustBind(s.binder, s.db).Get(ctx, id)
}

// Delete removes one account
func (s *Svc) Delete(ctx context.Context, id string) error {
	if err := validate.Struct(domain.Key{ID: id}); err != nil {
		return err
	}
	if err := repokit.MustBind(s.binder, s.db).Delete(ctx, id); err != nil {
		return err
	}
	logger.C(ctx, s.log).Debug().Str("account_id", id).Msg("account deleted")
	return nil
}

// Save upserts the account. Hooks see the record before it is written and may change it;
// a hook error aborts the write
func (s *Svc) Save(ctx context.Context, id string, in domain.SaveInput) (domain.Account, bool, error) {
	if err := validate.Struct(domain.Key{ID: id}); err != nil {
		return domain.Account{}, false, err
	}
	if err := validate.Struct(in); err != nil {
		return domain.Account{}, false, err
	}

	existing, err := repokit.MustBind(s.binder, s.db).Get(ctx, id)
	creating := perr.IsCode(err, perr.ErrorCodeNotFound)
	if err != nil && !creating {
		return domain.Account{}, false, err
	}

	acct := domain.Account{
		ID:       id,
		Name:     in.Name,
		City:     in.City,
		State:    in.State,
		Country:  in.Country,
		Zip:      in.Zip,
		Timezone: existing.Timezone,
	}
	if err := s.hooks.Run(ctx, subject.MustStruct(&acct), creating); err != nil {
		return domain.Account{}, false, err
	}

	var out domain.Account
	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		var err error
		if creating {
			out, err = r.Insert(ctx, acct)
		} else {
			out, err = r.Update(ctx, acct)
		}
		return err
	})
	if err != nil {
		return domain.Account{}, false, err
	}

	logger.C(ctx, s.log).Debug().
		Str("account_id", out.ID).
		Bool("created", creating).
		Str("timezone", pstrings.Deref(out.Timezone)).
		Msg("account saved")
	return out, creating, nil
}
