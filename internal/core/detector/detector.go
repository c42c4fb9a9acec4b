// Package detector resolves a subject's timezone through the remote lookup service
package detector

import (
	"context"

	"tzdetect/internal/adapters/lookup"
	"tzdetect/internal/core/query"
	"tzdetect/internal/core/subject"
	perr "tzdetect/internal/platform/errors"
	"tzdetect/internal/platform/logger"

	"github.com/google/uuid"
)

// Fetcher performs one lookup request
type Fetcher interface {
	Fetch(ctx context.Context, url string) (lookup.Result, error)
}

// Detector turns subjects into lookup queries and extracts fields from the best match.
// Safe for concurrent use; results are cached per request URL
type Detector struct {
	opts  Options
	fetch Fetcher
	cache *requestCache
	log   logger.Logger
	newID func() string
}

// Option customizes a Detector
type Option func(*Detector)

// WithLogger sets the logger; the default is the root logger's "detector" child
func WithLogger(l *logger.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.log = *l
		}
	}
}

// New validates opts and builds a Detector backed by f
func New(opts Options, f Fetcher, o ...Option) (*Detector, error) {
	if f == nil {
		return nil, perr.InvalidArgf("detector requires a fetcher")
	}
	opts, err := opts.Validate()
	if err != nil {
		return nil, perr.WithOp(err, "detector.New")
	}
	d := &Detector{
		opts:  opts,
		fetch: f,
		cache: newRequestCache(),
		log:   *logger.Named("detector"),
		newID: uuid.NewString,
	}
	for _, fn := range o {
		fn(d)
	}
	return d, nil
}

// Options returns the effective configuration
func (d *Detector) Options() Options { return d.opts }

// CacheLen reports how many distinct request URLs are cached
func (d *Detector) CacheLen() int { return d.cache.len() }

// URLFor returns the request URL subj resolves to
func (d *Detector) URLFor(subj subject.FieldReadable) string {
	return query.BuildURL(d.opts.BaseURL, query.Resolve(subj, d.opts.Using))
}

// Detect looks up subj and returns field (default "timezone") from the first result.
// ok is false when the service has no match or the match lacks the field.
// Transport, decode and subject errors are logged, then returned only when RaiseErrors is set;
// any other error (such as ctx cancellation) is always returned
func (d *Detector) Detect(ctx context.Context, subj subject.FieldReadable, field ...string) (value string, ok bool, err error) {
	want := FieldTimezone
	if len(field) > 0 && field[0] != "" {
		want = field[0]
	}
	log := logger.C(ctx, &d.log)

	if subj == nil {
		return d.fail(log, "", perr.New(perr.ErrorCodeSubjectAccess, "nil subject"))
	}

	url := d.URLFor(subj)
	res, hit, err := d.cache.getOrCompute(ctx, url, func(shared context.Context) (lookup.Result, error) {
		if d.opts.Log {
			log.Info().Str("lookup_id", d.newID()).Str("url", url).Msg("timezone lookup")
		}
		return d.fetch.Fetch(shared, url)
	})
	if err != nil {
		return d.fail(log, url, err)
	}
	if hit {
		log.Debug().Str("url", url).Msg("timezone lookup cache hit")
	}

	rec, found := res.First()
	if !found {
		return "", false, nil
	}
	value, ok = rec.String(want)
	return value, ok, nil
}

func (d *Detector) fail(log *logger.Logger, url string, err error) (string, bool, error) {
	contained := perr.IsTransport(err) || perr.IsDecode(err) || perr.IsCode(err, perr.ErrorCodeSubjectAccess)

	log.Error().Err(err).
		Str("url", url).
		Str("code", perr.CodeOf(err).String()).
		Bool("raised", d.opts.RaiseErrors || !contained).
		Msg("timezone detection failed")

	if contained && !d.opts.RaiseErrors {
		return "", false, nil
	}
	return "", false, err
}
