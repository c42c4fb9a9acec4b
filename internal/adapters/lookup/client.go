// Package lookup is the HTTP client for the remote timezone lookup service
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	perr "tzdetect/internal/platform/errors"
	"tzdetect/internal/platform/logger"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultUA       = "tzdetect"
	defaultMaxBytes = 1 << 20
)

// Options configures the Client
type Options struct {
	UserAgent string
	Timeout   time.Duration

	// Client side throttle; RatePerSec <= 0 disables it
	RatePerSec float64
	Burst      int

	MaxBodyBytes int64

	// HTTPClient replaces the default client; Timeout is ignored when set
	HTTPClient *http.Client
}

// Client performs GET lookups and decodes the JSON array response.
// It never retries
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time
}

// NewClient creates a Client with defaults filled in
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBytes
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	c := &Client{
		http: hc,
		opts: o,
		log:  *logger.Named("lookup"),
		now:  time.Now,
	}
	if o.RatePerSec > 0 {
		burst := o.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(o.RatePerSec), burst)
	}
	return c
}

// StatusError is a non-2xx answer from the lookup service
type StatusError struct {
	Status int
	Body   string
}

// Error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("lookup status %d: %s", e.Status, e.Body)
}

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

// Fetch GETs url and decodes a JSON array of records.
// Network failures and non-2xx answers are transport errors; a body that is not a JSON array is a decode error.
// Cancellation of ctx is returned as ctx.Err()
func (c *Client) Fetch(ctx context.Context, url string) (Result, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, perr.Transportf(err, "lookup throttled")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Transportf(err, "lookup new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, perr.Transportf(err, "lookup request failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Msg("lookup close body failed")
		}
	}()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("lookup http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, perr.Transportf(&StatusError{Status: resp.StatusCode, Body: string(body)}, "lookup unexpected status")
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodyBytes))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, perr.Transportf(err, "lookup read body failed")
	}
	return Decode(b)
}

// Decode parses a JSON array of flat records, keeping numbers exact
func Decode(b []byte) (Result, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, perr.Decodef(nil, "lookup body is empty")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var out Result
	if err := dec.Decode(&out); err != nil {
		return nil, perr.Decodef(err, "lookup body is not a JSON array of objects")
	}
	if out == nil {
		return nil, perr.Decodef(nil, "lookup body is null")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, perr.Decodef(err, "lookup body has trailing data")
	}
	return out, nil
}
