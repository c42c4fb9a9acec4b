package testkit

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
)

// Fixture answers requests whose query contains every Match pair
type Fixture struct {
	Match  map[string]string
	Status int    // default 200
	Body   string // raw response body
}

// LookupStub is an httptest server impersonating the timezone lookup endpoint.
// Requests that match no fixture get "[]"
type LookupStub struct {
	*httptest.Server

	mu       sync.Mutex
	fixtures []Fixture
	queries  []url.Values
	raw      []string
	hits     atomic.Int64
}

// NewLookupStub starts a stub serving fixtures in order; it is closed on test cleanup
func NewLookupStub(t *testing.T, fixtures ...Fixture) *LookupStub {
	t.Helper()
	s := &LookupStub{fixtures: fixtures}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Server.Close)
	return s
}

// URL returns the endpoint the detector should query
func (s *LookupStub) URL() string { return s.Server.URL + "/api/v1/timezones" }

// Hits returns the number of requests served
func (s *LookupStub) Hits() int { return int(s.hits.Load()) }

// Queries returns a copy of every query seen, in order
func (s *LookupStub) Queries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.queries...)
}

// LastRawQuery returns the query string of the last request exactly as sent, "" if none
func (s *LookupStub) LastRawQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.raw) == 0 {
		return ""
	}
	return s.raw[len(s.raw)-1]
}

func (s *LookupStub) serve(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	q := r.URL.Query()

	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.raw = append(s.raw, r.URL.RawQuery)
	fixtures := s.fixtures
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	for _, f := range fixtures {
		if !matches(q, f.Match) {
			continue
		}
		if f.Status != 0 {
			w.WriteHeader(f.Status)
		}
		_, _ = w.Write([]byte(f.Body))
		return
	}
	_, _ = w.Write([]byte("[]"))
}

func matches(q url.Values, want map[string]string) bool {
	for k, v := range want {
		if q.Get(k) != v {
			return false
		}
	}
	return true
}
