package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeTransport, http.StatusBadGateway},
		{ErrorCodeDecode, http.StatusBadGateway},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeSubjectAccess, http.StatusInternalServerError},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorBasics(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	src := stderrs.New("dial tcp: connection refused")
	e := Transportf(src, "lookup %s failed", "http://x")
	if want := "lookup http://x failed: dial tcp: connection refused"; e.Error() != want {
		t.Fatalf("Error() = %q, want %q", e.Error(), want)
	}
	if !IsTransport(e) || IsDecode(e) {
		t.Fatalf("IsTransport/IsDecode mismatch")
	}
	if !stderrs.Is(e, src) {
		t.Fatalf("cause not reachable through Unwrap")
	}

	// wrapped by fmt still classified
	outer := fmt.Errorf("detect: %w", Decodef(nil, "body is not an array"))
	if !IsDecode(outer) {
		t.Fatalf("IsDecode through fmt wrapping failed")
	}
	if IsCode(nil, ErrorCodeUnknown) {
		t.Fatalf("IsCode(nil) should be false")
	}
}

func TestWithFieldAndOpCopyOnWrite(t *testing.T) {
	base := Validationf("as is required")
	withField := WithField(base, "as")
	withOp := WithOp(withField, "detector.New")

	if fe, _ := As(withField); fe.Field() != "as" {
		t.Fatalf("WithField failed")
	}
	if oe, _ := As(withOp); oe.Op() != "detector.New" || oe.Field() != "as" {
		t.Fatalf("WithOp failed")
	}
	if be, _ := As(base); be.Field() != "" || be.Op() != "" {
		t.Fatalf("original mutated")
	}

	foreign := stderrs.New("x")
	if WithField(foreign, "f") != foreign || WithOp(foreign, "o") != foreign {
		t.Fatalf("foreign errors should pass through")
	}
}

func TestWire(t *testing.T) {
	if WireFrom(nil) != (Wire{}) {
		t.Fatalf("WireFrom(nil) not zero")
	}
	w := WireFrom(WithField(InvalidArgf("bad offset"), "utc_offset"))
	if w.Code != ErrorCodeInvalidArgument || w.Message != "bad offset" || w.Field != "utc_offset" {
		t.Fatalf("WireFrom mismatch: %+v", w)
	}
	if w := WireFrom(stderrs.New("plain")); w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("WireFrom foreign mismatch: %+v", w)
	}
	st, wire := HTTP(NotFoundf("no timezone"))
	if st != http.StatusNotFound || wire.Message != "no timezone" {
		t.Fatalf("HTTP mismatch: %d %+v", st, wire)
	}
	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) = %d", st)
	}
}

func TestRoot(t *testing.T) {
	src := stderrs.New("root")
	deep := fmt.Errorf("l2: %w", Wrap(src, ErrorCodeDB, "l1"))
	if Root(deep) != src {
		t.Fatalf("Root mismatch")
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) != nil")
	}
}

func TestCodeString(t *testing.T) {
	if ErrorCodeTransport.String() != "transport" || ErrorCode(999).String() != "unknown" {
		t.Fatalf("String mismatch")
	}
}
