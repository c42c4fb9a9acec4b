package logger

import (
	"bytes"
	"context"
	"testing"

	kit "tzdetect/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "tzdetect-api")
	t.Setenv("LOG_CALLER", "yes")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Service != "tzdetect-api" || !opt.WithCaller {
		t.Fatalf("FromEnv mismatch: %+v", opt)
	}
}

func TestNew_JSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Format: "json", Service: "svc", Writer: &buf})

	ctx := WithRequest(context.Background(), "req-42")
	C(ctx, l).Info().Str("url", "http://x/?a=b").Msg("lookup")

	out := buf.String()
	kit.MustContain(t, out, `"request_id":"req-42"`)
	kit.MustContain(t, out, `"service":"svc"`)
	kit.MustContain(t, out, `"message":"lookup"`)
}

func TestC_NoRequestIDReturnsSameLogger(t *testing.T) {
	l := Nop()
	if got := C(context.Background(), l); got != l {
		t.Fatalf("C without request id should return the given logger")
	}
	if RequestID(WithRequest(context.Background(), "")) != "" {
		t.Fatalf("empty request id should not be stored")
	}
}

func TestGetAndNamed(t *testing.T) {
	if Get() == nil {
		t.Fatalf("Get returned nil")
	}
	if Named("") != Get() {
		t.Fatalf("Named(\"\") should return root")
	}
	if Named("lookup") == Get() {
		t.Fatalf("Named(component) should return a child")
	}
}
