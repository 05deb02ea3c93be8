package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	t.Parallel()

	if !shouldSkipUptraceLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatal("health probe log not skipped")
	}
	if shouldSkipUptraceLog("http request", []any{"method", "GET", "path", "/v1/matches"}) {
		t.Fatal("api request log skipped")
	}
	if shouldSkipUptraceLog("cycle complete", []any{"path", "/healthz"}) {
		t.Fatal("non-request log skipped")
	}
}

func TestToOTelLogValue(t *testing.T) {
	t.Parallel()

	if got := toOTelLogValue("x"); got.AsString() != "x" {
		t.Fatalf("string: %v", got)
	}
	if got := toOTelLogValue(42); got.AsInt64() != 42 {
		t.Fatalf("int: %v", got)
	}
	if got := toOTelLogValue(errors.New("boom")); got.AsString() != "boom" {
		t.Fatalf("error: %v", got)
	}
	if got := toOTelLogValue(1500 * time.Millisecond); got.AsString() != "1.5s" {
		t.Fatalf("duration: %v", got)
	}
	if got := toOTelLogValue([]string{"a", "b"}); got.AsString() != "[a b]" {
		t.Fatalf("fallback: %v", got)
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	t.Parallel()

	attrs := buildOTelLogAttributes([]any{"match_id", "m1", 7, true, "dangling"})
	if len(attrs) != 3 {
		t.Fatalf("attrs: %d", len(attrs))
	}
	if attrs[0].Key != "match_id" || attrs[0].Value.AsString() != "m1" {
		t.Fatalf("first attr: %+v", attrs[0])
	}
	if attrs[1].Key != "arg_1" {
		t.Fatalf("non-string key not renamed: %+v", attrs[1])
	}
	if attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("dangling key: %+v", attrs[2])
	}
}
