package decpipe_test

import (
	"context"
	"strings"
	"testing"

	decpipe "github.com/reoring/decpipe"
)

func TestDecodeJSON_Basic(t *testing.T) {
	ctx := context.Background()
	d := decpipe.Field("name", decpipe.String())

	v, err := decpipe.DecodeJSON(ctx, d, []byte(`{"name":"gopher"}`))
	if err != nil || v != "gopher" {
		t.Fatalf("decode: v=%v err=%v", v, err)
	}
}

func TestDecodeJSON_MalformedInput(t *testing.T) {
	ctx := context.Background()
	d := decpipe.Value()

	iss := mustIssues(t, errOf(decpipe.DecodeJSON(ctx, d, []byte(`{"name":`))))
	if iss[0].Code != decpipe.CodeParseError {
		t.Fatalf("expected parse_error, got %+v", iss[0])
	}
}

func TestDecodeJSON_TrailingDataRejected(t *testing.T) {
	ctx := context.Background()

	iss := mustIssues(t, errOf(decpipe.DecodeJSON(ctx, decpipe.Value(), []byte(`{} trailing`))))
	if iss[0].Code != decpipe.CodeParseError {
		t.Fatalf("expected parse_error, got %+v", iss[0])
	}
}

func TestDecodeJSON_DuplicateKeySeverity(t *testing.T) {
	ctx := context.Background()
	d := decpipe.Field("a", decpipe.String())
	in := []byte(`{"a":"x","a":"y"}`)

	// default severity ignores duplicates; last value wins
	v, err := decpipe.DecodeJSON(ctx, d, in)
	if err != nil || v != "y" {
		t.Fatalf("ignore severity: v=%v err=%v", v, err)
	}

	iss := mustIssues(t, errOf(decpipe.DecodeJSON(ctx, d, in, decpipe.DecodeOpt{OnDuplicateKey: decpipe.Error})))
	if iss[0].Code != decpipe.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %+v", iss[0])
	}
}

func TestDecodeJSON_MaxDepthEnforced(t *testing.T) {
	ctx := context.Background()
	in := []byte(`{"a":{"b":{"c":{"d":1}}}}`)

	if _, err := decpipe.DecodeJSON(ctx, decpipe.Value(), in, decpipe.DecodeOpt{MaxDepth: 8}); err != nil {
		t.Fatalf("depth within budget err: %v", err)
	}
	iss := mustIssues(t, errOf(decpipe.DecodeJSON(ctx, decpipe.Value(), in, decpipe.DecodeOpt{MaxDepth: 2})))
	if iss[0].Code != decpipe.CodeTruncated {
		t.Fatalf("expected truncated, got %+v", iss[0])
	}
}

func TestDecodeJSON_MaxBytesEnforced(t *testing.T) {
	ctx := context.Background()
	in := []byte(`{"a":"` + strings.Repeat("x", 1024) + `"}`)

	iss := mustIssues(t, errOf(decpipe.DecodeJSON(ctx, decpipe.Value(), in, decpipe.DecodeOpt{MaxBytes: 64})))
	if iss[0].Code != decpipe.CodeTruncated {
		t.Fatalf("expected truncated, got %+v", iss[0])
	}
}

func TestDecodeJSON_NumberModes(t *testing.T) {
	ctx := context.Background()
	in := []byte(`{"n":1.25}`)

	// default preserves json.Number
	n, err := decpipe.DecodeJSON(ctx, decpipe.Field("n", decpipe.Number()), in)
	if err != nil || n.String() != "1.25" {
		t.Fatalf("json.Number mode: v=%v err=%v", n, err)
	}

	f, err := decpipe.DecodeJSON(ctx, decpipe.Field("n", decpipe.Float64()), in, decpipe.DecodeOpt{Number: decpipe.NumberFloat64})
	if err != nil || f != 1.25 {
		t.Fatalf("float64 mode: v=%v err=%v", f, err)
	}
}

func TestDecodeFrom_ReaderSource(t *testing.T) {
	ctx := context.Background()
	src := decpipe.JSONReader(strings.NewReader(`["a","b"]`))

	xs, err := decpipe.DecodeFrom(ctx, decpipe.SliceOf(decpipe.String()), src)
	if err != nil || len(xs) != 2 || xs[0] != "a" {
		t.Fatalf("reader source: v=%v err=%v", xs, err)
	}
}

func TestDecodeFrom_NilSource(t *testing.T) {
	ctx := context.Background()
	if _, err := decpipe.DecodeFrom(ctx, decpipe.Value(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestSetJSONDriver_SwapsGlobal(t *testing.T) {
	prev := decpipe.CurrentJSONDriver()
	defer decpipe.SetJSONDriver(prev)

	decpipe.SetJSONDriver(nil) // ignored
	if decpipe.CurrentJSONDriver() == nil {
		t.Fatalf("nil driver must be ignored")
	}
	if name := decpipe.CurrentJSONDriver().Name(); name == "" {
		t.Fatalf("driver must report a name")
	}
}
