package decpipe_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	decpipe "github.com/reoring/decpipe"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := decpipe.Issues{
		{Path: "/a", Code: decpipe.CodeInvalidType},
		{Path: "/b", Code: decpipe.CodeRequired},
		{Path: "/c", Code: decpipe.CodeNotContainer},
		{Path: "/d", Code: decpipe.CodeResolveFailed},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if !strings.Contains(s, "invalid_type at /a") {
		t.Fatalf("expected first issue in summary, got %q", s)
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("expected overflow marker, got %q", s)
	}
}

func TestIssues_EmptySummary(t *testing.T) {
	if s := (decpipe.Issues{}).Error(); s != "" {
		t.Fatalf("expected empty summary, got %q", s)
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	var iss decpipe.Issues
	iss = decpipe.AppendIssues(iss, decpipe.Issue{Path: "/", Code: decpipe.CodeRequired})
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %d", len(iss))
	}
}

func TestAsIssues_UnwrapsThroughFmtErrorf(t *testing.T) {
	inner := decpipe.Issues{{Path: "/x", Code: decpipe.CodeInvalidType}}
	wrapped := fmt.Errorf("decode failed: %w", inner)

	iss, ok := decpipe.AsIssues(wrapped)
	if !ok || len(iss) != 1 || iss[0].Path != "/x" {
		t.Fatalf("expected unwrapped issues, got ok=%v iss=%v", ok, iss)
	}

	if _, ok := decpipe.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors must not convert to Issues")
	}
	if _, ok := decpipe.AsIssues(nil); ok {
		t.Fatalf("nil must not convert to Issues")
	}
}
