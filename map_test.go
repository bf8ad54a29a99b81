package decpipe_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	decpipe "github.com/reoring/decpipe"
)

type coord struct {
	X, Y float64
	Tag  string
}

func TestMap2_CombinesLeftToRight(t *testing.T) {
	ctx := context.Background()
	d := decpipe.Map2(func(a, b string) [2]string { return [2]string{a, b} },
		decpipe.Field("a", decpipe.String()),
		decpipe.Field("b", decpipe.String()))

	got, err := d.Decode(ctx, map[string]any{"a": "1", "b": "2"})
	if err != nil || got != [2]string{"1", "2"} {
		t.Fatalf("map2: v=%v err=%v", got, err)
	}

	// both operands would fail; the left one reports
	iss := mustIssues(t, errOf(d.Decode(ctx, map[string]any{})))
	if iss[0].Path != "/a" {
		t.Fatalf("expected left failure first, got %+v", iss[0])
	}
}

func TestMap3_BuildsStruct(t *testing.T) {
	ctx := context.Background()
	d := decpipe.Map3(func(x, y float64, tag string) coord { return coord{X: x, Y: y, Tag: tag} },
		decpipe.Field("x", decpipe.Float64()),
		decpipe.Field("y", decpipe.Float64()),
		decpipe.OptionalField("tag", decpipe.String(), "untagged"))

	got, err := decpipe.DecodeJSONString(ctx, d, `{"x":1.5,"y":2.5}`)
	if err != nil {
		t.Fatalf("map3 err: %v", err)
	}
	if diff := cmp.Diff(coord{X: 1.5, Y: 2.5, Tag: "untagged"}, got); diff != "" {
		t.Fatalf("coord mismatch (-want +got):\n%s", diff)
	}
}

func TestMap5_AllPositionsReachable(t *testing.T) {
	ctx := context.Background()
	d := decpipe.Map5(func(a, b, c, d, e string) string { return a + b + c + d + e },
		decpipe.Field("a", decpipe.String()),
		decpipe.Field("b", decpipe.String()),
		decpipe.Field("c", decpipe.String()),
		decpipe.Field("d", decpipe.String()),
		decpipe.Field("e", decpipe.String()))

	got, err := decpipe.DecodeJSONString(ctx, d, `{"a":"1","b":"2","c":"3","d":"4","e":"5"}`)
	if err != nil || got != "12345" {
		t.Fatalf("map5: v=%v err=%v", got, err)
	}
}
