package decpipe

import (
	"context"

	"github.com/reoring/decpipe/i18n"
)

// OptionalField resolves key against the current object node with fallback
// semantics:
//
//   - key absent                      -> fallback
//   - key null, d rejects null       -> fallback
//   - key null, d accepts null       -> d's result
//   - key present, d succeeds        -> d's result
//   - key present, d fails           -> failure (never the fallback)
//   - node is not an object          -> failure
//
// The fallback stands in for genuinely absent data only. A present-but-invalid
// value fails loudly so data-quality bugs surface instead of being papered
// over, and a non-object node is a structural mismatch, not a missing field.
func OptionalField[T any](key string, d Decoder[T], fallback T) Decoder[T] {
	return FromFunc(func(ctx context.Context, v any) (T, error) {
		var zero T
		obj, ok := v.(map[string]any)
		if !ok {
			return zero, Issues{Issue{
				Path:    "/",
				Code:    CodeNotContainer,
				Message: i18n.T(CodeNotContainer, map[string]string{"key": key}),
				Params:  map[string]any{"key": key, "got": kindOf(v)},
			}}
		}
		raw, present := obj[key]
		if !present {
			return fallback, nil
		}
		if raw == nil {
			out, err := d.Decode(ctx, nil)
			if err != nil {
				// d does not speak null; treat null as absent.
				return fallback, nil
			}
			return out, nil
		}
		out, err := d.Decode(ctx, raw)
		if err != nil {
			return zero, prefixIssues(err, key)
		}
		return out, nil
	})
}

// OptionalFieldAt applies OptionalField semantics at the end of a multi-key
// path. A missing key at any intermediate step yields the fallback; a present
// non-object (including null) at an intermediate step is a structural failure.
// An empty path decodes the current node directly, with null still resolving
// through d before falling back.
func OptionalFieldAt[T any](path []string, d Decoder[T], fallback T) Decoder[T] {
	return FromFunc(func(ctx context.Context, v any) (T, error) {
		var zero T
		if len(path) == 0 {
			if v == nil {
				out, err := d.Decode(ctx, nil)
				if err != nil {
					return fallback, nil
				}
				return out, nil
			}
			return d.Decode(ctx, v)
		}
		cur := v
		for i, key := range path[:len(path)-1] {
			obj, ok := cur.(map[string]any)
			if !ok {
				return zero, Issues{Issue{
					Path:    pointerOf(path[:i]),
					Code:    CodeNotContainer,
					Message: i18n.T(CodeNotContainer, map[string]string{"key": key}),
					Params:  map[string]any{"key": key, "got": kindOf(cur)},
				}}
			}
			nxt, present := obj[key]
			if !present {
				return fallback, nil
			}
			cur = nxt
		}
		leaf := path[len(path)-1]
		out, err := OptionalField(leaf, d, fallback).Decode(ctx, cur)
		if err != nil {
			return zero, prefixIssuesAt(err, path[:len(path)-1])
		}
		return out, nil
	})
}
