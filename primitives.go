package decpipe

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"github.com/reoring/decpipe/i18n"
)

// kindOf reports the tree-value kind tag used in issue params. Keeping the
// kind an explicit tag makes the container/scalar branches total functions
// instead of probe-and-recover heuristics.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64, uint64:
		return "number"
	default:
		return "unknown"
	}
}

func invalidType(expected string, v any) Issues {
	return Issues{Issue{
		Path:    "/",
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": expected}),
		Params:  map[string]any{"expected": expected, "got": kindOf(v)},
	}}
}

// String decodes a JSON string.
func String() Decoder[string] {
	return FromFunc(func(ctx context.Context, v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", invalidType("string", v)
		}
		return s, nil
	})
}

// Bool decodes a JSON boolean.
func Bool() Decoder[bool] {
	return FromFunc(func(ctx context.Context, v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, invalidType("boolean", v)
		}
		return b, nil
	})
}

// Number decodes a JSON number preserving its textual representation.
func Number() Decoder[json.Number] {
	return FromFunc(func(ctx context.Context, v any) (json.Number, error) {
		switch n := v.(type) {
		case json.Number:
			return n, nil
		case float64:
			return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), nil
		case int:
			return json.Number(strconv.Itoa(n)), nil
		case int64:
			return json.Number(strconv.FormatInt(n, 10)), nil
		case uint64:
			return json.Number(strconv.FormatUint(n, 10)), nil
		default:
			return "", invalidType("number", v)
		}
	})
}

// Float64 decodes a JSON number as float64.
func Float64() Decoder[float64] {
	return FromFunc(func(ctx context.Context, v any) (float64, error) {
		switch n := v.(type) {
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return 0, invalidType("number", v)
			}
			return f, nil
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case uint64:
			return float64(n), nil
		default:
			return 0, invalidType("number", v)
		}
	})
}

// Int decodes a JSON number as int, rejecting fractional values.
func Int() Decoder[int] {
	return Map(Int64(), func(n int64) int { return int(n) })
}

// Int64 decodes a JSON number as int64, rejecting fractional values.
func Int64() Decoder[int64] {
	return FromFunc(func(ctx context.Context, v any) (int64, error) {
		switch n := v.(type) {
		case json.Number:
			i, err := n.Int64()
			if err != nil {
				return 0, invalidType("integer", v)
			}
			return i, nil
		case float64:
			if n != math.Trunc(n) {
				return 0, invalidType("integer", v)
			}
			return int64(n), nil
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case uint64:
			if n > math.MaxInt64 {
				return 0, invalidType("integer", v)
			}
			return int64(n), nil
		default:
			return 0, invalidType("integer", v)
		}
	})
}

// Null succeeds with v when the input is the null literal and fails otherwise.
func Null[T any](v T) Decoder[T] {
	return FromFunc(func(ctx context.Context, in any) (T, error) {
		if in != nil {
			var zero T
			return zero, invalidType("null", in)
		}
		return v, nil
	})
}

// Value captures the raw sub-value without interpreting it. It never fails.
func Value() Decoder[any] {
	return FromFunc(func(ctx context.Context, v any) (any, error) { return v, nil })
}

// Nullable wraps a decoder to accept the null literal, decoding null to a nil
// pointer and anything else through d.
func Nullable[T any](d Decoder[T]) Decoder[*T] {
	return FromFunc(func(ctx context.Context, v any) (*T, error) {
		if v == nil {
			return nil, nil
		}
		out, err := d.Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		return &out, nil
	})
}

// Field looks up key on the current object node and runs d on the value found
// there. Missing keys fail with CodeRequired; non-object nodes fail with
// CodeNotContainer.
func Field[T any](key string, d Decoder[T]) Decoder[T] {
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
			return zero, Issues{Issue{
				Path:    "/" + escapeToken(key),
				Code:    CodeRequired,
				Message: i18n.T(CodeRequired, map[string]string{"key": key}),
				Params:  map[string]any{"key": key},
			}}
		}
		out, err := d.Decode(ctx, raw)
		if err != nil {
			return zero, prefixIssues(err, key)
		}
		return out, nil
	})
}

// At descends through path and runs d on the node found at its end. Every step
// requires an object node holding the next key. An empty path decodes the
// current node directly.
func At[T any](path []string, d Decoder[T]) Decoder[T] {
	return FromFunc(func(ctx context.Context, v any) (T, error) {
		var zero T
		cur := v
		for i, key := range path {
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
				return zero, Issues{Issue{
					Path:    pointerOf(path[:i+1]),
					Code:    CodeRequired,
					Message: i18n.T(CodeRequired, map[string]string{"key": key}),
					Params:  map[string]any{"key": key},
				}}
			}
			cur = nxt
		}
		out, err := d.Decode(ctx, cur)
		if err != nil {
			return zero, prefixIssuesAt(err, path)
		}
		return out, nil
	})
}

// Index runs d on the i-th element of the current array node.
func Index[T any](i int, d Decoder[T]) Decoder[T] {
	return FromFunc(func(ctx context.Context, v any) (T, error) {
		var zero T
		arr, ok := v.([]any)
		if !ok {
			return zero, invalidType("array", v)
		}
		if i < 0 || i >= len(arr) {
			return zero, Issues{Issue{
				Path:    "/",
				Code:    CodeTooShort,
				Message: i18n.T(CodeTooShort, nil),
				Params:  map[string]any{"index": i, "length": len(arr)},
			}}
		}
		out, err := d.Decode(ctx, arr[i])
		if err != nil {
			return zero, prefixIssues(err, strconv.Itoa(i))
		}
		return out, nil
	})
}

// SliceOf decodes an array node element-wise, stopping at the first failure.
func SliceOf[T any](d Decoder[T]) Decoder[[]T] {
	return FromFunc(func(ctx context.Context, v any) ([]T, error) {
		arr, ok := v.([]any)
		if !ok {
			return nil, invalidType("array", v)
		}
		out := make([]T, 0, len(arr))
		for i, el := range arr {
			ev, err := d.Decode(ctx, el)
			if err != nil {
				return nil, prefixIssues(err, strconv.Itoa(i))
			}
			out = append(out, ev)
		}
		return out, nil
	})
}

// MapOf decodes every value of an object node with d. Keys are visited in
// sorted order so the first failure is deterministic.
func MapOf[T any](d Decoder[T]) Decoder[map[string]T] {
	return FromFunc(func(ctx context.Context, v any) (map[string]T, error) {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, invalidType("object", v)
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]T, len(obj))
		for _, k := range keys {
			ev, err := d.Decode(ctx, obj[k])
			if err != nil {
				return nil, prefixIssues(err, k)
			}
			out[k] = ev
		}
		return out, nil
	})
}

// pointerOf renders a key path as a JSON Pointer ("/" for the empty path).
func pointerOf(tokens []string) string {
	if len(tokens) == 0 {
		return "/"
	}
	p := ""
	for _, t := range tokens {
		p += "/" + escapeToken(t)
	}
	return p
}

// prefixIssuesAt re-roots issue paths under a multi-token pointer prefix.
func prefixIssuesAt(err error, tokens []string) Issues {
	iss := toIssues(err)
	if len(tokens) == 0 {
		return iss
	}
	prefix := pointerOf(tokens)
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" || it.Path == "" {
			it.Path = prefix
		} else {
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
}
