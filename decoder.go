package decpipe

import (
	"context"

	"github.com/reoring/decpipe/i18n"
)

// Decoder describes how to attempt to extract a T from a decoded tree value
// (map[string]any, []any, string, json.Number/float64, bool, nil).
//
// A Decoder is an immutable value: build it once, run it against many inputs,
// share it across goroutines without synchronization. Running the same Decoder
// twice on the same input always yields the same result.
type Decoder[T any] struct {
	fn func(ctx context.Context, v any) (T, error)
}

// FromFunc wraps a raw decode function as a Decoder.
func FromFunc[T any](fn func(ctx context.Context, v any) (T, error)) Decoder[T] {
	return Decoder[T]{fn: fn}
}

// Decode runs the decoder against a tree value. On failure the returned error
// is always an Issues value carrying JSON Pointer paths.
func (d Decoder[T]) Decode(ctx context.Context, v any) (T, error) {
	if d.fn == nil {
		var zero T
		return zero, singleIssue(CodeParseError, "nil decoder")
	}
	return d.fn(ctx, v)
}

// Succeed ignores the input and always yields v.
func Succeed[T any](v T) Decoder[T] {
	return FromFunc(func(ctx context.Context, _ any) (T, error) { return v, nil })
}

// Fail ignores the input and always fails with the given message. It is the
// failure constructor for resolve-stage computations, so the issue carries
// CodeResolveFailed.
func Fail[T any](msg string) Decoder[T] {
	return FromFunc(func(ctx context.Context, _ any) (T, error) {
		var zero T
		return zero, Issues{Issue{Path: "/", Code: CodeResolveFailed, Message: msg}}
	})
}

// Map transforms the success value of d with f.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return FromFunc(func(ctx context.Context, v any) (B, error) {
		a, err := d.Decode(ctx, v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	})
}

// AndThen runs d and, on success, runs the decoder produced by f against the
// same original input. When d fails, f is never invoked.
func AndThen[A, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return FromFunc(func(ctx context.Context, v any) (B, error) {
		a, err := d.Decode(ctx, v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).Decode(ctx, v)
	})
}

// OneOf tries each alternative in order and yields the first success. When
// every alternative fails, the failure lists each attempt's issues as causes.
func OneOf[T any](ds ...Decoder[T]) Decoder[T] {
	return FromFunc(func(ctx context.Context, v any) (T, error) {
		var zero T
		var collected Issues
		for _, d := range ds {
			out, err := d.Decode(ctx, v)
			if err == nil {
				return out, nil
			}
			collected = AppendIssues(collected, toIssues(err)...)
		}
		head := Issue{Path: "/", Code: CodeOneOf, Message: i18n.T(CodeOneOf, nil), Params: map[string]any{"alternatives": len(ds)}}
		return zero, append(Issues{head}, collected...)
	})
}
