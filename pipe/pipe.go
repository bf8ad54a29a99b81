package pipe

import (
	"context"

	decpipe "github.com/reoring/decpipe"
)

// Decode lifts an N-ary curried constructor into a pipeline decoder that
// always succeeds with the constructor itself, ready to receive applications.
func Decode[F any](ctor F) decpipe.Decoder[F] {
	return decpipe.Succeed(ctor)
}

// Custom is the applicative apply every other combinator reduces to. It runs
// the pipeline decoder first (yielding the pending function) and the argument
// decoder second, against the same input, and applies one to the other. The
// first failure, in that order, is propagated verbatim.
func Custom[A, B any](arg decpipe.Decoder[A], p decpipe.Decoder[func(A) B]) decpipe.Decoder[B] {
	return decpipe.FromFunc(func(ctx context.Context, v any) (B, error) {
		f, err := p.Decode(ctx, v)
		if err != nil {
			var zero B
			return zero, err
		}
		a, err := arg.Decode(ctx, v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	})
}

// Required feeds the pipeline from a mandatory object field. Absent keys and
// invalid values both fail; null is not special-cased (pair with a
// null-aware decoder such as decpipe.Nullable to accept it).
func Required[A, B any](key string, d decpipe.Decoder[A], p decpipe.Decoder[func(A) B]) decpipe.Decoder[B] {
	return Custom(decpipe.Field(key, d), p)
}

// RequiredAt is Required at the end of a nested key path.
func RequiredAt[A, B any](path []string, d decpipe.Decoder[A], p decpipe.Decoder[func(A) B]) decpipe.Decoder[B] {
	return Custom(decpipe.At(path, d), p)
}

// Optional feeds the pipeline from an object field that may be absent, in
// which case fallback is used. A present-but-invalid value still fails; a
// null value resolves through d first and falls back only when d rejects
// null. See decpipe.OptionalField for the full decision table.
func Optional[A, B any](key string, d decpipe.Decoder[A], fallback A, p decpipe.Decoder[func(A) B]) decpipe.Decoder[B] {
	return Custom(decpipe.OptionalField(key, d, fallback), p)
}

// OptionalAt is Optional at the end of a nested key path.
func OptionalAt[A, B any](path []string, d decpipe.Decoder[A], fallback A, p decpipe.Decoder[func(A) B]) decpipe.Decoder[B] {
	return Custom(decpipe.OptionalFieldAt(path, d, fallback), p)
}

// Hardcoded feeds the pipeline a constant without consuming any input.
func Hardcoded[A, B any](v A, p decpipe.Decoder[func(A) B]) decpipe.Decoder[B] {
	return Custom(decpipe.Succeed(v), p)
}

// Resolve flattens a decoder that produces a decoder, running the inner one
// against the same original input. The inner decoder is never built when the
// structural (outer) decode failed, which makes it the place for cross-field
// validation: build decpipe.Succeed or decpipe.Fail from already-decoded
// fields.
func Resolve[T any](p decpipe.Decoder[decpipe.Decoder[T]]) decpipe.Decoder[T] {
	return decpipe.AndThen(p, func(inner decpipe.Decoder[T]) decpipe.Decoder[T] {
		return inner
	})
}
