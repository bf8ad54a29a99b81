package decpipe

import "context"

// Map2 runs two decoders against the same input left to right and combines
// their results with f. The first failure wins.
func Map2[A, B, T any](f func(A, B) T, da Decoder[A], db Decoder[B]) Decoder[T] {
	return FromFunc(func(ctx context.Context, v any) (T, error) {
		var zero T
		a, err := da.Decode(ctx, v)
		if err != nil {
			return zero, err
		}
		b, err := db.Decode(ctx, v)
		if err != nil {
			return zero, err
		}
		return f(a, b), nil
	})
}

// Map3 is Map2 for three decoders.
func Map3[A, B, C, T any](f func(A, B, C) T, da Decoder[A], db Decoder[B], dc Decoder[C]) Decoder[T] {
	return Map2(func(ab func(C) T, c C) T { return ab(c) },
		Map2(func(a A, b B) func(C) T {
			return func(c C) T { return f(a, b, c) }
		}, da, db), dc)
}

// Map4 is Map2 for four decoders.
func Map4[A, B, C, D, T any](f func(A, B, C, D) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D]) Decoder[T] {
	return Map2(func(abc func(D) T, d D) T { return abc(d) },
		Map3(func(a A, b B, c C) func(D) T {
			return func(d D) T { return f(a, b, c, d) }
		}, da, db, dc), dd)
}

// Map5 is Map2 for five decoders.
func Map5[A, B, C, D, E, T any](f func(A, B, C, D, E) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E]) Decoder[T] {
	return Map2(func(abcd func(E) T, e E) T { return abcd(e) },
		Map4(func(a A, b B, c C, d D) func(E) T {
			return func(e E) T { return f(a, b, c, d, e) }
		}, da, db, dc, dd), de)
}
