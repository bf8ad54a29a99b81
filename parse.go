package decpipe

import "context"

// DecodeFrom is the primary entry point. It materializes a tree value from
// the Source and runs the decoder against it. Failures are always Issues.
func DecodeFrom[T any](ctx context.Context, d Decoder[T], src Source) (T, error) {
	var zero T
	if src == nil {
		return zero, singleIssue(CodeParseError, "nil source")
	}
	v, err := src.Tree()
	if err != nil {
		return zero, sourceIssues(err)
	}
	out, err := d.Decode(ctx, v)
	if err != nil {
		return zero, toIssues(err)
	}
	return out, nil
}

// DecodeJSON decodes a JSON byte slice through the global JSON driver.
func DecodeJSON[T any](ctx context.Context, d Decoder[T], b []byte, opts ...DecodeOpt) (T, error) {
	return DecodeFrom(ctx, d, JSONBytes(b, opts...))
}

// DecodeJSONString decodes a JSON string through the global JSON driver.
func DecodeJSONString[T any](ctx context.Context, d Decoder[T], s string, opts ...DecodeOpt) (T, error) {
	return DecodeFrom(ctx, d, JSONBytes([]byte(s), opts...))
}
