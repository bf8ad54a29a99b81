package decpipe

// Package decpipe builds typed decoders for JSON-like tree values
// (object/array/string/number/bool/null) out of small, composable pieces.
//
// - Decoder[T] is an immutable description of how to extract a T from a tree
// - A stable error model via Issues (JSON Pointer, code, message)
// - Pipeline combinators under pipe/ (Required/Optional/Hardcoded/Custom/Resolve)
// - Pluggable tree sources: encoding/json by default, goccy/go-json behind the
//   gojson build tag, YAML via source/yaml
//
// Design policy:
// - Keep only public APIs in the root package; pipeline combinators live in pipe/.
// - Decoders are pure values: safe to build once and share across goroutines.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d := pipe.Required("name", decpipe.String(),
//		pipe.Decode(func(name string) user { return user{Name: name} }))
//	u, err := decpipe.DecodeJSON(ctx, d, data)
