//go:build !gojson

package gojson

import (
	"io"

	decpipe "github.com/reoring/decpipe"
	jsonsrc "github.com/reoring/decpipe/source/json"
)

// Driver returns a stub driver when the gojson tag is not enabled. It
// delegates to the encoding/json-based source so callers can wire the driver
// unconditionally.
func Driver() decpipe.JSONDriver { return stub{} }

type stub struct{}

func (stub) DecodeBytes(b []byte, opt decpipe.DecodeOpt) (any, error) {
	return jsonsrc.DecodeBytes(b, stubOptions(opt))
}

func (stub) DecodeReader(r io.Reader, opt decpipe.DecodeOpt) (any, error) {
	return jsonsrc.DecodeReader(r, stubOptions(opt))
}

func (stub) Name() string { return "encoding/json (gojson tag disabled)" }

func stubOptions(opt decpipe.DecodeOpt) jsonsrc.Options {
	return jsonsrc.Options{
		MaxDepth:      opt.MaxDepth,
		MaxBytes:      opt.MaxBytes,
		Float64:       opt.Number == decpipe.NumberFloat64,
		RejectDupKeys: opt.OnDuplicateKey == decpipe.Error,
	}
}
