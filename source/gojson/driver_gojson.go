//go:build gojson

package gojson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	decpipe "github.com/reoring/decpipe"
	jsonsrc "github.com/reoring/decpipe/source/json"
)

// Driver returns a decpipe.JSONDriver backed by goccy/go-json.
func Driver() decpipe.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) DecodeBytes(b []byte, opt decpipe.DecodeOpt) (any, error) {
	return DecodeReader(bytes.NewReader(b), opt)
}

func (driverGoJSON) DecodeReader(r io.Reader, opt decpipe.DecodeOpt) (any, error) {
	return DecodeReader(r, opt)
}

func (driverGoJSON) Name() string { return "go-json" }

// DecodeReader materializes a single JSON value from r using the go-json
// token stream. Limit enforcement and error types match source/json.
func DecodeReader(r io.Reader, opt decpipe.DecodeOpt) (any, error) {
	jopt := jsonsrc.Options{
		MaxDepth:      opt.MaxDepth,
		MaxBytes:      opt.MaxBytes,
		Float64:       opt.Number == decpipe.NumberFloat64,
		RejectDupKeys: opt.OnDuplicateKey == decpipe.Error,
	}
	if jopt.MaxBytes > 0 {
		r = &budgetReader{r: r, n: jopt.MaxBytes}
	}
	dec := j.NewDecoder(r)
	if !jopt.Float64 {
		dec.UseNumber()
	}
	v, err := decodeValue(dec, jopt, 0)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("json source: trailing data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *j.Decoder, opt jsonsrc.Options, depth int) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return decodeObject(dec, opt, depth+1)
		case '[':
			return decodeArray(dec, opt, depth+1)
		}
		return nil, fmt.Errorf("json source: unexpected delimiter %v", t)
	case string:
		return t, nil
	case bool:
		return t, nil
	case j.Number:
		return jsonNumber(string(t), opt)
	case float64:
		return t, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("json source: unexpected token %v", tok)
}

func jsonNumber(s string, opt jsonsrc.Options) (any, error) {
	if opt.Float64 {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("json source: invalid number %q", s)
		}
		return f, nil
	}
	return json.Number(s), nil
}

func decodeObject(dec *j.Decoder, opt jsonsrc.Options, depth int) (any, error) {
	if opt.MaxDepth > 0 && depth > opt.MaxDepth {
		return nil, jsonsrc.ErrMaxDepth
	}
	m := make(map[string]any)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("json source: expected object key, got %v", keyTok)
		}
		if opt.RejectDupKeys {
			if _, dup := m[key]; dup {
				return nil, &jsonsrc.DuplicateKeyError{Key: key}
			}
		}
		v, err := decodeValue(dec, opt, depth)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeArray(dec *j.Decoder, opt jsonsrc.Options, depth int) (any, error) {
	if opt.MaxDepth > 0 && depth > opt.MaxDepth {
		return nil, jsonsrc.ErrMaxDepth
	}
	arr := []any{}
	for dec.More() {
		v, err := decodeValue(dec, opt, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// budgetReader mirrors the source/json byte budget so both drivers surface
// jsonsrc.ErrMaxBytes for oversized input.
type budgetReader struct {
	r io.Reader
	n int64
}

func (b *budgetReader) Read(p []byte) (int, error) {
	if b.n <= 0 {
		return 0, jsonsrc.ErrMaxBytes
	}
	if int64(len(p)) > b.n {
		p = p[:b.n]
	}
	n, err := b.r.Read(p)
	b.n -= int64(n)
	return n, err
}
