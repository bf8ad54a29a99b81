package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Options configures tree construction from a JSON token stream.
type Options struct {
	MaxDepth      int   // 0 means unlimited
	MaxBytes      int64 // 0 means unlimited
	Float64       bool  // materialize numbers as float64 instead of json.Number
	RejectDupKeys bool  // fail on duplicate object keys
}

// ErrMaxDepth is returned when nesting exceeds Options.MaxDepth.
var ErrMaxDepth = errors.New("json source: max depth exceeded")

// ErrMaxBytes is returned when the input exceeds Options.MaxBytes.
var ErrMaxBytes = errors.New("json source: max bytes exceeded")

// DuplicateKeyError reports a repeated object key when RejectDupKeys is set.
type DuplicateKeyError struct{ Key string }

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("json source: duplicate key %q", e.Key)
}

// DecodeBytes materializes a byte slice of JSON into a tree value.
func DecodeBytes(b []byte, opt Options) (any, error) {
	return DecodeReader(bytes.NewReader(b), opt)
}

// DecodeReader materializes a single JSON value from r into a tree value
// (map[string]any, []any, string, json.Number/float64, bool, nil). Trailing
// non-whitespace input is rejected.
func DecodeReader(r io.Reader, opt Options) (any, error) {
	if opt.MaxBytes > 0 {
		r = &budgetReader{r: r, n: opt.MaxBytes}
	}
	dec := json.NewDecoder(r)
	if !opt.Float64 {
		dec.UseNumber()
	}
	v, err := decodeValue(dec, opt, 0)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("json source: trailing data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder, opt Options, depth int) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return decodeFromToken(dec, tok, opt, depth)
}

func decodeFromToken(dec *json.Decoder, tok json.Token, opt Options, depth int) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec, opt, depth+1)
		case '[':
			return decodeArray(dec, opt, depth+1)
		}
		return nil, fmt.Errorf("json source: unexpected delimiter %q", t.String())
	case string:
		return t, nil
	case bool:
		return t, nil
	case json.Number:
		return t, nil
	case float64:
		return t, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("json source: unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder, opt Options, depth int) (any, error) {
	if opt.MaxDepth > 0 && depth > opt.MaxDepth {
		return nil, ErrMaxDepth
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
				return nil, &DuplicateKeyError{Key: key}
			}
		}
		v, err := decodeValue(dec, opt, depth)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeArray(dec *json.Decoder, opt Options, depth int) (any, error) {
	if opt.MaxDepth > 0 && depth > opt.MaxDepth {
		return nil, ErrMaxDepth
	}
	arr := []any{}
	for dec.More() {
		v, err := decodeValue(dec, opt, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	// consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// budgetReader enforces MaxBytes at the reader level so oversized inputs stop
// streaming before the tree is built.
type budgetReader struct {
	r io.Reader
	n int64
}

func (b *budgetReader) Read(p []byte) (int, error) {
	if b.n <= 0 {
		return 0, ErrMaxBytes
	}
	if int64(len(p)) > b.n {
		p = p[:b.n]
	}
	n, err := b.r.Read(p)
	b.n -= int64(n)
	return n, err
}
