package decpipe

import (
	"errors"
	"io"
	"sync"

	jsonsrc "github.com/reoring/decpipe/source/json"
)

// NumberMode dictates how numbers are materialized into the tree.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default).
	NumberFloat64                      // Fast mode (with potential precision loss).
)

// Severity expresses the severity level for source-enforcement findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// DecodeOpt bundles tree-source options. Depth and size bounding live here,
// before a tree is ever handed to a decoder.
type DecodeOpt struct {
	Number         NumberMode
	MaxDepth       int   // 0 means unlimited
	MaxBytes       int64 // 0 means unlimited
	OnDuplicateKey Severity
}

// Source abstracts over polymorphic inputs that can yield a fully
// materialized tree value.
type Source interface {
	Tree() (any, error)
}

// JSONDriver converts JSON input into a tree value via a pluggable SPI. The
// default implementation is based on encoding/json and may be swapped with
// SetJSONDriver (for example with the goccy/go-json driver in source/gojson).
type JSONDriver interface {
	DecodeBytes(b []byte, opt DecodeOpt) (any, error)
	DecodeReader(r io.Reader, opt DecodeOpt) (any, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the active global JSON driver.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	defer jsonDriverMu.RUnlock()
	return currentJSONDriver
}

type defaultJSONDriver struct{}

func (defaultJSONDriver) DecodeBytes(b []byte, opt DecodeOpt) (any, error) {
	return jsonsrc.DecodeBytes(b, toSourceOptions(opt))
}

func (defaultJSONDriver) DecodeReader(r io.Reader, opt DecodeOpt) (any, error) {
	return jsonsrc.DecodeReader(r, toSourceOptions(opt))
}

func (defaultJSONDriver) Name() string { return "encoding/json" }

func toSourceOptions(opt DecodeOpt) jsonsrc.Options {
	return jsonsrc.Options{
		MaxDepth:      opt.MaxDepth,
		MaxBytes:      opt.MaxBytes,
		Float64:       opt.Number == NumberFloat64,
		RejectDupKeys: opt.OnDuplicateKey == Error,
	}
}

// JSONBytes wraps a byte slice as a Source routed through the global driver.
func JSONBytes(b []byte, opts ...DecodeOpt) Source {
	return jsonBytesSource{b: b, opt: lastOpt(opts)}
}

// JSONReader wraps an io.Reader as a Source routed through the global driver.
func JSONReader(r io.Reader, opts ...DecodeOpt) Source {
	return jsonReaderSource{r: r, opt: lastOpt(opts)}
}

type jsonBytesSource struct {
	b   []byte
	opt DecodeOpt
}

func (s jsonBytesSource) Tree() (any, error) {
	return CurrentJSONDriver().DecodeBytes(s.b, s.opt)
}

type jsonReaderSource struct {
	r   io.Reader
	opt DecodeOpt
}

func (s jsonReaderSource) Tree() (any, error) {
	return CurrentJSONDriver().DecodeReader(s.r, s.opt)
}

func lastOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return DecodeOpt{}
}

// sourceIssues maps driver errors onto the Issues model.
func sourceIssues(err error) Issues {
	switch {
	case errors.Is(err, jsonsrc.ErrMaxDepth), errors.Is(err, jsonsrc.ErrMaxBytes):
		return Issues{Issue{Path: "/", Code: CodeTruncated, Message: err.Error(), Cause: err}}
	default:
		var dup *jsonsrc.DuplicateKeyError
		if errors.As(err, &dup) {
			return Issues{Issue{
				Path:    "/",
				Code:    CodeDuplicateKey,
				Message: err.Error(),
				Cause:   err,
				Params:  map[string]any{"key": dup.Key},
			}}
		}
		return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
}
