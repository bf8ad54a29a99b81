package decpipe

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"   // value present but of the wrong kind
	CodeRequired      = "required"       // required key/path absent
	CodeNotContainer  = "not_container"  // field lookup attempted on a non-object node
	CodeResolveFailed = "resolve_failed" // failure raised by a resolve-stage computation
	CodeOneOf         = "one_of"         // every OneOf alternative failed
	CodeTooShort      = "too_short"      // array index out of range
	CodeDuplicateKey  = "duplicate_key"  // duplicate object key in the input source
	CodeTruncated     = "truncated"      // input exceeded the configured byte budget
	CodeParseError    = "parse_error"    // malformed input source
)

// Issue represents a single decode failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected kinds, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"key":"name", "got":"array"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of decode failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ---- internal helpers ----

func singleIssue(code, msg string) Issues {
	return Issues{Issue{Path: "/", Code: code, Message: msg}}
}

// escapeToken escapes a JSON Pointer reference token per RFC 6901.
func escapeToken(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// prefixIssues re-roots every Issue path in err under the given pointer token.
// A child path of "/" denotes the child node itself and collapses to "/token".
// Non-Issues errors are wrapped as a parse_error issue at the token.
func prefixIssues(err error, token string) Issues {
	prefix := "/" + escapeToken(token)
	iss, ok := AsIssues(err)
	if !ok {
		return Issues{Issue{Path: prefix, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
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

// toIssues normalizes an arbitrary error into Issues at the root path.
func toIssues(err error) Issues {
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
}
