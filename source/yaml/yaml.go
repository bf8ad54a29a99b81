package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	decpipe "github.com/reoring/decpipe"
)

// Bytes wraps a YAML document as a decpipe.Source. The decoded node is
// normalized to the JSON-like tree shape (string-keyed maps, []any, scalars)
// so the same decoders run over JSON and YAML input.
func Bytes(b []byte) decpipe.Source { return bytesSource{b: b} }

type bytesSource struct{ b []byte }

func (s bytesSource) Tree() (any, error) {
	var node any
	if err := yaml.Unmarshal(s.b, &node); err != nil {
		return nil, err
	}
	return normalize(node), nil
}

// normalize rewrites yaml.v3 output into the tree-value shape. Non-string map
// keys are stringified the way YAML renders them.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = normalize(el)
		}
		return out
	default:
		return v
	}
}
