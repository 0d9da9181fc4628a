package colscan

import (
	"strings"

	json "github.com/goccy/go-json"
)

// jsonClassifier classifies natively decoded JSON values: string,
// json.Number, bool, nil, []any, or orderedObject. Nested objects are
// flattened away by the JSON Loader before values reach the Scanner,
// except those nested deeper than maxFlattenDepth, which arrive here as
// orderedObject. String values are also checked against the shared null
// and boolean vocabularies.
type jsonClassifier struct{}

func (jsonClassifier) IsNull(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, isNull := nullLiterals[s]
	return isNull
}

func (jsonClassifier) IsInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		if strings.ContainsAny(string(n), ".eE") {
			f, err := n.Float64()
			return err == nil && f == float64(int64(f))
		}
		_, err := n.Int64()
		return err == nil
	case float64:
		return n == float64(int64(n))
	default:
		return false
	}
}

func (jsonClassifier) IsFloat(v any) bool {
	switch v.(type) {
	case json.Number, float64:
		return true
	default:
		return false
	}
}

func (jsonClassifier) IsBoolean(v any) bool {
	switch b := v.(type) {
	case bool:
		return true
	case string:
		_, isBool := booleanLiterals[b]
		return isBool
	default:
		return false
	}
}

func (jsonClassifier) DateOrTimestamp(v any) (LogicalType, bool) {
	s, ok := v.(string)
	if !ok {
		return Unknown, false
	}
	return parseDateOrTimestamp(s)
}

// IsJSON reports whether v is a native composite value: an array, or an
// object left unflattened (an orderedObject nested past maxFlattenDepth,
// or a map[string]any). Flattening never descends into arrays, so an array value reaching the
// Scanner is always classified as JSON here.
func (jsonClassifier) IsJSON(v any) bool {
	switch v.(type) {
	case []any, map[string]any, orderedObject:
		return true
	default:
		return false
	}
}
