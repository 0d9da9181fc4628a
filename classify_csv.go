package colscan

import (
	"regexp"

	json "github.com/goccy/go-json"
)

// integerPattern matches unsigned digits optionally followed by a decimal
// point and trailing zeros. A leading sign is deliberately rejected: a
// signed whole number such as "-3" classifies as float, never integer.
var integerPattern = regexp.MustCompile(`^(\d+)(\.0*)?$`)

// floatPattern matches any signed or unsigned decimal or exponential
// number. Every string integerPattern accepts also satisfies this
// pattern.
var floatPattern = regexp.MustCompile(`^[+-]?((\d+\.\d*)|(\.\d+)|(\d+))([eE][+-]?\d+)?$`)

// csvClassifier classifies raw CSV field strings.
type csvClassifier struct{}

func (csvClassifier) IsNull(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, isNull := nullLiterals[s]
	return isNull
}

func (csvClassifier) IsInteger(v any) bool {
	s, ok := v.(string)
	return ok && integerPattern.MatchString(s)
}

func (csvClassifier) IsFloat(v any) bool {
	s, ok := v.(string)
	return ok && floatPattern.MatchString(s)
}

func (csvClassifier) IsBoolean(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, isBool := booleanLiterals[s]
	return isBool
}

func (csvClassifier) DateOrTimestamp(v any) (LogicalType, bool) {
	s, ok := v.(string)
	if !ok {
		return Unknown, false
	}
	return parseDateOrTimestamp(s)
}

func (csvClassifier) IsJSON(v any) bool {
	s, ok := v.(string)
	if !ok || len(s) == 0 {
		return false
	}
	if s[0] != '{' && s[0] != '[' {
		return false
	}
	return json.Valid([]byte(s))
}
