package colscan

// classifier is the per-format predicate set the Scanner drives refine()
// with. There are exactly two implementations: csvClassifier (raw CSV
// field strings) and jsonClassifier (natively decoded JSON values). Each
// classifier is a pure, stateless predicate set — no runtime type
// reflection is needed to pick between them, since the Loader that
// produces v already knows which one applies.
type classifier interface {
	// IsNull reports whether v is a recognized null spelling.
	IsNull(v any) bool
	// IsInteger reports whether v is a whole number in the format this
	// classifier accepts.
	IsInteger(v any) bool
	// IsFloat reports whether v is any numeric value, integer or
	// fractional.
	IsFloat(v any) bool
	// IsBoolean reports whether v is one of the fixed boolean spellings.
	IsBoolean(v any) bool
	// DateOrTimestamp attempts a lenient ISO-like parse of v. ok is false
	// if v does not parse as a date/time at all; otherwise the returned
	// LogicalType is Date or Timestamp depending on whether the parsed
	// time-of-day is exactly midnight.
	DateOrTimestamp(v any) (LogicalType, bool)
	// IsJSON reports whether v is itself a JSON document (CSV path) or a
	// native composite JSON value (JSON path).
	IsJSON(v any) bool
}

// nullLiterals is the fixed null-value vocabulary shared by both
// classifiers. Membership is exact string equality; values are never
// trimmed before the check.
var nullLiterals = map[string]struct{}{
	"":     {},
	"NULL": {},
	"Null": {},
	"null": {},
	"None": {},
	"none": {},
	"NA":   {},
	"N/A":  {},
}

// booleanLiterals is the fixed boolean-value vocabulary shared by both
// classifiers.
var booleanLiterals = map[string]struct{}{
	"True":  {},
	"False": {},
	"true":  {},
	"false": {},
	"t":     {},
	"f":     {},
	"T":     {},
	"F":     {},
	"1":     {},
	"0":     {},
}
