// Package colscan infers a column-level logical schema for CSV and JSON
// files by streaming each file once and narrowing a per-column type
// estimate as records are observed, then negotiates several per-file
// schemas into one consensus schema.
package colscan

// LogicalType is one member of the fixed 8-value type lattice used to
// describe a column. Unknown is the lattice's bottom element and is the
// identity during negotiation; String is the top element and absorbs any
// other type.
type LogicalType int

const (
	// Unknown is the lattice bottom: a column with zero non-null
	// observations.
	Unknown LogicalType = iota
	// Integer is a whole number with no leading sign; a signed value
	// such as "-3" classifies as Float instead.
	Integer
	// Float is any decimal or exponential number, including every
	// Integer value.
	Float
	// Boolean is one of the fixed boolean literal spellings.
	Boolean
	// Date is a parsed date-or-timestamp value whose time-of-day is
	// exactly midnight.
	Date
	// Timestamp is a parsed date-or-timestamp value with a non-midnight
	// time-of-day.
	Timestamp
	// JSON is a value that itself parses as a JSON document, or a native
	// JSON array/object.
	JSON
	// String is the lattice top: the fallback for any value that does
	// not narrow cleanly to a more specific type.
	String
)

// String returns the lattice member's external name, matching the
// type_tag vocabulary used in output schemas.
func (t LogicalType) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case Date:
		return "date"
	case Timestamp:
		return "timestamp"
	case JSON:
		return "json"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// MarshalJSON renders a LogicalType as its string tag.
func (t LogicalType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// join computes the lattice least-upper-bound of a and b. It is
// commutative, associative, idempotent, treats Unknown as the identity
// element, and treats String as the absorbing element.
func join(a, b LogicalType) LogicalType {
	if a == Unknown {
		return b
	}
	if b == Unknown {
		return a
	}
	if a == b {
		return a
	}
	if a == String || b == String {
		return String
	}

	// Normalize so the pair is checked in one direction only.
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	switch {
	case lo == Integer && hi == Float:
		return Float
	case lo == Date && hi == Timestamp:
		return Timestamp
	default:
		// Any other cross-peer pairing (Integer/Boolean, Float/JSON,
		// Boolean/Date, etc.) has no common ancestor below String.
		return String
	}
}

// refine applies one observation to a column's current lattice state and
// returns the next state. refine is monotone: the result is always >=
// current in the lattice. c supplies the per-format predicates
// used to interpret v.
func refine(current LogicalType, v any, c classifier) LogicalType {
	if c.IsNull(v) {
		return current
	}

	if current == Unknown {
		return bootstrap(v, c)
	}

	switch current {
	case String:
		return String
	case Integer:
		switch {
		case c.IsInteger(v):
			return Integer
		case c.IsFloat(v):
			return Float
		case c.IsBoolean(v):
			return Boolean
		default:
			return String
		}
	case Float:
		switch {
		case c.IsFloat(v):
			return Float
		case c.IsBoolean(v):
			return Boolean
		default:
			return String
		}
	case Date:
		if dt, ok := c.DateOrTimestamp(v); ok {
			if dt == Timestamp {
				return Timestamp
			}
			return Date
		}
		if c.IsBoolean(v) {
			return Boolean
		}
		return String
	case Timestamp:
		if _, ok := c.DateOrTimestamp(v); ok {
			return Timestamp
		}
		if c.IsBoolean(v) {
			return Boolean
		}
		return String
	case JSON:
		switch {
		case c.IsJSON(v):
			return JSON
		case c.IsBoolean(v):
			return Boolean
		default:
			return String
		}
	case Boolean:
		if c.IsBoolean(v) {
			return Boolean
		}
		return String
	default:
		return String
	}
}

// bootstrap classifies the first non-null observation of a column.
// Predicate order is fixed: numeric, then temporal, then JSON, then
// boolean, then string. Boolean is checked last among the non-string
// candidates because "1" and "0" also satisfy the numeric predicates,
// and numeric/temporal/json win the tie.
func bootstrap(v any, c classifier) LogicalType {
	if c.IsFloat(v) {
		if c.IsInteger(v) {
			return Integer
		}
		return Float
	}
	if dt, ok := c.DateOrTimestamp(v); ok {
		return dt
	}
	if c.IsJSON(v) {
		return JSON
	}
	if c.IsBoolean(v) {
		return Boolean
	}
	return String
}
