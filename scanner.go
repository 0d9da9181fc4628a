package colscan

// Schema is an ordered mapping from column name to inferred LogicalType.
// Column order follows first-seen order in the underlying file.
type Schema struct {
	order []string
	types map[string]LogicalType
}

// NewSchema returns an empty Schema.
func NewSchema() *Schema {
	return &Schema{types: make(map[string]LogicalType)}
}

// Columns returns the schema's column names in first-seen order.
func (s *Schema) Columns() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Type returns the inferred LogicalType for column, or (Unknown, false) if
// the column was never observed.
func (s *Schema) Type(column string) (LogicalType, bool) {
	t, ok := s.types[column]
	return t, ok
}

// Len reports the number of columns in the schema.
func (s *Schema) Len() int { return len(s.order) }

// set records or updates a column's type, preserving first-seen order.
func (s *Schema) set(column string, t LogicalType) {
	if _, ok := s.types[column]; !ok {
		s.order = append(s.order, column)
	}
	s.types[column] = t
}

// Map returns the schema as a plain map[string]string of column name to
// type tag, for callers that want the §6 output shape directly.
func (s *Schema) Map() map[string]string {
	out := make(map[string]string, len(s.order))
	for _, c := range s.order {
		out[c] = s.types[c].String()
	}
	return out
}

// Equal reports whether s and other have the same columns mapped to the
// same types, ignoring column order.
func (s *Schema) Equal(other *Schema) bool {
	if s.Len() != other.Len() {
		return false
	}
	for col, t := range s.types {
		ot, ok := other.types[col]
		if !ok || ot != t {
			return false
		}
	}
	return true
}

// scanner drives a classifier over a frame, maintaining one lattice state
// per column, and returns the resulting Schema. There is one scanner per
// file; it holds no state shared across files, so the Processor may run
// many concurrently.
type scanner struct {
	fr    frame
	c     classifier
	fixed bool // true for CSV: columns are fixed at header time
}

func newCSVScanner(fr frame) *scanner {
	return &scanner{fr: fr, c: csvClassifier{}, fixed: true}
}

func newJSONScanner(fr frame) *scanner {
	return &scanner{fr: fr, c: jsonClassifier{}, fixed: false}
}

// headerFrame is implemented by frames with columns fixed up front (CSV),
// so the scanner can seed every header column to Unknown even if the file
// has no data rows at all.
type headerFrame interface {
	header() []string
}

// scan consumes the entire frame and returns the final schema. For CSV, a
// frame with zero header columns (a totally empty file) surfaces as
// ErrEmptyFile; a header with zero data rows reports every column as
// Unknown.
func (sc *scanner) scan() (*Schema, error) {
	schema := NewSchema()
	hadHeader := true

	if hf, ok := sc.fr.(headerFrame); ok {
		h := hf.header()
		hadHeader = len(h) > 0
		for _, col := range h {
			schema.set(col, Unknown)
		}
	}

	for {
		rec, ok, err := sc.fr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		for i, col := range rec.columns {
			current, known := schema.Type(col)
			if !known {
				current = Unknown
				schema.set(col, Unknown)
			}
			next := refine(current, rec.values[i], sc.c)
			schema.set(col, next)
		}
	}

	if sc.fixed && !hadHeader {
		return nil, ErrEmptyFile
	}
	return schema, nil
}
