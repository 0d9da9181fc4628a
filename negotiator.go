package colscan

// Negotiate joins a sequence of per-file schemas into one consensus
// schema, taking the lattice least-upper-bound of every column observed
// across all inputs. Negotiate is commutative and associative: schemas
// may be supplied in any order and combined in any grouping and the
// result is the same. An empty Schema in the input (e.g. from a file that
// failed to scan) contributes nothing, since joining against Unknown for
// every column it lacks is the lattice identity.
func Negotiate(schemas []*Schema) *Schema {
	result := NewSchema()
	for _, schema := range schemas {
		if schema == nil {
			continue
		}
		for _, col := range schema.order {
			current, known := result.Type(col)
			if !known {
				current = Unknown
			}
			result.set(col, join(current, schema.types[col]))
		}
	}
	return result
}
