package colscan

import "testing"

func schemaOf(t *testing.T, cols map[string]LogicalType) *Schema {
	t.Helper()
	s := NewSchema()
	for col, typ := range cols {
		s.set(col, typ)
	}
	return s
}

func TestNegotiateUnionsColumns(t *testing.T) {
	t.Parallel()

	a := schemaOf(t, map[string]LogicalType{"id": Integer, "name": String})
	b := schemaOf(t, map[string]LogicalType{"id": Integer, "score": Float})

	got := Negotiate([]*Schema{a, b})
	if got.Len() != 3 {
		t.Fatalf("negotiated schema has %d columns, want 3", got.Len())
	}
	if typ, _ := got.Type("name"); typ != String {
		t.Errorf("name = %s, want string", typ)
	}
	if typ, _ := got.Type("score"); typ != Float {
		t.Errorf("score = %s, want float", typ)
	}
}

func TestNegotiateJoinsConflictingTypes(t *testing.T) {
	t.Parallel()

	a := schemaOf(t, map[string]LogicalType{"v": Integer})
	b := schemaOf(t, map[string]LogicalType{"v": Float})
	c := schemaOf(t, map[string]LogicalType{"v": String})

	got := Negotiate([]*Schema{a, b, c})
	if typ, _ := got.Type("v"); typ != String {
		t.Errorf("v = %s, want string (absorbed)", typ)
	}
}

func TestNegotiateIgnoresNilSchemas(t *testing.T) {
	t.Parallel()

	a := schemaOf(t, map[string]LogicalType{"v": Integer})
	got := Negotiate([]*Schema{a, nil})
	if typ, _ := got.Type("v"); typ != Integer {
		t.Errorf("v = %s, want integer", typ)
	}
}

func TestNegotiateIsOrderIndependent(t *testing.T) {
	t.Parallel()

	a := schemaOf(t, map[string]LogicalType{"v": Integer})
	b := schemaOf(t, map[string]LogicalType{"v": Float})
	c := schemaOf(t, map[string]LogicalType{"v": Date})

	forward := Negotiate([]*Schema{a, b, c})
	backward := Negotiate([]*Schema{c, b, a})

	ft, _ := forward.Type("v")
	bt, _ := backward.Type("v")
	if ft != bt {
		t.Errorf("Negotiate is order-dependent: forward=%s backward=%s", ft, bt)
	}
}

func TestNegotiateEmptyInput(t *testing.T) {
	t.Parallel()

	got := Negotiate(nil)
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}
