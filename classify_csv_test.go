package colscan

import "testing"

func TestCSVClassifierIsNull(t *testing.T) {
	t.Parallel()

	c := csvClassifier{}
	for _, s := range []string{"", "NULL", "Null", "null", "None", "none", "NA", "N/A"} {
		if !c.IsNull(s) {
			t.Errorf("IsNull(%q) = false, want true", s)
		}
	}
	for _, s := range []string{" ", "null ", "nil", "NaN"} {
		if c.IsNull(s) {
			t.Errorf("IsNull(%q) = true, want false (no trimming, exact match only)", s)
		}
	}
}

func TestCSVClassifierIsInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    string
		want bool
	}{
		{"0", true},
		{"42", true},
		{"42.0", true},
		{"42.00", true},
		{"-42", false}, // leading sign rejected
		{"+42", false},
		{"42.5", false},
		{"1e3", false},
		{"", false},
		{"abc", false},
	}

	c := csvClassifier{}
	for _, tt := range tests {
		if got := c.IsInteger(tt.v); got != tt.want {
			t.Errorf("IsInteger(%q) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestCSVClassifierIsFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    string
		want bool
	}{
		{"42", true},
		{"-42", true},
		{"+42", true},
		{"42.5", true},
		{"-42.5", true},
		{".5", true},
		{"1e3", true},
		{"1.5e-10", true},
		{"abc", false},
		{"", false},
		{"42.5.6", false},
	}

	c := csvClassifier{}
	for _, tt := range tests {
		if got := c.IsFloat(tt.v); got != tt.want {
			t.Errorf("IsFloat(%q) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestCSVClassifierIsBoolean(t *testing.T) {
	t.Parallel()

	c := csvClassifier{}
	for _, s := range []string{"True", "False", "true", "false", "t", "f", "T", "F", "1", "0"} {
		if !c.IsBoolean(s) {
			t.Errorf("IsBoolean(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"yes", "no", "TRUE", "2"} {
		if c.IsBoolean(s) {
			t.Errorf("IsBoolean(%q) = true, want false", s)
		}
	}
}

func TestCSVClassifierIsJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    string
		want bool
	}{
		{`{"a":1}`, true},
		{`[1,2,3]`, true},
		{`{}`, true},
		{`[]`, true},
		{`{"a":}`, false},
		{`not json`, false},
		{`"just a string"`, false}, // does not start with { or [
		{``, false},
	}

	c := csvClassifier{}
	for _, tt := range tests {
		if got := c.IsJSON(tt.v); got != tt.want {
			t.Errorf("IsJSON(%q) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestCSVClassifierDateOrTimestamp(t *testing.T) {
	t.Parallel()

	c := csvClassifier{}

	if got, ok := c.DateOrTimestamp("2024-03-15"); !ok || got != Date {
		t.Errorf("DateOrTimestamp(date) = (%s, %v), want (date, true)", got, ok)
	}
	if got, ok := c.DateOrTimestamp("2024-03-15T10:30:00"); !ok || got != Timestamp {
		t.Errorf("DateOrTimestamp(timestamp) = (%s, %v), want (timestamp, true)", got, ok)
	}
	if _, ok := c.DateOrTimestamp("not a date"); ok {
		t.Error("DateOrTimestamp(garbage) = ok, want not ok")
	}
}
