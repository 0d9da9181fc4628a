package colscan

import "testing"

func TestParseDateOrTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       string
		wantOK  bool
		wantTyp LogicalType
	}{
		{"date only", "2024-03-15", true, Date},
		{"datetime T separator", "2024-03-15T10:30:00", true, Timestamp},
		{"datetime space separator", "2024-03-15 10:30:00", true, Timestamp},
		{"datetime with fraction", "2024-03-15T10:30:00.123456", true, Timestamp},
		{"datetime with Z", "2024-03-15T10:30:00Z", true, Timestamp},
		{"datetime with offset", "2024-03-15T10:30:00+09:00", true, Timestamp},
		{"midnight datetime is a date", "2024-03-15T00:00:00", true, Date},
		{"midnight with offset is a date", "2024-03-15T00:00:00Z", true, Date},
		{"not a date", "hello", false, Unknown},
		{"us-style date rejected", "03/15/2024", false, Unknown},
		{"empty string", "", false, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseDateOrTimestamp(tt.s)
			if ok != tt.wantOK {
				t.Fatalf("parseDateOrTimestamp(%q) ok = %v, want %v", tt.s, ok, tt.wantOK)
			}
			if ok && got != tt.wantTyp {
				t.Errorf("parseDateOrTimestamp(%q) = %s, want %s", tt.s, got, tt.wantTyp)
			}
		})
	}
}
