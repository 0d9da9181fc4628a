package colscan

import "time"

// isoLayouts is the fixed, ordered list of reference layouts the lenient
// date/timestamp classifier tries. First match wins.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDateOrTimestamp applies the lenient ISO-like parser to s. ok is
// false if none of the reference layouts match. When ok is true, the
// returned LogicalType is Date if the parsed time-of-day is exactly
// midnight, else Timestamp.
func parseDateOrTimestamp(s string) (LogicalType, bool) {
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return Date, true
		}
		return Timestamp, true
	}
	return Unknown, false
}
