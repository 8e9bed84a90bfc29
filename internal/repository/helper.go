package repository

import (
	"time"
)

// parseTime parses a date string in "2006-01-02", datetime, or RFC3339
// format. The zero time is returned for anything unparseable: the record
// store normalizes malformed rows instead of failing, so a single bad cell
// never blocks the whole ledger from rendering.
func parseTime(str string) time.Time {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if parsed, err := time.Parse(layout, str); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
