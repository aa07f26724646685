package utils

import "time"

// ParseDate parses an ISO calendar date. Empty input yields the zero time.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// EpochMillisToISODate renders a creation timestamp as an ISO date string,
// the fallback ordering key for records without a monitoring date.
func EpochMillisToISODate(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}
