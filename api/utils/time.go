package utils

import "time"

const defaultLayout = time.RFC3339

// ParseTimestamp Converts timestamp to time by RFC3339 layout
func ParseTimestamp(timestamp string) (time.Time, error) {
	return ParseTimestampBy(defaultLayout, timestamp)
}

// ParseTimestampBy Converts timestamp to time by custom layout
func ParseTimestampBy(layout, timestamp string) (time.Time, error) {
	if len(layout) == len(timestamp) {
		return time.Parse(layout, timestamp)
	}
	return time.Parse(defaultLayout, timestamp)
}

// FormatTimestamp Converts time to a timestamp string
func FormatTimestamp(timestamp time.Time) string {
	emptyTime := time.Time{}

	if timestamp != emptyTime {
		return timestamp.Format(time.RFC3339)
	}

	return ""
}

// ParseOptionalTimestamp parses an upstream timestamp, returning nil when the
// value is absent or not in a recognized layout. Upstream records are
// loosely typed and a bad timestamp must not fail the whole job record.
func ParseOptionalTimestamp(timestamp string) *time.Time {
	if timestamp == "" {
		return nil
	}
	parsed, err := ParseTimestamp(timestamp)
	if err != nil {
		return nil
	}
	return &parsed
}
