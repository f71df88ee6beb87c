package utils

import (
	"encoding/json"
	"time"
)

const jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Time renders as an ISO-8601 UTC timestamp with millisecond precision.
type Time struct {
	time.Time
}

func NewTime(t time.Time) Time {
	return Time{Time: t}
}

func (t Time) MarshalJSON() ([]byte, error) {
	formatted := t.UTC().Format(jsonTimeLayout)
	return []byte(`"` + formatted + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
