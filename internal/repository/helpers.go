package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// encodeDetails serializes an audit details payload to JSON.
// Returns nil (SQL NULL) for an empty payload.
func encodeDetails(details map[string]any) (interface{}, error) {
	if len(details) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encoding audit details: %w", err)
	}
	return string(b), nil
}

// timestampOrNow returns t in UTC, or the current time when t is zero.
func timestampOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
