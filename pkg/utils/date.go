package utils

import (
	"time"
)

// Formatos de data retornados pela Graph API e pelos sheets
var eventTimeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseEventTime converte um event_time da Graph API (ou um timestamp lido de
// volta da planilha) para time.Time em UTC.
func ParseEventTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
