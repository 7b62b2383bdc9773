package entity

import (
	"fmt"
	"strings"
	"time"
)

// EventTime оборачивает time.Time и принимает дату мероприятия
// как в формате RFC3339, так и в формате HTML datetime-local
type EventTime struct {
	time.Time
}

const eventTimeLayout = "2006-01-02T15:04"

func (et *EventTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, eventTimeLayout, "2006-01-02"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			et.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as event date", s)
}

func (et EventTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + et.Format(time.RFC3339) + `"`), nil
}
