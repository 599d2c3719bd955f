package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// flexLayouts are the accepted date representations, tried in order.
var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexTime is a time.Time that unmarshals from any date-parseable JSON
// representation: RFC3339 (with or without zone), "YYYY-MM-DD HH:MM:SS",
// bare dates, or epoch milliseconds. It marshals as plain RFC3339.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}

	// Epoch milliseconds arrive as a bare number.
	if !strings.HasPrefix(s, `"`) {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid date value %s", s)
		}
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}

	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("invalid date value %s", s)
	}
	parsed, err := ParseFlexTime(unquoted)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.UTC().Format(time.RFC3339))), nil
}

// ParseFlexTime coerces a string to a UTC instant using the accepted layouts.
func ParseFlexTime(s string) (time.Time, error) {
	for _, layout := range flexLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date value %q", s)
}
