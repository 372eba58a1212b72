package entity

import (
	"fmt"
	"time"
)

// OpeningHours is the daily open/close window of the canteen, expressed in
// local time of day. The window is inclusive on both ends.
type OpeningHours struct {
	OpenMinute  int // Minutes after midnight.
	CloseMinute int
}

// ParseOpeningHours builds a window from "HH:MM" open and close strings.
func ParseOpeningHours(open, close string) (OpeningHours, error) {
	openMin, err := parseMinuteOfDay(open)
	if err != nil {
		return OpeningHours{}, err
	}

	closeMin, err := parseMinuteOfDay(close)
	if err != nil {
		return OpeningHours{}, err
	}

	if closeMin < openMin {
		return OpeningHours{}, fmt.Errorf("close time %s precedes open time %s", close, open)
	}

	return OpeningHours{OpenMinute: openMin, CloseMinute: closeMin}, nil
}

// Contains reports whether the given instant falls within the window.
func (h OpeningHours) Contains(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()

	return minute >= h.OpenMinute && minute <= h.CloseMinute
}

func parseMinuteOfDay(s string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}

	return hour*60 + minute, nil
}
