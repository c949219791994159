// Package timeofday парсит и форматирует время суток в 24-часовом формате HH:MM[:SS[.fffffffff]].
package timeofday

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidFormat = errors.New("invalid time format, expected HH:MM (24-hour)")

var layouts = []string{
	"15:04",
	"15:04:05",
	"15:04:05.999999999",
}

type TimeOfDay struct {
	d time.Duration // смещение от полуночи
}

func Parse(s string) (TimeOfDay, error) {
	// time.Parse принимает однозначный час ("9:00"), нам нужен строго HH
	if len(s) < len("15:04") || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		d := time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second +
			time.Duration(t.Nanosecond())
		return TimeOfDay{d: d}, nil
	}
	return TimeOfDay{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
}

func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.d > other.d
}

func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t.d < other.d:
		return -1
	case t.d > other.d:
		return 1
	default:
		return 0
	}
}

// String печатает HH:MM, а при ненулевых секундах HH:MM:SS. Доли секунды отбрасываются.
func (t TimeOfDay) String() string {
	h := int(t.d / time.Hour)
	m := int(t.d % time.Hour / time.Minute)
	s := int(t.d % time.Minute / time.Second)
	if t.d%time.Minute == 0 {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
