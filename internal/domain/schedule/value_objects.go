package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day must be within 00:00..24:00")
	ErrInvalidWeekday   = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")
	ErrEmptyWeekdaySet  = errors.New("weekday set cannot be empty")
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// 24:00 is a valid end bound so a template can run to the end of the day.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: minutes}, nil
}

func TimeOfDayFromClock(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour*60 + minute)
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + minutes}
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// On anchors the time of day onto a calendar date in that date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.Add(time.Duration(t.minutes) * time.Minute)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// WeekdaySet is a set of ISO weekdays, 1=Monday..7=Sunday.
type WeekdaySet struct {
	bits uint8
}

func NewWeekdaySet(days ...int) (WeekdaySet, error) {
	if len(days) == 0 {
		return WeekdaySet{}, ErrEmptyWeekdaySet
	}
	var s WeekdaySet
	for _, d := range days {
		if d < 1 || d > 7 {
			return WeekdaySet{}, ErrInvalidWeekday
		}
		s.bits |= 1 << uint(d-1)
	}
	return s, nil
}

func (s WeekdaySet) Contains(day int) bool {
	if day < 1 || day > 7 {
		return false
	}
	return s.bits&(1<<uint(day-1)) != 0
}

func (s WeekdaySet) Days() []int {
	days := make([]int, 0, 7)
	for d := 1; d <= 7; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// ISOWeekday maps time.Weekday onto 1=Monday..7=Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
