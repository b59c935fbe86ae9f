// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package birthday

import "time"

// WrapWindowDays is how far into next year a birthday may lie and still be
// counted as upcoming once this year's occurrence has passed. With 31 days
// it applies throughout December: on 01/12 a 01/01 birthday is 31 days away.
const WrapWindowDays = 31

// DaysUntilNextOccurrence returns the signed number of calendar days from
// today to the birthday re-anchored to today's year. Zero means the birthday
// is today; negative means it has already passed this year.
//
// A passed birthday is not rolled forward to next year, so its offset keeps
// decreasing day by day. The single exception is the year boundary: when the
// next year's occurrence is at most [WrapWindowDays] away, that positive
// offset is returned instead (01/01 seen on 31/12 is 1 day away).
func DaysUntilNextOccurrence(b Date, today time.Time) int {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	offset := daysBetween(start, b.In(y))
	if offset >= 0 {
		return offset
	}

	if next := daysBetween(start, b.In(y+1)); next <= WrapWindowDays {
		return next
	}

	return offset
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// Clock supplies the current time to code that needs "today". The zero
// value reads the system clock.
type Clock struct {
	NowFunc func() time.Time
}

// NewClock returns a Clock reading the system clock.
func NewClock() Clock {
	return Clock{NowFunc: time.Now}
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return Clock{NowFunc: func() time.Time { return t }}
}

// Now returns the current time.
func (c Clock) Now() time.Time {
	if c.NowFunc == nil {
		return time.Now()
	}
	return c.NowFunc()
}

// Offset is DaysUntilNextOccurrence evaluated at the clock's today.
func (c Clock) Offset(b Date) int {
	return DaysUntilNextOccurrence(b, c.Now())
}
