package birthday

import "strconv"

// Category is the display class of a contact derived from its birthday
// offset.
type Category int

const (
	// Today means the birthday falls on the current day.
	Today Category = iota
	// Past means this year's birthday has already gone by.
	Past
	// Upcoming means the birthday is still ahead.
	Upcoming
)

// Classify maps an offset in days to its category.
func Classify(offsetDays int) Category {
	switch {
	case offsetDays == 0:
		return Today
	case offsetDays < 0:
		return Past
	default:
		return Upcoming
	}
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Today:
		return "today"
	case Past:
		return "past"
	case Upcoming:
		return "upcoming"
	default:
		return "unknown"
	}
}

// Label renders the proximity text shown in the contact list.
func (c Category) Label(offsetDays int) string {
	switch c {
	case Today:
		return "Birthday today"
	case Past:
		return "Passed"
	default:
		if offsetDays == 1 {
			return "1 day"
		}
		return strconv.Itoa(offsetDays) + " days"
	}
}
