// Package birthday holds the date arithmetic of the register: the calendar
// date value used for birthdays, the signed day offset between "today" and
// a birthday re-anchored to the current year, and the display category
// derived from that offset.
//
// Every function here is pure. "Today" is always passed in by the caller;
// services obtain it from a [Clock].
package birthday
