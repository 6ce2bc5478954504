package models

import "time"

// DayOfWeek names one of the seven weekdays a class can fall on.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// WeekDays lists the weekdays in schedule order, Monday first.
var WeekDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDay resolves a case-insensitive weekday name.
func ParseDay(raw string) (DayOfWeek, bool) {
	for _, day := range WeekDays {
		if string(day) == raw || string(day) == titleCase(raw) {
			return day, true
		}
	}
	return "", false
}

// DayFromTime maps a wall-clock instant to its weekday bucket name.
func DayFromTime(t time.Time) DayOfWeek {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

func titleCase(raw string) string {
	if raw == "" {
		return raw
	}
	b := []byte(raw)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	for i := 1; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// ClassSession is one scheduled class. Times are zero-padded "HH:MM"
// 24-hour strings, which makes lexicographic comparison a valid time
// ordering. Sessions are immutable once loaded.
type ClassSession struct {
	ID        string    `db:"id" json:"id"`
	Subject   string    `db:"subject" json:"subject"`
	Professor string    `db:"professor" json:"professor"`
	Room      string    `db:"room" json:"room"`
	Building  string    `db:"building" json:"building"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	Day       DayOfWeek `db:"day_of_week" json:"day"`
	Type      string    `db:"session_type" json:"type"`
}

// WeeklySchedule buckets sessions by weekday. Every session belongs to
// exactly one bucket and buckets stay sorted by start time.
type WeeklySchedule map[DayOfWeek][]ClassSession
