package timezone

import "time"

// Asia/Manila is UTC+8 with no daylight saving, so a fixed zone keeps every
// calculation reproducible regardless of the host's tzdata or TZ setting.
var Manila = time.FixedZone("Asia/Manila", 8*60*60)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func Now() time.Time {
	return time.Now().In(Manila)
}

// CurrentWeekRange returns the Monday and Sunday (inclusive) of the week
// containing now, both as YYYY-MM-DD. Weeks start on Monday; a Sunday closes
// the week that began six days earlier.
func CurrentWeekRange() (string, string) {
	return weekRange(Now())
}

func weekRange(now time.Time) (string, string) {
	// Monday-based index: Monday=0 ... Sunday=6
	idx := (int(now.Weekday()) + 6) % 7

	start := now.AddDate(0, 0, -idx)
	end := start.AddDate(0, 0, 6)

	return start.Format(DateLayout), end.Format(DateLayout)
}

// ComingMonday returns the next Monday strictly after now, at civil midnight.
// On a Monday it returns the Monday seven days out, never today.
func ComingMonday() time.Time {
	return comingMonday(Now())
}

func comingMonday(now time.Time) time.Time {
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return midnight(now.AddDate(0, 0, days))
}

// Tomorrow returns civil midnight of the day after now.
func Tomorrow() time.Time {
	return tomorrow(Now())
}

func tomorrow(now time.Time) time.Time {
	return midnight(now.AddDate(0, 0, 1))
}

func midnight(t time.Time) time.Time {
	t = t.In(Manila)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Manila)
}

func IsFriday() bool {
	return Now().Weekday() == time.Friday
}

func IsPastFivePM() bool {
	return Now().Hour() >= 17
}

// IsToday reports whether t falls on the same Manila calendar date as now.
// The comparison is by formatted date, not by instant.
func IsToday(t time.Time) bool {
	return sameManilaDate(t, Now())
}

func sameManilaDate(a, b time.Time) bool {
	return a.In(Manila).Format(DateLayout) == b.In(Manila).Format(DateLayout)
}

// IsBookingPast reports whether the Manila civil instant described by
// dateStr ("YYYY-MM-DD") and timeStr ("HH:mm") is strictly before now.
// Malformed input is treated as not past.
func IsBookingPast(dateStr, timeStr string) bool {
	return isBookingPastAt(dateStr, timeStr, time.Now())
}

func isBookingPastAt(dateStr, timeStr string, now time.Time) bool {
	slot, err := ParseSlot(dateStr, timeStr)
	if err != nil {
		return false
	}
	return slot.Before(now)
}

// ParseSlot interprets a date + time-of-day pair as Manila local time.
func ParseSlot(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		DateLayout+" "+TimeLayout,
		dateStr+" "+timeStr,
		Manila,
	)
}
