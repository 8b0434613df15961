package booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/delacruzclinic/clinic-booking/internal/timezone"
)

// TimeOption is one offerable time-of-day slot as presented to the booking
// page. Disabled is merged from booked slots and same-day expiry.
type TimeOption struct {
	Value    string `json:"value"` // HH:mm
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// DefaultTimeOptions returns the clinic's fixed slot grid, hourly from
// 08:00 to 17:00.
func DefaultTimeOptions() []TimeOption {
	return []TimeOption{
		{Value: "08:00", Label: "8:00 AM"},
		{Value: "09:00", Label: "9:00 AM"},
		{Value: "10:00", Label: "10:00 AM"},
		{Value: "11:00", Label: "11:00 AM"},
		{Value: "12:00", Label: "12:00 PM"},
		{Value: "13:00", Label: "1:00 PM"},
		{Value: "14:00", Label: "2:00 PM"},
		{Value: "15:00", Label: "3:00 PM"},
		{Value: "16:00", Label: "4:00 PM"},
		{Value: "17:00", Label: "5:00 PM"},
	}
}

// ExpiredTimes returns the option values whose time-of-day has already
// elapsed at now, Manila time. An option equal to the current minute counts
// as expired. Malformed or empty values are skipped.
func ExpiredTimes(options []TimeOption, now time.Time) []string {
	nowManila := now.In(timezone.Manila)
	currentMinutes := nowManila.Hour()*60 + nowManila.Minute()

	expired := []string{}
	for _, opt := range options {
		minutes, ok := minutesOfDay(opt.Value)
		if !ok {
			continue
		}
		if minutes <= currentMinutes {
			expired = append(expired, opt.Value)
		}
	}
	return expired
}

func minutesOfDay(value string) (int, bool) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok {
		return 0, false
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
