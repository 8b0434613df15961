package dto

// ScheduleWindowDTO carries the Manila calendar facts the booking page uses
// to decide which dates to offer.
type ScheduleWindowDTO struct {
	WeekStart    string `json:"week_start"` // Monday, YYYY-MM-DD
	WeekEnd      string `json:"week_end"`   // Sunday, YYYY-MM-DD
	Tomorrow     string `json:"tomorrow"`
	ComingMonday string `json:"coming_monday"`
	IsFriday     bool   `json:"is_friday"`
	PastFivePM   bool   `json:"past_five_pm"`
}
