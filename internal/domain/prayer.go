package domain

import "time"

type PrayerTime struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Time  string `json:"time"`
}

type PrayerSchedule struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Times     []PrayerTime `json:"times"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type PrayerCheckEntry struct {
	ID         string    `json:"id"`
	ScheduleID string    `json:"scheduleId"`
	CellID     string    `json:"cellId"`
	MemberID   string    `json:"memberId"`
	MemberName string    `json:"memberName"`
	Date       string    `json:"date"`
	TimeID     string    `json:"timeId"`
	Checked    bool      `json:"checked"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type PrayerCheckPayload struct {
	MemberID   string
	MemberName string
	Date       string
	TimeID     string
	Checked    bool
	Note       string
}

type NewPrayerTime struct {
	Label string
	Time  string
}

// CellPrayerSummary is the per-cell completion aggregation over the
// member × date × time-slot universe of a schedule.
type CellPrayerSummary struct {
	CellID       string `json:"cellId"`
	CellName     string `json:"cellName"`
	MemberCount  int    `json:"memberCount"`
	TotalSlots   int    `json:"totalSlots"`
	CheckedCount int    `json:"checkedCount"`
	Rate         int    `json:"rate"`
}
