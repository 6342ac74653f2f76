package domain

import "time"

type AttendanceStatus string

const (
	StatusOnline  AttendanceStatus = "online"
	StatusOffline AttendanceStatus = "offline"
	StatusAbsent  AttendanceStatus = "absent"
)

func ValidAttendanceStatus(status AttendanceStatus) bool {
	switch status {
	case StatusOnline, StatusOffline, StatusAbsent:
		return true
	}
	return false
}

// AttendanceSession unlocks attendance recording for one calendar date.
// Entries for a date cannot be written until its session exists.
type AttendanceSession struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AttendanceEntry struct {
	ID          string           `json:"id"`
	Date        string           `json:"date"`
	Status      AttendanceStatus `json:"status"`
	MemberID    string           `json:"memberId,omitempty"`
	DisplayName string           `json:"displayName"`
	Note        string           `json:"note,omitempty"`
	IsVisitor   bool             `json:"isVisitor"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// AttendancePayloadEntry is the caller-supplied shape for a whole-date
// replace. IsVisitor nil means "derive from memberId absence".
type AttendancePayloadEntry struct {
	MemberID    string
	DisplayName string
	Status      AttendanceStatus
	Note        string
	IsVisitor   *bool
}

type AttendanceSummary struct {
	Online  int `json:"online"`
	Offline int `json:"offline"`
	Absent  int `json:"absent"`
	Total   int `json:"total"`
}
