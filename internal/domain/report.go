package domain

import "time"

type MemberReport struct {
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
	Comment    string `json:"comment"`
}

// WeeklyReport is keyed by (cellId, weekStartDate); resubmitting replaces the
// member reports for that week rather than adding a second report.
type WeeklyReport struct {
	ID            string         `json:"id"`
	CellID        string         `json:"cellId"`
	WeekStartDate string         `json:"weekStartDate"`
	WeekEndDate   string         `json:"weekEndDate"`
	MemberReports []MemberReport `json:"memberReports"`
	SubmittedAt   time.Time      `json:"submittedAt"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
