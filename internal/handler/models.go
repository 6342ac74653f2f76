package handler

import "github.com/chosundeveloper/rollbook/internal/domain"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

type MeResponse struct {
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	CellID      string   `json:"cellId,omitempty"`
}

type AccountResponse struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	CellID      string   `json:"cellId,omitempty"`
}

type AccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

type CreateAccountRequest struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	DisplayName string   `json:"displayName"`
	Roles       []string `json:"roles"`
	CellID      string   `json:"cellId"`
}

type UpdateAccountRequest struct {
	ID          string    `json:"id"`
	DisplayName *string   `json:"displayName"`
	Password    *string   `json:"password"`
	Roles       *[]string `json:"roles"`
	CellID      *string   `json:"cellId"`
}

type NewMemberRequest struct {
	Name      string `json:"name"`
	BirthYear int    `json:"birthYear"`
	Team      string `json:"team"`
	Contact   string `json:"contact"`
	Role      string `json:"role"`
	JoinedAt  string `json:"joinedAt"`
}

type MembersResponse struct {
	Members []domain.Member `json:"members"`
}

type MemberResponse struct {
	Member domain.Member `json:"member"`
}

type CellsResponse struct {
	Cells []domain.HydratedCell `json:"cells"`
}

type CellResponse struct {
	Cell domain.Cell `json:"cell"`
}

type CreateCellRequest struct {
	LeaderID   string `json:"leaderId"`
	LeaderName string `json:"leaderName"`
}

type UpdateCellRequest struct {
	ID         string `json:"id"`
	LeaderID   string `json:"leaderId"`
	LeaderName string `json:"leaderName"`
}

type CellMemberRequest struct {
	CellID   string `json:"cellId"`
	MemberID string `json:"memberId"`
	Role     string `json:"role"`
}

type SessionsResponse struct {
	Sessions []domain.AttendanceSession `json:"sessions"`
}

type SessionResponse struct {
	Session domain.AttendanceSession `json:"session"`
}

type CreateSessionRequest struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

type AttendanceEntryRequest struct {
	MemberID    string `json:"memberId"`
	DisplayName string `json:"displayName"`
	Status      string `json:"status"`
	Note        string `json:"note"`
	IsVisitor   *bool  `json:"isVisitor"`
}

type SaveAttendanceRequest struct {
	Date    string                   `json:"date"`
	Entries []AttendanceEntryRequest `json:"entries"`
}

type AttendanceResponse struct {
	Entries []domain.AttendanceEntry `json:"entries"`
	Summary domain.AttendanceSummary `json:"summary"`
}

type PrayerTimeRequest struct {
	Label string `json:"label"`
	Time  string `json:"time"`
}

type CreatePrayerScheduleRequest struct {
	Name      string              `json:"name"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Times     []PrayerTimeRequest `json:"times"`
}

type SchedulesResponse struct {
	Schedules []domain.PrayerSchedule `json:"schedules"`
}

type ScheduleResponse struct {
	Schedule domain.PrayerSchedule `json:"schedule"`
}

type PrayerCheckRequest struct {
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
	Date       string `json:"date"`
	TimeID     string `json:"timeId"`
	Checked    bool   `json:"checked"`
	Note       string `json:"note"`
}

type SavePrayerChecksRequest struct {
	ScheduleID string               `json:"scheduleId"`
	CellID     string               `json:"cellId"`
	Entries    []PrayerCheckRequest `json:"entries"`
}

type ChecksResponse struct {
	Checks []domain.PrayerCheckEntry `json:"checks"`
}

type SummariesResponse struct {
	Summaries []domain.CellPrayerSummary `json:"summaries"`
}

type MemberReportRequest struct {
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
	Comment    string `json:"comment"`
}

type SaveReportRequest struct {
	CellID        string                `json:"cellId"`
	WeekStartDate string                `json:"weekStartDate"`
	MemberReports []MemberReportRequest `json:"memberReports"`
}

type ReportsResponse struct {
	Reports []domain.WeeklyReport `json:"reports"`
}

type ReportResponse struct {
	Report domain.WeeklyReport `json:"report"`
}
