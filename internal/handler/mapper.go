package handler

import "github.com/chosundeveloper/rollbook/internal/domain"

func httpEntriesToDomain(entries []AttendanceEntryRequest) []domain.AttendancePayloadEntry {
	result := make([]domain.AttendancePayloadEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, domain.AttendancePayloadEntry{
			MemberID:    entry.MemberID,
			DisplayName: entry.DisplayName,
			Status:      domain.AttendanceStatus(entry.Status),
			Note:        entry.Note,
			IsVisitor:   entry.IsVisitor,
		})
	}
	return result
}

func httpTimesToDomain(times []PrayerTimeRequest) []domain.NewPrayerTime {
	result := make([]domain.NewPrayerTime, 0, len(times))
	for _, t := range times {
		result = append(result, domain.NewPrayerTime{Label: t.Label, Time: t.Time})
	}
	return result
}

func httpChecksToDomain(entries []PrayerCheckRequest) []domain.PrayerCheckPayload {
	result := make([]domain.PrayerCheckPayload, 0, len(entries))
	for _, entry := range entries {
		result = append(result, domain.PrayerCheckPayload{
			MemberID:   entry.MemberID,
			MemberName: entry.MemberName,
			Date:       entry.Date,
			TimeID:     entry.TimeID,
			Checked:    entry.Checked,
			Note:       entry.Note,
		})
	}
	return result
}

func httpReportsToDomain(reports []MemberReportRequest) []domain.MemberReport {
	result := make([]domain.MemberReport, 0, len(reports))
	for _, report := range reports {
		result = append(result, domain.MemberReport{
			MemberID:   report.MemberID,
			MemberName: report.MemberName,
			Comment:    report.Comment,
		})
	}
	return result
}

func domainAccountToHTTP(account domain.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID,
		Username:    account.Username,
		DisplayName: account.DisplayName,
		Roles:       account.Roles,
		CellID:      account.CellID,
	}
}
