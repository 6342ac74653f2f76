package dateutil

import (
	"regexp"
	"time"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

const layout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Normalize validates a YYYY-MM-DD date string and returns it unchanged.
func Normalize(date string) (string, error) {
	if !datePattern.MatchString(date) {
		return "", domain.NewValidationError("Date must be formatted as YYYY-MM-DD")
	}
	if _, err := time.Parse(layout, date); err != nil {
		return "", domain.NewValidationError("Date must be formatted as YYYY-MM-DD")
	}
	return date, nil
}

// ExpandRange returns the inclusive daily sequence between start and end.
// start == end yields a single date; end before start yields nothing.
func ExpandRange(start, end string) []string {
	from, err := time.Parse(layout, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(layout, end)
	if err != nil {
		return nil
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(layout))
	}
	return dates
}

// WeekBounds returns the Monday and Sunday of the week containing date.
func WeekBounds(date string) (string, string, error) {
	d, err := time.Parse(layout, date)
	if err != nil {
		return "", "", domain.NewValidationError("Date must be formatted as YYYY-MM-DD")
	}

	offset := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		offset = 6
	}
	monday := d.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(layout), sunday.Format(layout), nil
}

func Today() string {
	return time.Now().Format(layout)
}

// CurrentWeek returns the Monday..Sunday bounds of the current week.
func CurrentWeek() (string, string) {
	start, end, _ := WeekBounds(Today())
	return start, end
}
