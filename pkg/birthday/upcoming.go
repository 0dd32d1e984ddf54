package birthday

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type Upcoming struct {
	Birthday  *Birthday `json:"birthday"`
	DaysUntil int       `json:"daysUntil"`
}

// monthDay returns the MM-DD part of a YYYY-MM-DD string, or the whole string
// when it is shorter than that.
func monthDay(date string) string {
	if len(date) < len(dateLayout) {
		return date
	}
	return date[5:10]
}

// SortByMonthDay orders records by month and day of birth, ignoring the year.
// Ties are broken by name.
func SortByMonthDay(list []*Birthday) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := monthDay(list[i].BirthDate), monthDay(list[j].BirthDate)
		if a != b {
			return a < b
		}
		return list[i].Name < list[j].Name
	})
}

// FilterByName keeps records whose name contains q, case-insensitively.
func FilterByName(list []*Birthday, q string) []*Birthday {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return list
	}
	out := make([]*Birthday, 0, len(list))
	for _, b := range list {
		if strings.Contains(strings.ToLower(b.Name), q) {
			out = append(out, b)
		}
	}
	return out
}

// DaysUntil counts whole days from today to the next occurrence of the
// birthday. A 29 February birthday falls on 1 March in common years.
func DaysUntil(birthDate string, today time.Time) (int, error) {
	born, err := time.Parse(dateLayout, birthDate)
	if err != nil {
		return 0, fmt.Errorf("bad birth date %q: %w", birthDate, err)
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	next := time.Date(day.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(day) {
		next = time.Date(day.Year()+1, born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(day).Hours() / 24), nil
}

// UpcomingWithin picks the records whose next birthday is at most days away,
// nearest first. Records with unparsable dates are returned in skipped.
func UpcomingWithin(list []*Birthday, today time.Time, days int) (upcoming []Upcoming, skipped []error) {
	upcoming = make([]Upcoming, 0)
	for _, b := range list {
		n, err := DaysUntil(b.BirthDate, today)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("birthday %d: %w", b.ID, err))
			continue
		}
		if n <= days {
			upcoming = append(upcoming, Upcoming{Birthday: b, DaysUntil: n})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DaysUntil < upcoming[j].DaysUntil
	})
	return upcoming, skipped
}
