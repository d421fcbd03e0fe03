package calendar

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

const dateLayout = "2006-01-02"

// DayInfo classifies a single date. HolidayName is set only when a holiday
// entry matches the date.
type DayInfo struct {
	Date               time.Time
	IsWeekendOrHoliday bool
	IsWeekend          bool
	IsHoliday          bool
	HolidayName        string
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether any holiday entry matches the date. Matching is
// string equality on the YYYY-MM-DD projection; no timezone normalization
// beyond truncating to the calendar date.
func IsHoliday(date time.Time, holidays []model.Holiday) bool {
	day := date.Format(dateLayout)
	for _, h := range holidays {
		if h.Date == day {
			return true
		}
	}
	return false
}

// Classify combines the weekend and holiday checks into one tagged result.
func Classify(date time.Time, holidays []model.Holiday) DayInfo {
	info := DayInfo{
		Date:      date,
		IsWeekend: IsWeekend(date),
	}

	day := date.Format(dateLayout)
	for _, h := range holidays {
		if h.Date == day {
			info.IsHoliday = true
			info.HolidayName = h.Name
			break
		}
	}

	info.IsWeekendOrHoliday = info.IsWeekend || info.IsHoliday
	return info
}

// WeekendAndHolidayDatesInRange walks [start, end] inclusive at day
// granularity and returns every date that is a weekend or holiday, in
// order. A start after end yields an empty slice.
func WeekendAndHolidayDatesInRange(start, end time.Time, holidays []model.Holiday) []DayInfo {
	dates := []DayInfo{}
	for d := truncateToDay(start); !d.After(truncateToDay(end)); d = d.AddDate(0, 0, 1) {
		if info := Classify(d, holidays); info.IsWeekendOrHoliday {
			dates = append(dates, info)
		}
	}
	return dates
}

// ExpandRecurringClosures materializes company closure rules (RRULE syntax)
// into holiday entries for a single year, so they merge with the
// backend-provided calendar. Rules without their own DTSTART anchor at
// January 1st of the year.
func ExpandRecurringClosures(rules []ClosureRule, year int) ([]model.Holiday, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	holidays := []model.Holiday{}
	for _, rule := range rules {
		r, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid closure rule %q: %w", rule.Name, err)
		}
		if r.OrigOptions.Dtstart.IsZero() {
			r.DTStart(yearStart)
		}

		for _, occurrence := range r.Between(yearStart, yearEnd, true) {
			holidays = append(holidays, model.Holiday{
				Name:        rule.Name,
				Date:        occurrence.Format(dateLayout),
				Description: rule.Description,
			})
		}
	}
	return holidays, nil
}

// ClosureRule is a recurring company closure defined in configuration.
type ClosureRule struct {
	Name        string
	RRule       string
	Description string
}

// MergeHolidays concatenates backend holidays with expanded closures,
// keeping backend entries first so their names win on classification.
func MergeHolidays(backend, closures []model.Holiday) []model.Holiday {
	merged := make([]model.Holiday, 0, len(backend)+len(closures))
	merged = append(merged, backend...)
	merged = append(merged, closures...)
	return merged
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
