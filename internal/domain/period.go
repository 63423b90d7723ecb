package domain

import (
	"fmt"
	"strings"
	"time"
)

// Period is a report bucket policy.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Periods lists the supported periods in display order.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly}

// ParsePeriod maps a user supplied token to a Period.
func ParsePeriod(s string) (Period, bool) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return p, true
	default:
		return "", false
	}
}

// Key returns the bucket key of t under the period policy. Months are
// 1-indexed and never zero padded.
//
// Weekly keys anchor on the Sunday on or before t and number weeks by
// ceil(dayOfMonth/7) of that Sunday, so numbering restarts with each month.
func (p Period) Key(t time.Time) string {
	switch p {
	case PeriodDaily:
		return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
	case PeriodWeekly:
		sunday := t.AddDate(0, 0, -int(t.Weekday()))
		return fmt.Sprintf("%d-W%d", sunday.Year(), (sunday.Day()+6)/7)
	case PeriodMonthly:
		return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
	case PeriodYearly:
		return fmt.Sprintf("%d", t.Year())
	default:
		return ""
	}
}

// Label is the capitalised period name used in report headers.
func (p Period) Label() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}
