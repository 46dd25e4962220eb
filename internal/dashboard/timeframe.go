package dashboard

import (
	"strconv"
	"time"
)

// Timeframe tokens accepted by the analytics endpoints.
const (
	TimeframeToday      = "today"
	TimeframeYesterday  = "yesterday"
	TimeframeLast7Days  = "last_7_days"
	TimeframeLast30Days = "last_30_days"
	TimeframeAllTime    = "all_time"
)

// Timeframe is a resolved [Start, End) window in local server time plus the
// immediately preceding window of equal length, used for comparison
// metrics. Unbounded (all_time) windows have no bounds and no baseline.
type Timeframe struct {
	Token     string
	Start     time.Time
	End       time.Time
	PrevStart time.Time
	PrevEnd   time.Time
	Bounded   bool
}

// ResolveTimeframe maps a symbolic token onto concrete date windows.
// Unknown or empty tokens behave like "today", which pairs with yesterday.
func ResolveTimeframe(token string, now time.Time) Timeframe {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := midnight.AddDate(0, 0, 1)

	switch token {
	case TimeframeAllTime:
		return Timeframe{Token: TimeframeAllTime}
	case TimeframeYesterday:
		start := midnight.AddDate(0, 0, -1)
		return Timeframe{
			Token:     TimeframeYesterday,
			Start:     start,
			End:       midnight,
			PrevStart: start.AddDate(0, 0, -1),
			PrevEnd:   start,
			Bounded:   true,
		}
	case TimeframeLast7Days:
		start := tomorrow.AddDate(0, 0, -7)
		return Timeframe{
			Token:     TimeframeLast7Days,
			Start:     start,
			End:       tomorrow,
			PrevStart: start.AddDate(0, 0, -7),
			PrevEnd:   start,
			Bounded:   true,
		}
	case TimeframeLast30Days:
		start := tomorrow.AddDate(0, 0, -30)
		return Timeframe{
			Token:     TimeframeLast30Days,
			Start:     start,
			End:       tomorrow,
			PrevStart: start.AddDate(0, 0, -30),
			PrevEnd:   start,
			Bounded:   true,
		}
	default:
		return Timeframe{
			Token:     TimeframeToday,
			Start:     midnight,
			End:       tomorrow,
			PrevStart: midnight.AddDate(0, 0, -1),
			PrevEnd:   midnight,
			Bounded:   true,
		}
	}
}

// PercentChange compares a current value against the previous window.
// Edge policy: prev=0 and cur>0 is +100, prev=0 and cur=0 is 0.
func PercentChange(prev, cur float64) float64 {
	if prev == 0 {
		if cur > 0 {
			return 100
		}
		return 0
	}
	return (cur - prev) / prev * 100
}

// HourLabel renders an hour-of-day bucket (0-23) in 12-hour clock format.
func HourLabel(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return strconv.Itoa(h) + suffix
}
