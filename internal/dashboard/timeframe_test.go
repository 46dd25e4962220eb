package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)

func TestResolveTimeframeToday(t *testing.T) {
	tf := ResolveTimeframe(TimeframeToday, testNow)

	midnight := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	assert.True(t, tf.Bounded)
	assert.Equal(t, midnight, tf.Start)
	assert.Equal(t, midnight.AddDate(0, 0, 1), tf.End)
	// today pairs with yesterday
	assert.Equal(t, midnight.AddDate(0, 0, -1), tf.PrevStart)
	assert.Equal(t, midnight, tf.PrevEnd)
}

func TestResolveTimeframeYesterday(t *testing.T) {
	tf := ResolveTimeframe(TimeframeYesterday, testNow)

	midnight := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, midnight.AddDate(0, 0, -1), tf.Start)
	assert.Equal(t, midnight, tf.End)
	assert.Equal(t, midnight.AddDate(0, 0, -2), tf.PrevStart)
	assert.Equal(t, midnight.AddDate(0, 0, -1), tf.PrevEnd)
}

func TestResolveTimeframeTrailingWindows(t *testing.T) {
	for _, tc := range []struct {
		token string
		days  int
	}{
		{TimeframeLast7Days, 7},
		{TimeframeLast30Days, 30},
	} {
		tf := ResolveTimeframe(tc.token, testNow)
		assert.True(t, tf.Bounded, tc.token)
		assert.Equal(t, time.Duration(tc.days)*24*time.Hour, tf.End.Sub(tf.Start), tc.token)
		// prior window has equal length and ends where the current starts
		assert.Equal(t, tf.Start, tf.PrevEnd, tc.token)
		assert.Equal(t, tf.End.Sub(tf.Start), tf.PrevEnd.Sub(tf.PrevStart), tc.token)
	}
}

func TestResolveTimeframeAllTime(t *testing.T) {
	tf := ResolveTimeframe(TimeframeAllTime, testNow)
	assert.False(t, tf.Bounded)
	assert.True(t, tf.Start.IsZero())
	assert.True(t, tf.End.IsZero())
}

func TestResolveTimeframeDefaultsToToday(t *testing.T) {
	assert.Equal(t, ResolveTimeframe(TimeframeToday, testNow), ResolveTimeframe("", testNow))
	tf := ResolveTimeframe("nonsense", testNow)
	assert.Equal(t, TimeframeToday, tf.Token)
}

func TestPercentChange(t *testing.T) {
	// prior=0 and current>0 is +100, prior=0 and current=0 is 0
	assert.Equal(t, float64(100), PercentChange(0, 500))
	assert.Equal(t, float64(0), PercentChange(0, 0))
	assert.Equal(t, float64(50), PercentChange(100, 150))
	assert.Equal(t, float64(-25), PercentChange(200, 150))
}

func TestHourLabel(t *testing.T) {
	assert.Equal(t, "12AM", HourLabel(0))
	assert.Equal(t, "1AM", HourLabel(1))
	assert.Equal(t, "11AM", HourLabel(11))
	assert.Equal(t, "12PM", HourLabel(12))
	assert.Equal(t, "1PM", HourLabel(13))
	assert.Equal(t, "11PM", HourLabel(23))
}
