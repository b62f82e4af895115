package core

import (
	"math"
	"strings"
	"time"
)

// defaultHalfLifeDays is the recency half-life used for repo freshness.
const defaultHalfLifeDays = 180

// logScale maps [0, inf) to [0, points] with fast initial growth and
// diminishing returns past refMax. Every raw count in the scoring engine
// goes through this so a single outlier repo cannot dominate a dimension.
func logScale(value, refMax, points float64) float64 {
	if value <= 0 {
		return 0.0
	}
	scaled := math.Log1p(value) / math.Log1p(refMax) * points
	return min(scaled, points)
}

// timeDecayWeight returns an exponential recency weight in (0, 1]:
// exp(-ln2 * daysAgo / halfLife). Missing or unparsable dates weigh 0.
func timeDecayWeight(now time.Time, dateStr string, halfLifeDays int) float64 {
	if dateStr == "" {
		return 0.0
	}
	dt, ok := parseFlexibleTimestamp(dateStr)
	if !ok {
		return 0.0
	}
	daysAgo := math.Floor(now.UTC().Sub(dt).Hours() / 24)
	return math.Exp(-math.Ln2 * daysAgo / float64(halfLifeDays))
}

// parseFlexibleTimestamp accepts full ISO-8601 timestamps (truncated to
// seconds, T replaced) and bare YYYY-MM-DD dates. Values are treated as UTC.
func parseFlexibleTimestamp(s string) (time.Time, bool) {
	if len(s) > burstDateOnlyLen {
		s = s[:burstDateOnlyLen]
	}
	s = strings.Replace(s, "T", " ", 1)

	layout := burstTimeLayout
	if len(s) == 10 {
		layout = "2006-01-02"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
