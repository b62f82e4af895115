package core

import (
	"strings"
	"time"

	"github.com/devlens/devlens/schema"
)

// Burst detection thresholds.
const (
	rapidCommitGap   = 2 * time.Minute // adjacent commits closer than this count as rapid
	prefixLength     = 20              // compared prefix of each message's first line
	highChangeFiles  = 20              // changed-file count above this flags a bulk commit
	burstTimeLayout  = "2006-01-02 15:04:05"
	burstDateOnlyLen = 19
)

// detectBurstPatterns scores how strongly a commit sequence resembles
// rapid, repetitive, large-footprint AI-assisted authorship. Three
// independent contributions are summed and capped at 1.0: rapid adjacent
// commits, repeated message prefixes, and bulk file changes. Fewer than
// three commits always yields 0.
func detectBurstPatterns(commits []schema.Commit) float64 {
	if len(commits) < 3 {
		return 0.0
	}

	var timestamps []string
	for _, c := range commits {
		if c.CommittedDate != "" {
			timestamps = append(timestamps, c.CommittedDate)
		}
	}

	burst := 0.0

	// Rapid adjacent commits. Unparsable timestamps are skipped, not fatal.
	if len(timestamps) >= 2 {
		rapid := 0
		for i := 0; i < len(timestamps)-1; i++ {
			t1, ok1 := parseBurstTimestamp(timestamps[i])
			t2, ok2 := parseBurstTimestamp(timestamps[i+1])
			if !ok1 || !ok2 {
				continue
			}
			gap := t1.Sub(t2)
			if gap < 0 {
				gap = -gap
			}
			if gap < rapidCommitGap {
				rapid++
			}
		}
		burst += min(float64(rapid)/float64(len(timestamps)-1), 0.5)
	}

	// Repeated message prefixes: any 20-char first-line prefix recurring
	// three or more times adds a flat 0.3.
	prefixCounts := make(map[string]int)
	mostCommon := 0
	for _, c := range commits {
		line := firstLine(c.Message)
		if len(line) < prefixLength {
			continue
		}
		p := strings.ToLower(line[:prefixLength])
		prefixCounts[p]++
		if prefixCounts[p] > mostCommon {
			mostCommon = prefixCounts[p]
		}
	}
	if mostCommon >= 3 {
		burst += 0.3
	}

	// Bulk file changes.
	highChange := 0
	for _, c := range commits {
		if c.ChangedFiles > highChangeFiles {
			highChange++
		}
	}
	burst += min(float64(highChange)/float64(len(commits)), 0.2)

	return min(burst, 1.0)
}

// parseBurstTimestamp parses an ISO-8601-ish timestamp by truncating to
// seconds precision and dropping the T separator.
func parseBurstTimestamp(s string) (time.Time, bool) {
	if len(s) > burstDateOnlyLen {
		s = s[:burstDateOnlyLen]
	}
	s = strings.Replace(s, "T", " ", 1)
	t, err := time.Parse(burstTimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// firstLine returns the first line of a commit message.
func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}
