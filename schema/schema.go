// Package schema has models, rule tables and constants for all parts of devlens.
package schema

// Commit is a single commit record as supplied by the fetch layer.
// CommittedDate is the raw ISO-8601 string from the API; the analyzer
// tolerates empty or malformed values.
type Commit struct {
	Message       string `json:"message"`
	CommittedDate string `json:"committed_date"`
	ChangedFiles  int    `json:"changed_files"`
}

// Language is one entry of a normalized language distribution.
type Language struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Repo holds the repository metadata the scoring engine consumes.
type Repo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	IsFork      bool     `json:"is_fork"`
	UpdatedAt   string   `json:"updated_at"`
	Topics      []string `json:"topics"`
}

// ContributionStats aggregates recent public event counts for a user.
type ContributionStats struct {
	RecentCommits int `json:"recent_commits"`
	RecentPRs     int `json:"recent_prs"`
	RecentIssues  int `json:"recent_issues"`
	RecentReviews int `json:"recent_reviews"`
}

// Profile is the aggregate input to the scoring engine.
type Profile struct {
	Username          string            `json:"username"`
	Repos             []Repo            `json:"repos"`
	Languages         LanguageList      `json:"languages"`
	Followers         int               `json:"followers"`
	Following         int               `json:"following"`
	Organizations     []string          `json:"organizations"`
	ContributionStats ContributionStats `json:"contribution_stats"`
}
