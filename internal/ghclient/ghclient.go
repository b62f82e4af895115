// Package ghclient fetches profile and commit data from the GitHub REST API.
package ghclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/internal/logging"
	"github.com/devlens/devlens/schema"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.github.com"
	requestTimeout = 30 * time.Second

	// maxReposPerPage is GitHub's maximum page size.
	maxReposPerPage = 100

	// commitSourceRepos is how many recently pushed non-fork repos are
	// sampled for commit analysis.
	commitSourceRepos = 5
)

// Client is a GitHub REST API client.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    *url.URL
}

var _ contract.ProfileSource = &Client{} // Compile-time check

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root. Tests use this
// with httptest servers.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if u, err := url.Parse(raw); err == nil {
			c.baseURL = u
		}
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient returns a GitHub client. An empty token means unauthenticated
// requests, which work but hit much lower rate limits.
func NewClient(token string, opts ...Option) *Client {
	baseURL, _ := url.Parse(defaultBaseURL)
	c := &Client{
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// userResponse is the /users/{username} payload subset we consume.
type userResponse struct {
	Login     string `json:"login"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

// repoResponse is the /users/{username}/repos payload subset we consume.
type repoResponse struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Language        string   `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Fork            bool     `json:"fork"`
	UpdatedAt       string   `json:"updated_at"`
	PushedAt        string   `json:"pushed_at"`
	Topics          []string `json:"topics"`
}

// orgResponse is the /users/{username}/orgs payload subset we consume.
type orgResponse struct {
	Login string `json:"login"`
}

// eventResponse is the /users/{username}/events/public payload subset.
type eventResponse struct {
	Type    string `json:"type"`
	Payload struct {
		Size   int    `json:"size"`
		Action string `json:"action"`
	} `json:"payload"`
}

// commitResponse is the /repos/{owner}/{repo}/commits payload subset.
type commitResponse struct {
	Commit struct {
		Message   string `json:"message"`
		Committer struct {
			Date string `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
}

// FetchProfile assembles a scoring profile from the user, repos, orgs and
// public events endpoints.
func (c *Client) FetchProfile(ctx context.Context, username string) (*schema.Profile, error) {
	var user userResponse
	if err := c.getJSON(ctx, "/users/"+username, nil, &user); err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", username, err)
	}

	var repos []repoResponse
	query := url.Values{
		"per_page": {strconv.Itoa(maxReposPerPage)},
		"sort":     {"updated"},
		"type":     {"owner"},
	}
	if err := c.getJSON(ctx, "/users/"+username+"/repos", query, &repos); err != nil {
		return nil, fmt.Errorf("fetch repos for %s: %w", username, err)
	}

	var orgs []orgResponse
	if err := c.getJSON(ctx, "/users/"+username+"/orgs", nil, &orgs); err != nil {
		logging.Warn("failed to fetch orgs, continuing without",
			zap.String("username", username), zap.Error(err))
	}

	var events []eventResponse
	if err := c.getJSON(ctx, "/users/"+username+"/events/public", url.Values{"per_page": {"100"}}, &events); err != nil {
		logging.Warn("failed to fetch events, continuing without",
			zap.String("username", username), zap.Error(err))
	}

	profile := &schema.Profile{
		Username:          username,
		Repos:             convertRepos(repos),
		Languages:         languagesFromRepos(repos),
		Followers:         user.Followers,
		Following:         user.Following,
		Organizations:     make([]string, 0, len(orgs)),
		ContributionStats: statsFromEvents(events),
	}
	for _, org := range orgs {
		profile.Organizations = append(profile.Organizations, org.Login)
	}

	logging.Info("fetched profile",
		zap.String("username", username),
		zap.Int("repos", len(profile.Repos)),
		zap.Int("languages", len(profile.Languages)))

	return profile, nil
}

// FetchRecentCommits samples commits the user authored in their most
// recently pushed non-fork repositories, newest first, up to limit.
func (c *Client) FetchRecentCommits(ctx context.Context, username string, limit int) ([]schema.Commit, error) {
	if limit <= 0 {
		return nil, nil
	}

	var repos []repoResponse
	query := url.Values{
		"per_page": {strconv.Itoa(maxReposPerPage)},
		"sort":     {"pushed"},
		"type":     {"owner"},
	}
	if err := c.getJSON(ctx, "/users/"+username+"/repos", query, &repos); err != nil {
		return nil, fmt.Errorf("fetch repos for %s: %w", username, err)
	}

	var sources []repoResponse
	for _, r := range repos {
		if r.Fork {
			continue
		}
		sources = append(sources, r)
		if len(sources) == commitSourceRepos {
			break
		}
	}

	var commits []schema.Commit
	for _, repo := range sources {
		if len(commits) >= limit {
			break
		}
		perRepo := min(limit-len(commits), maxReposPerPage)

		var raw []commitResponse
		q := url.Values{
			"author":   {username},
			"per_page": {strconv.Itoa(perRepo)},
		}
		path := "/repos/" + username + "/" + repo.Name + "/commits"
		if err := c.getJSON(ctx, path, q, &raw); err != nil {
			// Empty repos return 409; skip rather than fail the run.
			logging.Warn("failed to fetch commits, skipping repo",
				zap.String("repo", repo.Name), zap.Error(err))
			continue
		}

		for _, cr := range raw {
			commits = append(commits, schema.Commit{
				Message:       cr.Commit.Message,
				CommittedDate: cr.Commit.Committer.Date,
			})
		}
	}

	logging.Info("fetched commits",
		zap.String("username", username),
		zap.Int("count", len(commits)))

	return commits, nil
}

// getJSON issues an authenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	if query != nil {
		reqURL.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0" {
		reset, _ := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64)
		return fmt.Errorf("rate limit exceeded, resets at %s", time.Unix(reset, 0).Format(time.RFC3339))
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: not found", path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: status code %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// convertRepos maps API repos into the scoring schema.
func convertRepos(repos []repoResponse) []schema.Repo {
	out := make([]schema.Repo, 0, len(repos))
	for _, r := range repos {
		out = append(out, schema.Repo{
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			IsFork:      r.Fork,
			UpdatedAt:   r.UpdatedAt,
			Topics:      r.Topics,
		})
	}
	return out
}

// languagesFromRepos derives a language distribution from primary repo
// languages, weighted by repo count. Forks are excluded so mirrored code
// does not inflate the profile.
func languagesFromRepos(repos []repoResponse) schema.LanguageList {
	counts := make(map[string]float64)
	for _, r := range repos {
		if r.Fork || r.Language == "" {
			continue
		}
		counts[r.Language]++
	}
	return schema.NormalizeLanguageMap(counts)
}

// statsFromEvents aggregates recent public events into contribution stats.
func statsFromEvents(events []eventResponse) schema.ContributionStats {
	var stats schema.ContributionStats
	for _, ev := range events {
		switch ev.Type {
		case "PushEvent":
			size := ev.Payload.Size
			if size == 0 {
				size = 1
			}
			stats.RecentCommits += size
		case "PullRequestEvent":
			stats.RecentPRs++
		case "IssuesEvent":
			stats.RecentIssues++
		case "PullRequestReviewEvent":
			stats.RecentReviews++
		}
	}
	return stats
}
