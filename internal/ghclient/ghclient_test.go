package ghclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer serves canned GitHub API responses.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"login":"octocat","followers":120,"following":10}`))
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"name":"api","language":"Go","stargazers_count":40,"forks_count":3,
			 "fork":false,"updated_at":"2025-05-01T00:00:00Z","topics":["gin","docker"]},
			{"name":"web","language":"TypeScript","stargazers_count":15,"forks_count":1,
			 "fork":false,"updated_at":"2025-04-01T00:00:00Z","topics":["react"]},
			{"name":"mirror","language":"C","stargazers_count":900,"forks_count":80,
			 "fork":true,"updated_at":"2025-03-01T00:00:00Z","topics":[]}
		]`))
	})
	mux.HandleFunc("/users/octocat/orgs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"login":"acme"}]`))
	})
	mux.HandleFunc("/users/octocat/events/public", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"type":"PushEvent","payload":{"size":3}},
			{"type":"PushEvent","payload":{}},
			{"type":"PullRequestEvent","payload":{"action":"opened"}},
			{"type":"IssuesEvent","payload":{"action":"opened"}},
			{"type":"PullRequestReviewEvent","payload":{}},
			{"type":"WatchEvent","payload":{}}
		]`))
	})
	mux.HandleFunc("/repos/octocat/api/commits", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"commit":{"message":"Add handler","committer":{"date":"2025-05-01T10:00:00Z"}}},
			{"commit":{"message":"Fix bug","committer":{"date":"2025-05-01T09:00:00Z"}}}
		]`))
	})
	mux.HandleFunc("/repos/octocat/web/commits", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"commit":{"message":"Style tweaks","committer":{"date":"2025-04-01T10:00:00Z"}}}
		]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestFetchProfile assembles a profile from the canned endpoints.
func TestFetchProfile(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient("", WithBaseURL(srv.URL))

	profile, err := client.FetchProfile(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "octocat", profile.Username)
	assert.Equal(t, 120, profile.Followers)
	assert.Equal(t, 10, profile.Following)
	assert.Equal(t, []string{"acme"}, profile.Organizations)
	assert.Len(t, profile.Repos, 3)

	// Forks are excluded from the language distribution.
	assert.Equal(t, []string{"Go", "TypeScript"}, profile.Languages.Names())
	assert.InDelta(t, 50.0, profile.Languages[0].Percentage, 0.001)

	// Push size 0 still counts one commit.
	assert.Equal(t, 4, profile.ContributionStats.RecentCommits)
	assert.Equal(t, 1, profile.ContributionStats.RecentPRs)
	assert.Equal(t, 1, profile.ContributionStats.RecentIssues)
	assert.Equal(t, 1, profile.ContributionStats.RecentReviews)
}

// TestFetchProfileUserNotFound surfaces a 404 as an error.
func TestFetchProfileUserNotFound(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient("", WithBaseURL(srv.URL))

	_, err := client.FetchProfile(context.Background(), "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// TestFetchRecentCommits samples non-fork repos and honors the limit.
func TestFetchRecentCommits(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient("", WithBaseURL(srv.URL))

	t.Run("all commits", func(t *testing.T) {
		commits, err := client.FetchRecentCommits(context.Background(), "octocat", 10)
		require.NoError(t, err)
		require.Len(t, commits, 3)
		assert.Equal(t, "Add handler", commits[0].Message)
		assert.Equal(t, "2025-05-01T10:00:00Z", commits[0].CommittedDate)
	})

	t.Run("limit respected", func(t *testing.T) {
		commits, err := client.FetchRecentCommits(context.Background(), "octocat", 2)
		require.NoError(t, err)
		assert.Len(t, commits, 2)
	})

	t.Run("zero limit skips fetching", func(t *testing.T) {
		commits, err := client.FetchRecentCommits(context.Background(), "octocat", 0)
		require.NoError(t, err)
		assert.Empty(t, commits)
	})
}

// TestAuthorizationHeader ensures the token is sent when configured.
func TestAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"login":"octocat"}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient("secret-token", WithBaseURL(srv.URL))
	var out userResponse
	require.NoError(t, client.getJSON(context.Background(), "/users/octocat", nil, &out))
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

// TestRateLimitError reports the reset time instead of blocking.
func TestRateLimitError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "1750000000")
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	client := NewClient("", WithBaseURL(srv.URL))
	_, err := client.FetchProfile(context.Background(), "octocat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}
