package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/internal/iocache"
	"github.com/devlens/devlens/internal/logging"
	"github.com/devlens/devlens/schema"
	"go.uber.org/zap"
)

// GetProfileScoreResult loads the profile, scores it, and caches the outcome.
// The cache is consulted before any fetch so a warm entry costs no API calls.
func GetProfileScoreResult(ctx context.Context, cfg *contract.Config, source contract.ProfileSource, mgr contract.CacheManager) (*schema.ScoringResult, error) {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetResultStore()
	}

	if cfg.Username != "" && !cfg.RefreshCache {
		if cached := iocache.LookupResult(store, cfg.Username); cached != nil {
			logging.Debug("returning cached score", zap.String("username", cfg.Username))
			return cached, nil
		}
	}

	profile, err := loadProfile(ctx, cfg, source)
	if err != nil {
		return nil, err
	}
	if cfg.Username == "" {
		cfg.Username = profile.Username
	}

	commits, err := loadCommits(ctx, cfg, source, profile.Username)
	if err != nil {
		return nil, err
	}

	engine := NewEngine()
	result := engine.ScoreProfile(profile, commits)

	iocache.StoreResult(store, cfg.Username, result)
	return result, nil
}

// GetCommitAnalysisResult loads commit data and runs the signal analyzer
// without scoring the full profile.
func GetCommitAnalysisResult(ctx context.Context, cfg *contract.Config, source contract.ProfileSource) (*schema.CommitAnalysisResult, error) {
	commits, err := loadCommits(ctx, cfg, source, cfg.Username)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, fmt.Errorf("no commits to analyze: provide --commits-file or a username with --token")
	}
	return NewAnalyzer().AnalyzeCommits(commits), nil
}

// loadProfile reads the profile from the input file when one is configured,
// otherwise it fetches from the live API.
func loadProfile(ctx context.Context, cfg *contract.Config, source contract.ProfileSource) (*schema.Profile, error) {
	if cfg.Username == "" && cfg.InputFile == "" {
		return nil, fmt.Errorf("a username or --input-file is required")
	}
	if cfg.InputFile != "" {
		data, err := os.ReadFile(cfg.InputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile file: %w", err)
		}
		var profile schema.Profile
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse profile file %s: %w", cfg.InputFile, err)
		}
		if profile.Username == "" {
			profile.Username = cfg.Username
		}
		return &profile, nil
	}

	if source == nil {
		return nil, fmt.Errorf("no profile source configured")
	}
	return source.FetchProfile(ctx, cfg.Username)
}

// loadCommits reads commits from the commits file when one is configured.
// Live fetching requires a token: unauthenticated commit listing burns
// through the API quota too fast to be useful.
func loadCommits(ctx context.Context, cfg *contract.Config, source contract.ProfileSource, username string) ([]schema.Commit, error) {
	if cfg.CommitsFile != "" {
		data, err := os.ReadFile(cfg.CommitsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read commits file: %w", err)
		}
		var commits []schema.Commit
		if err := json.Unmarshal(data, &commits); err != nil {
			return nil, fmt.Errorf("failed to parse commits file %s: %w", cfg.CommitsFile, err)
		}
		return commits, nil
	}

	if source == nil || cfg.Token == "" || cfg.CommitLimit <= 0 || username == "" {
		return nil, nil
	}

	commits, err := source.FetchRecentCommits(ctx, username, cfg.CommitLimit)
	if err != nil {
		// Degrade to metadata-only scoring rather than failing the run
		logging.Warn("commit fetch failed, scoring from metadata only",
			zap.String("username", username), zap.Error(err))
		return nil, nil
	}
	return commits, nil
}
