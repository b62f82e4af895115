package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/devlens/devlens/core"
	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	source  contract.ProfileSource
	mgr     contract.CacheManager
}

func (h *toolHandler) handleScoreProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Username = request.GetString("username", "")
	if cfg.Username == "" {
		return mcp.NewToolResultError("username is required"), nil
	}
	if l := request.GetInt("commit_limit", 0); l > 0 {
		if l > contract.MaxCommitLimit {
			return mcp.NewToolResultError(fmt.Sprintf("commit_limit must be at most %d", contract.MaxCommitLimit)), nil
		}
		cfg.CommitLimit = l
	}
	if request.GetBool("refresh", false) {
		cfg.RefreshCache = true
	}

	result, err := core.GetProfileScoreResult(ctx, cfg, h.source, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScoreProfileData(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileJSON := request.GetString("profile_json", "")
	if profileJSON == "" {
		return mcp.NewToolResultError("profile_json is required"), nil
	}

	var profile schema.Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid profile_json: %v", err)), nil
	}

	var commits []schema.Commit
	if commitsJSON := request.GetString("commits_json", ""); commitsJSON != "" {
		if err := json.Unmarshal([]byte(commitsJSON), &commits); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid commits_json: %v", err)), nil
		}
	}

	result := core.NewEngine().ScoreProfile(&profile, commits)
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAnalyzeCommits(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	commitsJSON := request.GetString("commits_json", "")
	if commitsJSON == "" {
		return mcp.NewToolResultError("commits_json is required"), nil
	}

	var commits []schema.Commit
	if err := json.Unmarshal([]byte(commitsJSON), &commits); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid commits_json: %v", err)), nil
	}
	if len(commits) == 0 {
		return mcp.NewToolResultError("commits_json must contain at least one commit"), nil
	}

	result := core.NewAnalyzer().AnalyzeCommits(commits)
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
