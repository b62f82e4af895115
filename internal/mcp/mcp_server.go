// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/devlens/devlens/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the DevLens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, source contract.ProfileSource, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"DevLens Profile Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		source:  source,
		mgr:     mgr,
	}

	// --- 1. Tool: score_profile ---
	s.AddTool(mcp.NewTool("score_profile",
		mcp.WithDescription("Score a GitHub user across four dimensions and classify their developer archetype."),
		mcp.WithString("username", mcp.Description("GitHub username to score."), mcp.Required()),
		mcp.WithNumber("commit_limit", mcp.Description("Maximum number of recent commits to analyze (requires a configured token).")),
		mcp.WithBoolean("refresh", mcp.Description("Bypass the cache and recompute the score.")),
	), h.handleScoreProfile)

	// --- 2. Tool: score_profile_data ---
	s.AddTool(mcp.NewTool("score_profile_data",
		mcp.WithDescription("Score a profile from inline JSON data instead of the live API."),
		mcp.WithString("profile_json", mcp.Description("Profile document as JSON."), mcp.Required()),
		mcp.WithString("commits_json", mcp.Description("Optional commit list as a JSON array.")),
	), h.handleScoreProfileData)

	// --- 3. Tool: analyze_commits ---
	s.AddTool(mcp.NewTool("analyze_commits",
		mcp.WithDescription("Detect AI-tool signals in a list of commit messages."),
		mcp.WithString("commits_json", mcp.Description("Commit list as a JSON array."), mcp.Required()),
	), h.handleAnalyzeCommits)

	return s
}

// StartMCPServer starts the DevLens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, source contract.ProfileSource, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, source, mgr)
	return server.ServeStdio(s)
}
