package cmd

import (
	"time"

	"github.com/devlens/devlens/core"
	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/internal/outwriter"
	"github.com/spf13/cobra"
)

// commitsCmd runs the commit signal analyzer on its own.
var commitsCmd = &cobra.Command{
	Use:   "commits [username]",
	Short: "Detect AI-tool signals in recent commit messages.",
	Long: `Analyze commit messages for signs of AI-assisted authoring without
scoring the full profile.

Detects:
- Direct tool mentions (claude, copilot, cursor, and others)
- Co-authored-by trailers from known bots
- Message phrasing heuristics and burst-pattern timing

Commits come from the GitHub API (token required) or from a JSON file.

Examples:
  # Analyze recent commits for a user
  DEVLENS_TOKEN=ghp_xxx devlens commits octocat

  # Analyze a captured commit list
  devlens commits --commits-file commits.json

  # Export detection counts
  devlens commits octocat --output csv --output-file signals.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		result, err := core.GetCommitAnalysisResult(rootCtx, cfg, profileSource)
		if err != nil {
			contract.LogFatal("Cannot analyze commits", err)
		}
		if err := outwriter.NewOutWriter().WriteCommitAnalysis(result, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write commit analysis output", err)
		}
	},
}
