package cmd

import (
	"time"

	"github.com/devlens/devlens/core"
	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/internal/outwriter"
	"github.com/spf13/cobra"
)

// scoreCmd scores a developer profile and classifies the archetype.
var scoreCmd = &cobra.Command{
	Use:   "score [username]",
	Short: "Score a GitHub profile across four dimensions and classify the archetype.",
	Long: `Fetch a GitHub profile and score it across four dimensions: activity,
collaboration, stack diversity, and AI savviness.

The score report includes:
- A 0-100 score per dimension with a qualitative label
- The best-fit developer archetype with runner-up candidates
- An AI-usage estimate with detected tools and confidence
- A condensed technology profile (languages, frameworks, top repos)

Commit-level AI detection needs a token; without one the AI estimate is
derived from repository metadata alone and marked as such.

Results are cached for a day per username. Use --refresh-cache to force
a recompute.

Examples:
  # Score a public profile
  devlens score octocat

  # Include commit analysis (token via env)
  DEVLENS_TOKEN=ghp_xxx devlens score octocat

  # Score from captured data instead of the live API
  devlens score --input-file profile.json --commits-file commits.json

  # Export the result for analytics
  devlens score octocat --output parquet --output-file scores.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		result, err := core.GetProfileScoreResult(rootCtx, cfg, profileSource, cacheManager)
		if err != nil {
			contract.LogFatal("Cannot score profile", err)
		}
		if err := outwriter.NewOutWriter().WriteScore(result, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write score output", err)
		}
	},
}
