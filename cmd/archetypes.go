package cmd

import (
	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/internal/outwriter"
	"github.com/devlens/devlens/schema"
	"github.com/spf13/cobra"
)

// archetypesCmd displays the archetype catalog.
var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "Display all developer archetypes with their weights and thresholds",
	Long: `Show the archetype definitions used for classification.

Provides complete transparency into how profiles are classified, including:
- Archetype name, id, and description
- Per-dimension weights and penalties
- Minimum weighted score required to qualify
- Language/topic requirements, if any

No profile data is fetched - this is purely informational.

Examples:
  # Show the archetype catalog
  devlens archetypes

  # Machine-readable catalog
  devlens archetypes --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.NewOutWriter().WriteArchetypes(schema.DefaultArchetypes, cfg); err != nil {
			contract.LogFatal("Cannot display archetypes", err)
		}
	},
}
