// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScore prints a profile scoring result using the configured output format.
func (ow *OutWriter) WriteScore(result *schema.ScoringResult, cfg *contract.Config, duration time.Duration) error {
	return WriteScoreResult(result, cfg, duration)
}

// WriteCommitAnalysis prints a commit analysis result using the configured output format.
func (ow *OutWriter) WriteCommitAnalysis(result *schema.CommitAnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return WriteCommitAnalysisResult(result, cfg, duration)
}

// WriteArchetypes prints the archetype definitions using the configured output format.
func (ow *OutWriter) WriteArchetypes(archetypes []schema.Archetype, cfg *contract.Config) error {
	return WriteArchetypeDefinitions(archetypes, cfg)
}
