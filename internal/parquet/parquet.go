// Package parquet exports scoring results to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/devlens/devlens/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoreRecord is the flattened Parquet row for one scored profile.
// Commit-derived columns are nullable since commit analysis only runs
// when commit data was supplied.
type ScoreRecord struct {
	// Username is the GitHub login that was scored
	Username string `parquet:"username,snappy"`

	// GeneratedAt is when the score was produced (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// ActivityScore is the activity dimension score (0-100)
	ActivityScore int32 `parquet:"activity_score,snappy"`

	// CollaborationScore is the collaboration dimension score (0-100)
	CollaborationScore int32 `parquet:"collaboration_score,snappy"`

	// StackDiversityScore is the stack diversity dimension score (0-100)
	StackDiversityScore int32 `parquet:"stack_diversity_score,snappy"`

	// AISavvinessScore is the AI savviness dimension score (0-100)
	AISavvinessScore int32 `parquet:"ai_savviness_score,snappy"`

	// ArchetypeID identifies the classified developer archetype
	ArchetypeID string `parquet:"archetype_id,snappy"`

	// ArchetypeConfidence is the classification confidence (0-1)
	ArchetypeConfidence float64 `parquet:"archetype_confidence,snappy"`

	// AIBucket is the coarse AI-usage range label
	AIBucket string `parquet:"ai_bucket,snappy"`

	// AIConfidence is the AI detection confidence tier
	AIConfidence string `parquet:"ai_confidence,snappy"`

	// DetectedTools is a pipe-joined list of mentioned AI tools (nullable)
	DetectedTools *string `parquet:"detected_tools,optional,snappy"`

	// PrimaryEcosystem is the dominant technology ecosystem
	PrimaryEcosystem string `parquet:"primary_ecosystem,snappy"`

	// CommitsAnalyzed is the number of commits inspected (nullable)
	CommitsAnalyzed *int32 `parquet:"commits_analyzed,optional,snappy"`

	// AISignalsFound is the number of commits carrying AI signals (nullable)
	AISignalsFound *int32 `parquet:"ai_signals_found,optional,snappy"`

	// BurstScore is the burst-pattern score from commit timing (nullable)
	BurstScore *float64 `parquet:"burst_score,optional,snappy"`
}

// ConvertScoringResult flattens a scoring result into a Parquet row.
func ConvertScoringResult(username string, generatedAt time.Time, result *schema.ScoringResult) ScoreRecord {
	record := ScoreRecord{
		Username:            username,
		GeneratedAt:         generatedAt,
		ActivityScore:       int32(result.Scores[schema.ActivityDim]),
		CollaborationScore:  int32(result.Scores[schema.CollaborationDim]),
		StackDiversityScore: int32(result.Scores[schema.StackDiversityDim]),
		AISavvinessScore:    int32(result.Scores[schema.AISavvinessDim]),
		ArchetypeID:         result.Archetype.ID,
		ArchetypeConfidence: result.Archetype.Confidence,
		AIBucket:            string(result.AIAnalysis.OverallBucket),
		AIConfidence:        string(result.AIAnalysis.Confidence),
		PrimaryEcosystem:    result.TechProfile.PrimaryEcosystem,
	}

	if len(result.AIAnalysis.DetectedTools) > 0 {
		tools := strings.Join(result.AIAnalysis.DetectedTools, "|")
		record.DetectedTools = &tools
	}

	if detail := result.AIAnalysis.CommitAnalysis; detail != nil {
		commits := int32(detail.CommitsAnalyzed)
		signals := int32(detail.AISignalsFound)
		burst := detail.BurstScore
		record.CommitsAnalyzed = &commits
		record.AISignalsFound = &signals
		record.BurstScore = &burst
	}

	return record
}

// WriteScoreRecords writes score records to a Parquet file.
func WriteScoreRecords(data []ScoreRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the ScoreRecord struct tags
	writer := parquet.NewGenericWriter[ScoreRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
