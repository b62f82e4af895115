package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/internal/parquet"
	"github.com/devlens/devlens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteScoreResult outputs a scoring result, dispatching based on the output format configured.
func WriteScoreResult(result *schema.ScoringResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeScoreJSONResult(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeScoreCSVResult(result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeScoreParquetResult(result, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable text
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreText(w, result, cfg, duration)
		}, "Wrote text")
	}
	return nil
}

// writeScoreJSONResult handles opening the file and calling the JSON writer.
func writeScoreJSONResult(result *schema.ScoringResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONScoreResult(w, result, cfg.Username)
	}, "Wrote JSON")
}

// writeScoreCSVResult handles opening the file and calling the CSV writer.
func writeScoreCSVResult(result *schema.ScoringResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVScoreResult(csvWriter, result, cfg.Username)
	}, "Wrote CSV")
}

// writeScoreParquetResult flattens the result and writes a Parquet file.
// Parquet is a binary format, so a destination file is required.
func writeScoreParquetResult(result *schema.ScoringResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("parquet output requires --output-file")
	}
	record := parquet.ConvertScoringResult(cfg.Username, time.Now(), result)
	if err := parquet.WriteScoreRecords([]parquet.ScoreRecord{record}, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeScoreText generates and writes the human-readable report.
func writeScoreText(w io.Writer, result *schema.ScoringResult, cfg *contract.Config, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "Developer profile: %s\n\n", cfg.Username); err != nil {
		return err
	}

	// 1. Dimension scores table
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Dimension", "Score", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, dim := range schema.AllDimensions {
		score := result.Scores[dim]
		data = append(data, []string{
			displayDimensionName(dim),
			strconv.Itoa(score),
			contract.GetColorLabel(float64(score)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// 2. Archetype
	arch := result.Archetype
	if _, err := fmt.Fprintf(w, "\nArchetype: %s (%.0f%% confidence)\n", arch.Name, arch.Confidence*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %s\n", arch.Description); err != nil {
		return err
	}
	for _, alt := range arch.Alternatives {
		if _, err := fmt.Fprintf(w, "  Runner-up: %s (%.1f)\n", alt.Name, alt.Score); err != nil {
			return err
		}
	}

	// 3. AI usage summary
	ai := result.AIAnalysis
	if _, err := fmt.Fprintf(w, "\nAI usage: %s, %s confidence\n", displayBucketName(ai.OverallBucket), ai.Confidence); err != nil {
		return err
	}
	if len(ai.DetectedTools) > 0 {
		if _, err := fmt.Fprintf(w, "  Detected tools: %s\n", strings.Join(ai.DetectedTools, ", ")); err != nil {
			return err
		}
	}
	if detail := ai.CommitAnalysis; detail != nil {
		if _, err := fmt.Fprintf(w, "  Commits analyzed: %d (%.1f%% with AI signals, burst score %.2f)\n",
			detail.CommitsAnalyzed, detail.AIPercentage, detail.BurstScore); err != nil {
			return err
		}
	}
	if ai.Note != "" {
		if _, err := fmt.Fprintf(w, "  Note: %s\n", ai.Note); err != nil {
			return err
		}
	}

	// 4. Tech profile
	tech := result.TechProfile
	if _, err := fmt.Fprintf(w, "\nPrimary ecosystem: %s\n", tech.PrimaryEcosystem); err != nil {
		return err
	}
	if len(tech.Languages) > 0 {
		if _, err := fmt.Fprintf(w, "Languages: %s\n", strings.Join(tech.Languages, ", ")); err != nil {
			return err
		}
	}
	if len(tech.Frameworks) > 0 {
		if _, err := fmt.Fprintf(w, "Frameworks: %s\n", strings.Join(tech.Frameworks, ", ")); err != nil {
			return err
		}
	}
	if len(tech.TopRepos) > 0 {
		if _, err := fmt.Fprintf(w, "\nTop repositories:\n"); err != nil {
			return err
		}
		repoTable := tablewriter.NewWriter(w)
		repoTable.Header([]string{"Name", "Language", "Stars", "Description"})
		var repoData [][]string
		descWidth := getMaxTableDescWidth(cfg)
		for _, repo := range tech.TopRepos {
			repoData = append(repoData, []string{
				repo.Name,
				repo.Language,
				strconv.Itoa(repo.Stars),
				contract.TruncateText(repo.Description, descWidth),
			})
		}
		if err := repoTable.Bulk(repoData); err != nil {
			return err
		}
		if err := repoTable.Render(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nScored in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVScoreResult writes one row per dimension with shared profile columns.
func writeCSVScoreResult(w *csv.Writer, result *schema.ScoringResult, username string) error {
	header := []string{
		"username",
		"dimension",
		"score",
		"label",
		"archetype",
		"archetype_confidence",
		"ai_bucket",
		"ai_confidence",
		"primary_ecosystem",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, dim := range schema.AllDimensions {
		score := result.Scores[dim]
		rec := []string{
			username,
			string(dim),
			strconv.Itoa(score),
			contract.GetPlainLabel(float64(score)),
			result.Archetype.ID,
			fmt.Sprintf("%.2f", result.Archetype.Confidence),
			string(result.AIAnalysis.OverallBucket),
			string(result.AIAnalysis.Confidence),
			result.TechProfile.PrimaryEcosystem,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONScoreResult writes the scoring result in JSON format.
func writeJSONScoreResult(w io.Writer, result *schema.ScoringResult, username string) error {
	// Wrap the result with the username and per-dimension labels
	type JSONScoringResult struct {
		Username string                      `json:"username"`
		Labels   map[schema.Dimension]string `json:"labels"`
		*schema.ScoringResult
	}

	labels := make(map[schema.Dimension]string, len(result.Scores))
	for _, dim := range schema.AllDimensions {
		labels[dim] = contract.GetPlainLabel(float64(result.Scores[dim]))
	}

	return writeJSON(w, JSONScoringResult{
		Username:      username,
		Labels:        labels,
		ScoringResult: result,
	})
}
