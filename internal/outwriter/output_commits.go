package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteCommitAnalysisResult outputs a commit analysis result, dispatching based on the output format configured.
func WriteCommitAnalysisResult(result *schema.CommitAnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONCommitAnalysis(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVCommitAnalysis(csvWriter, result)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errors.New("parquet output is not supported for commit analysis")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCommitAnalysisText(w, result, duration)
		}, "Wrote text")
	}
}

// writeCommitAnalysisText generates and writes the human-readable report.
func writeCommitAnalysisText(w io.Writer, result *schema.CommitAnalysisResult, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "Commit signal analysis\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Commits analyzed: %d\n", result.TotalCommitsAnalyzed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Commits with AI signals: %d (%.1f%%)\n", result.CommitsWithAISignals, result.AIPercentage()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Heuristic score: %.1f\n", result.AIHeuristicScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Burst score: %.2f\n", result.BurstScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Confidence: %s\n", result.AIConfidence); err != nil {
		return err
	}

	if result.AIToolMentions.Len() > 0 {
		if _, err := fmt.Fprintf(w, "\nAI tool mentions:\n"); err != nil {
			return err
		}
		if err := writeCountTable(w, result.AIToolMentions, "Tool"); err != nil {
			return err
		}
	}

	if result.CoAuthorBots.Len() > 0 {
		if _, err := fmt.Fprintf(w, "\nBot co-authors:\n"); err != nil {
			return err
		}
		if err := writeCountTable(w, result.CoAuthorBots, "Bot"); err != nil {
			return err
		}
	}

	if len(result.CoAuthors) > 0 {
		if _, err := fmt.Fprintf(w, "\nHuman co-authors:\n"); err != nil {
			return err
		}
		for _, ca := range result.CoAuthors {
			if _, err := fmt.Fprintf(w, "  %s <%s>\n", ca.Name, ca.Email); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\nAnalyzed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCountTable renders a name/count table in first-seen order.
func writeCountTable(w io.Writer, counts *schema.CountByName, nameHeader string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{nameHeader, "Mentions"})

	var data [][]string
	for _, name := range counts.Names() {
		data = append(data, []string{name, strconv.Itoa(counts.Count(name))})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVCommitAnalysis writes detection counts as rows keyed by kind.
func writeCSVCommitAnalysis(w *csv.Writer, result *schema.CommitAnalysisResult) error {
	header := []string{"kind", "name", "count"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, name := range result.AIToolMentions.Names() {
		rec := []string{"tool", name, strconv.Itoa(result.AIToolMentions.Count(name))}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	for _, name := range result.CoAuthorBots.Names() {
		rec := []string{"bot", name, strconv.Itoa(result.CoAuthorBots.Count(name))}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONCommitAnalysis writes the analysis in JSON format with derived fields added.
func writeJSONCommitAnalysis(w io.Writer, result *schema.CommitAnalysisResult) error {
	type JSONCommitAnalysis struct {
		*schema.CommitAnalysisResult
		AIPercentage  float64  `json:"ai_percentage"`
		DetectedTools []string `json:"detected_tools"`
	}

	return writeJSON(w, JSONCommitAnalysis{
		CommitAnalysisResult: result,
		AIPercentage:         result.AIPercentage(),
		DetectedTools:        result.DetectedTools(),
	})
}
