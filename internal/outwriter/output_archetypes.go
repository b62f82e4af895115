package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/schema"
)

// archetypeRenderEntry is the processed view of one archetype definition.
type archetypeRenderEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Formula     string   `json:"formula"`
	MinScore    float64  `json:"min_score"`
	Requires    []string `json:"requires,omitempty"`
}

// buildArchetypeRenderEntries constructs the render model for archetype definitions.
func buildArchetypeRenderEntries(archetypes []schema.Archetype) []archetypeRenderEntry {
	entries := make([]archetypeRenderEntry, len(archetypes))
	for i, a := range archetypes {
		var requires []string
		for _, r := range a.Requires {
			requires = append(requires, string(r))
		}
		entries[i] = archetypeRenderEntry{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Formula:     formatArchetypeFormula(a.Weights),
			MinScore:    a.MinScore,
			Requires:    requires,
		}
	}
	return entries
}

// WriteArchetypeDefinitions displays the archetype catalog.
// This is a static display that does not require profile data.
func WriteArchetypeDefinitions(archetypes []schema.Archetype, cfg *contract.Config) error {
	entries := buildArchetypeRenderEntries(archetypes)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVArchetypes(csvWriter, entries)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errors.New("parquet output is not supported for archetype definitions")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeArchetypesText(w, entries)
		}, "Wrote text")
	}
}

// writeArchetypesText displays archetypes in human-readable text format.
func writeArchetypesText(w io.Writer, entries []archetypeRenderEntry) error {
	if _, err := fmt.Fprintf(w, "Developer Archetypes\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "====================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Weighted score = sum of positive weights normalized, penalties applied after\n\n"); err != nil {
		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s (%s)\n", e.Name, e.ID); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   %s\n", e.Description); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: %s\n", e.Formula); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Minimum score: %.0f\n", e.MinScore); err != nil {
			return err
		}
		if len(e.Requires) > 0 {
			if _, err := fmt.Fprintf(w, "   Requires: %s\n", strings.Join(e.Requires, ", ")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVArchetypes writes archetype definitions in CSV format.
func writeCSVArchetypes(w *csv.Writer, entries []archetypeRenderEntry) error {
	header := []string{"id", "name", "min_score", "formula", "requires"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			e.ID,
			e.Name,
			fmt.Sprintf("%.0f", e.MinScore),
			e.Formula,
			strings.Join(e.Requires, "|"),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
