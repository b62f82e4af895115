package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/schema"
	"golang.org/x/term"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// displayDimensionName returns the human-readable name for a dimension.
func displayDimensionName(dim schema.Dimension) string {
	switch dim {
	case schema.ActivityDim:
		return "Activity"
	case schema.CollaborationDim:
		return "Collaboration"
	case schema.StackDiversityDim:
		return "Stack Diversity"
	case schema.AISavvinessDim:
		return "AI Savviness"
	default:
		return strings.ToUpper(string(dim))
	}
}

// displayBucketName returns the human-readable range for an AI-usage bucket.
func displayBucketName(bucket schema.Bucket) string {
	switch bucket {
	case schema.HeavyBucket:
		return "Heavy (60-100%)"
	case schema.ModerateBucket:
		return "Moderate (30-60%)"
	case schema.LightBucket:
		return "Light (10-30%)"
	case schema.MinimalBucket:
		return "Minimal (0-10%)"
	default:
		return string(bucket)
	}
}

// getMaxTableDescWidth calculates the maximum width for repo descriptions in
// table output based on terminal width.
func getMaxTableDescWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the Name + Language + Stars columns with borders/padding
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 20 {
		// Minimum reasonable description width
		return 20
	}
	if available > 60 {
		// Maximum description width to keep rows scannable
		return 60
	}
	return available
}

// formatArchetypeFormula renders the weighted-sum formula for an archetype.
// Positive weights come first, penalties trail with a minus sign.
func formatArchetypeFormula(weights map[schema.Dimension]float64) string {
	var positives, negatives []string
	for _, dim := range schema.AllDimensions {
		w, ok := weights[dim]
		if !ok || w == 0 {
			continue
		}
		if w > 0 {
			positives = append(positives, fmt.Sprintf("%.2f*%s", w, dim))
		} else {
			negatives = append(negatives, fmt.Sprintf("%.2f*%s", -w, dim))
		}
	}
	formula := strings.Join(positives, " + ")
	for _, part := range negatives {
		formula += " - " + part
	}
	return formula
}
