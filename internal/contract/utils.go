package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Score label constants.
const (
	ExpertValue     = "Expert"     // Expert value
	StrongValue     = "Strong"     // Strong value
	DevelopingValue = "Developing" // Developing value
	EmergingValue   = "Emerging"   // Emerging value
)

// Color variables for console output.
var (
	ExpertColor     = color.New(color.FgGreen, color.Bold) // expertColor represents a standout dimension.
	StrongColor     = color.New(color.FgCyan, color.Bold)  // strongColor represents a solid dimension.
	DevelopingColor = color.New(color.FgYellow)            // developingColor represents middling signal, not bold.
	EmergingColor   = color.New(color.FgWhite)             // emergingColor represents a quiet dimension.
)

// GetPlainLabel returns a plain text label for a dimension score. This is
// the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return ExpertValue
	case score >= 60:
		return StrongValue
	case score >= 40:
		return DevelopingValue
	default:
		return EmergingValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case ExpertValue:
		return ExpertColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case DevelopingValue:
		return DevelopingColor.Sprint(text)
	default: // "Emerging"
		return EmergingColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".devlens_cache.db"
	}
	return filepath.Join(homeDir, ".devlens_cache.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs a fatal message to stderr and exits.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateText truncates a string to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for both the ellipsis and
// at least one character of content.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}
