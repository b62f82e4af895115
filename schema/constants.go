package schema

// Custom string types for type safety.
type (
	// Confidence represents a tier for AI detection confidence.
	Confidence string

	// Bucket represents a coarse AI-usage range label.
	Bucket string

	// Dimension represents one of the four scored axes.
	Dimension string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All confidence tiers supported.
const (
	LowConfidence    Confidence = "low"
	MediumConfidence Confidence = "medium"
	HighConfidence   Confidence = "high"

	// EstimatedConfidence marks results derived from repo metadata alone,
	// without commit-level analysis.
	EstimatedConfidence Confidence = "estimated"
)

// All AI-usage buckets supported.
const (
	MinimalBucket  Bucket = "0_10"
	LightBucket    Bucket = "10_30"
	ModerateBucket Bucket = "30_60"
	HeavyBucket    Bucket = "60_100"
)

// All scored dimensions.
const (
	ActivityDim       Dimension = "activity"
	CollaborationDim  Dimension = "collaboration"
	StackDiversityDim Dimension = "stack_diversity"
	AISavvinessDim    Dimension = "ai_savviness"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllDimensions lists dimensions in their canonical order. Scoring and
// classification iterate this slice so float accumulation stays
// deterministic across runs.
var AllDimensions = []Dimension{ActivityDim, CollaborationDim, StackDiversityDim, AISavvinessDim}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// BucketFor maps an AI-savviness score to its usage bucket.
func BucketFor(aiScore int) Bucket {
	switch {
	case aiScore >= 60:
		return HeavyBucket
	case aiScore >= 30:
		return ModerateBucket
	case aiScore >= 10:
		return LightBucket
	default:
		return MinimalBucket
	}
}
