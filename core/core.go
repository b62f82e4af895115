// Package core has core logic for commit analysis, profile scoring and
// archetype classification. Everything here is pure: no I/O, no clocks
// other than the injected one, no mutation of the shared rule tables.
package core

import (
	"math"
	"strings"
	"time"

	"github.com/devlens/devlens/schema"
)

// Engine scores profiles and classifies archetypes. The rule tables are
// bound at construction and never mutated afterwards, so a single Engine
// is safe for concurrent use from any number of goroutines.
type Engine struct {
	analyzer   *Analyzer
	archetypes []schema.Archetype
	now        func() time.Time
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithClock injects the time source used for recency decay. Tests pin this
// to a fixed instant so scoring is fully deterministic.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithArchetypes swaps the archetype definition table.
func WithArchetypes(defs []schema.Archetype) EngineOption {
	return func(e *Engine) { e.archetypes = defs }
}

// WithAnalyzer swaps the commit signal analyzer.
func WithAnalyzer(a *Analyzer) EngineOption {
	return func(e *Engine) { e.analyzer = a }
}

// NewEngine returns an Engine wired with the default rule tables.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		analyzer:   NewAnalyzer(),
		archetypes: schema.DefaultArchetypes,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyzer exposes the engine's commit signal analyzer for callers that
// only need commit-level analysis.
func (e *Engine) Analyzer() *Analyzer {
	return e.analyzer
}

// ScoreProfile scores a profile across all four dimensions, classifies the
// best-fit archetype and summarizes AI usage. When commits are supplied the
// commit signal analyzer runs first and its result feeds the AI-savviness
// dimension and the AI-usage summary.
func (e *Engine) ScoreProfile(profile *schema.Profile, commits []schema.Commit) *schema.ScoringResult {
	var analysis *schema.CommitAnalysisResult
	if len(commits) > 0 {
		analysis = e.analyzer.AnalyzeCommits(commits)
	}

	scores := map[schema.Dimension]int{
		schema.ActivityDim:       e.scoreActivity(profile),
		schema.CollaborationDim:  e.scoreCollaboration(profile),
		schema.StackDiversityDim: e.scoreStackDiversity(profile),
		schema.AISavvinessDim:    e.scoreAISavviness(profile, analysis),
	}

	return &schema.ScoringResult{
		Scores:      scores,
		Archetype:   e.classifyArchetype(scores, profile),
		AIAnalysis:  e.analyzeAIUsage(profile, scores[schema.AISavvinessDim], analysis),
		TechProfile: buildTechProfile(profile),
	}
}

// topicSet collects all repo topics, lower-cased.
func topicSet(repos []schema.Repo) map[string]struct{} {
	set := make(map[string]struct{})
	for _, repo := range repos {
		for _, topic := range repo.Topics {
			set[strings.ToLower(topic)] = struct{}{}
		}
	}
	return set
}

// intersectCount counts elements of set present in group.
func intersectCount(set, group map[string]struct{}) int {
	n := 0
	for item := range set {
		if _, ok := group[item]; ok {
			n++
		}
	}
	return n
}

// intersects reports whether set and group share any element.
func intersects(set, group map[string]struct{}) bool {
	for item := range set {
		if _, ok := group[item]; ok {
			return true
		}
	}
	return false
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
