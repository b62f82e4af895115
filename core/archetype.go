package core

import (
	"sort"

	"github.com/devlens/devlens/schema"
)

// archetypeCandidate pairs an archetype with its weighted score.
type archetypeCandidate struct {
	archetype schema.Archetype
	score     float64
}

// classifyArchetype matches the dimension scores against every eligible
// archetype and picks the best weighted fit. Positive weights are
// normalized by their sum; negative weights apply afterwards as raw
// penalties. Confidence reflects the gap to the runner-up.
func (e *Engine) classifyArchetype(scores map[schema.Dimension]int, profile *schema.Profile) schema.ArchetypeResult {
	langNames := profile.Languages.NameSet()
	allTopics := topicSet(profile.Repos)

	var candidates []archetypeCandidate
	for _, arch := range e.archetypes {
		if !meetsRequirements(arch.Requires, langNames, allTopics) {
			continue
		}

		weighted := 0.0
		positiveSum := 0.0
		for _, dim := range schema.AllDimensions {
			w, ok := arch.Weights[dim]
			if !ok || w <= 0 {
				continue
			}
			weighted += float64(scores[dim]) * w
			positiveSum += w
		}
		if positiveSum > 0 {
			weighted /= positiveSum
		}
		for _, dim := range schema.AllDimensions {
			if w := arch.Weights[dim]; w < 0 {
				weighted += float64(scores[dim]) * w
			}
		}

		if weighted >= arch.MinScore {
			candidates = append(candidates, archetypeCandidate{archetype: arch, score: weighted})
		}
	}

	if len(candidates) == 0 {
		return e.fallbackArchetype()
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	primary := candidates[0]

	confidence := 0.9
	if len(candidates) >= 2 {
		gap := primary.score - candidates[1].score
		confidence = min(0.5+gap/40, 1.0)
	}

	alternatives := make([]schema.AlternativeArchetype, 0)
	for _, c := range candidates[1:min(len(candidates), 4)] {
		alternatives = append(alternatives, schema.AlternativeArchetype{
			ID:    c.archetype.ID,
			Name:  c.archetype.Name,
			Score: roundTo(c.score, 1),
		})
	}

	return schema.ArchetypeResult{
		ID:           primary.archetype.ID,
		Name:         primary.archetype.Name,
		Description:  primary.archetype.Description,
		Confidence:   roundTo(confidence, 2),
		Alternatives: alternatives,
	}
}

// fallbackArchetype returns the catch-all persona at half confidence.
func (e *Engine) fallbackArchetype() schema.ArchetypeResult {
	fallback := findArchetype(e.archetypes, schema.FallbackArchetypeID)
	if fallback == nil {
		fallback = findArchetype(schema.DefaultArchetypes, schema.FallbackArchetypeID)
	}
	return schema.ArchetypeResult{
		ID:           fallback.ID,
		Name:         fallback.Name,
		Description:  fallback.Description,
		Confidence:   0.5,
		Alternatives: make([]schema.AlternativeArchetype, 0),
	}
}

func findArchetype(defs []schema.Archetype, id string) *schema.Archetype {
	for i := range defs {
		if defs[i].ID == id {
			return &defs[i]
		}
	}
	return nil
}

// meetsRequirements checks every eligibility predicate against the
// profile's language names and lower-cased topics.
func meetsRequirements(reqs []schema.Requirement, langNames, allTopics map[string]struct{}) bool {
	for _, req := range reqs {
		var ok bool
		switch req {
		case schema.RequiresBackendLangs:
			ok = intersects(langNames, schema.BackendLanguages)
		case schema.RequiresFrontendLangs:
			ok = intersects(langNames, schema.FrontendLanguages)
		case schema.RequiresDataScienceLangs:
			ok = intersects(langNames, schema.DataScienceLanguages)
		case schema.RequiresDevOpsTopics:
			ok = intersects(allTopics, schema.DevOpsTopics)
		case schema.RequiresSecurityTopics:
			ok = intersects(allTopics, schema.SecurityTopics)
		}
		if !ok {
			return false
		}
	}
	return true
}
