package core

import (
	"sort"

	"github.com/devlens/devlens/schema"
)

// Tech profile caps.
const (
	maxProfileLanguages  = 10
	maxProfileFrameworks = 15
	maxTopRepos          = 5
	maxRepoDescription   = 100
)

// buildTechProfile condenses languages, frameworks and top repositories
// into the tech profile, and labels the primary ecosystem.
func buildTechProfile(profile *schema.Profile) schema.TechProfile {
	allTopics := topicSet(profile.Repos)

	frameworkSet := make(map[string]struct{})
	for topic := range allTopics {
		if _, ok := schema.KnownFrameworks[topic]; ok {
			frameworkSet[topic] = struct{}{}
		}
	}
	frameworks := make([]string, 0, len(frameworkSet))
	for fw := range frameworkSet {
		frameworks = append(frameworks, fw)
	}
	sort.Strings(frameworks)

	sorted := make([]schema.Repo, len(profile.Repos))
	copy(sorted, profile.Repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})

	topRepos := make([]schema.RepoSummary, 0, maxTopRepos)
	for _, r := range sorted[:min(len(sorted), maxTopRepos)] {
		topRepos = append(topRepos, schema.RepoSummary{
			Name:        r.Name,
			Language:    r.Language,
			Stars:       r.Stars,
			Description: truncate(r.Description, maxRepoDescription),
		})
	}

	languages := profile.Languages.Names()
	if len(languages) > maxProfileLanguages {
		languages = languages[:maxProfileLanguages]
	}

	return schema.TechProfile{
		Languages:        languages,
		Frameworks:       frameworks[:min(len(frameworks), maxProfileFrameworks)],
		TopRepos:         topRepos,
		PrimaryEcosystem: detectEcosystem(languages, frameworkSet),
	}
}

// detectEcosystem labels the dominant ecosystem from the profile's top
// languages and full framework set. Checks run in priority order:
// data-science, full-stack, frontend, backend, devops, then a language
// fallback, defaulting to "general".
func detectEcosystem(languages []string, frameworkSet map[string]struct{}) string {
	langSet := make(map[string]struct{}, len(languages))
	for _, l := range languages {
		langSet[l] = struct{}{}
	}

	switch {
	case intersects(frameworkSet, schema.MLFrameworks) || intersects(langSet, schema.NotebookLanguages):
		return "data-science"
	case intersects(frameworkSet, schema.WebFrameworks) && intersects(frameworkSet, schema.BackendFrameworks):
		return "full-stack"
	case intersects(frameworkSet, schema.WebFrameworks):
		return "frontend"
	case intersects(frameworkSet, schema.BackendFrameworks):
		return "backend"
	case intersects(frameworkSet, schema.DevOpsTools):
		return "devops"
	case intersects(langSet, schema.SystemsLanguages):
		return "backend"
	case intersects(langSet, schema.ScriptLanguages):
		return "frontend"
	}
	return "general"
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
