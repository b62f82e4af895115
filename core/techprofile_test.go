package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/devlens/devlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildTechProfile checks framework extraction, repo ranking and caps.
func TestBuildTechProfile(t *testing.T) {
	profile := &schema.Profile{
		Repos: []schema.Repo{
			{Name: "api", Language: "Go", Stars: 120, Description: "REST API", Topics: []string{"gin", "postgres"}},
			{Name: "web", Language: "TypeScript", Stars: 300, Description: "Frontend", Topics: []string{"React", "tailwindcss"}},
			{Name: "infra", Language: "HCL", Stars: 10, Topics: []string{"terraform-modules"}},
		},
		Languages: schema.LanguageList{
			{Name: "Go", Percentage: 50},
			{Name: "TypeScript", Percentage: 50},
		},
	}

	tp := buildTechProfile(profile)

	assert.Equal(t, []string{"Go", "TypeScript"}, tp.Languages)
	// Topics lower-cased, matched against the framework vocabulary, sorted.
	assert.Equal(t, []string{"gin", "postgres", "react", "tailwindcss"}, tp.Frameworks)

	require.Len(t, tp.TopRepos, 3)
	assert.Equal(t, "web", tp.TopRepos[0].Name)
	assert.Equal(t, "api", tp.TopRepos[1].Name)
	assert.Equal(t, "infra", tp.TopRepos[2].Name)
}

// TestBuildTechProfileCaps checks the language, framework and repo limits.
func TestBuildTechProfileCaps(t *testing.T) {
	var langs schema.LanguageList
	for i := range 14 {
		langs = append(langs, schema.Language{Name: fmt.Sprintf("Lang%02d", i), Percentage: 100.0 / 14})
	}
	var repos []schema.Repo
	for i := range 8 {
		repos = append(repos, schema.Repo{Name: fmt.Sprintf("repo%d", i), Stars: i})
	}

	tp := buildTechProfile(&schema.Profile{Repos: repos, Languages: langs})

	assert.Len(t, tp.Languages, maxProfileLanguages)
	assert.Len(t, tp.TopRepos, maxTopRepos)
	assert.Equal(t, "repo7", tp.TopRepos[0].Name)
}

// TestBuildTechProfileDescriptionTruncation ensures long descriptions are
// cut rune-safely.
func TestBuildTechProfileDescriptionTruncation(t *testing.T) {
	long := strings.Repeat("é", 150)
	tp := buildTechProfile(&schema.Profile{
		Repos: []schema.Repo{{Name: "r", Description: long, Stars: 1}},
	})

	require.Len(t, tp.TopRepos, 1)
	desc := tp.TopRepos[0].Description
	assert.Equal(t, maxRepoDescription, len([]rune(desc)))
	assert.True(t, strings.HasPrefix(long, desc))
}

// TestDetectEcosystem covers the priority ladder.
func TestDetectEcosystem(t *testing.T) {
	tests := []struct {
		name       string
		languages  []string
		frameworks []string
		want       string
	}{
		{"ml frameworks win", []string{"Go"}, []string{"pytorch", "react"}, "data-science"},
		{"notebook language wins", []string{"Jupyter Notebook"}, nil, "data-science"},
		{"web plus backend is full-stack", []string{"Ruby"}, []string{"react", "rails"}, "full-stack"},
		{"web only is frontend", []string{"Ruby"}, []string{"nextjs"}, "frontend"},
		{"backend framework", []string{"Ruby"}, []string{"django"}, "backend"},
		{"devops tools", []string{"Ruby"}, []string{"kubernetes"}, "devops"},
		{"systems language fallback", []string{"Rust"}, nil, "backend"},
		{"script language fallback", []string{"JavaScript"}, nil, "frontend"},
		{"nothing recognizable", []string{"COBOL"}, nil, "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwSet := make(map[string]struct{})
			for _, fw := range tt.frameworks {
				fwSet[fw] = struct{}{}
			}
			assert.Equal(t, tt.want, detectEcosystem(tt.languages, fwSet))
		})
	}
}

// TestTruncate covers boundary behavior.
func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("", 3))
}
