package core

import (
	"math"

	"github.com/devlens/devlens/schema"
)

// clampScore truncates a float score to an int capped at 100.
func clampScore(score float64) int {
	return min(int(score), 100)
}

// scoreActivity scores developer activity (0-100): repo count, recent
// commits, repo freshness with time decay, stars received, and an
// event-type diversity bonus.
func (e *Engine) scoreActivity(profile *schema.Profile) int {
	score := 0.0
	repos := profile.Repos
	stats := profile.ContributionStats

	// Repo count - log scale (max 25 points)
	score += logScale(float64(len(repos)), 50, 25)

	// Recent commits - log scale (max 25 points)
	score += logScale(float64(stats.RecentCommits), 100, 25)

	// Repo freshness with time decay (max 25 points)
	if len(repos) > 0 {
		now := e.now()
		freshness := 0.0
		for _, r := range repos {
			freshness += timeDecayWeight(now, r.UpdatedAt, defaultHalfLifeDays)
		}
		score += min(freshness/5.0, 1.0) * 25
	}

	// Stars received - log scale (max 15 points)
	totalStars := 0
	for _, r := range repos {
		totalStars += r.Stars
	}
	score += logScale(float64(totalStars), 200, 15)

	// Consistency bonus: event type diversity (max 10 points)
	eventTypes := 0
	if stats.RecentCommits > 0 {
		eventTypes++
	}
	if stats.RecentPRs > 0 {
		eventTypes++
	}
	if stats.RecentIssues > 0 {
		eventTypes++
	}
	if stats.RecentReviews > 0 {
		eventTypes++
	}
	score += float64(eventTypes) / 4 * 10

	return clampScore(score)
}

// scoreCollaboration scores collaboration level (0-100): PRs, issues,
// reviews, followers, follower ratio, forks received and org membership.
func (e *Engine) scoreCollaboration(profile *schema.Profile) int {
	score := 0.0
	stats := profile.ContributionStats
	repos := profile.Repos

	// Recent PRs - log scale (max 20 points)
	score += logScale(float64(stats.RecentPRs), 15, 20)

	// Recent issues - log scale (max 12 points)
	score += logScale(float64(stats.RecentIssues), 10, 12)

	// Reviews given (max 20 points)
	score += logScale(float64(stats.RecentReviews), 8, 20)

	// Follower score with log scaling (max 18 points)
	score += logScale(float64(profile.Followers), 100, 18)

	// Follower/following ratio bonus (max 10 points)
	following := max(profile.Following, 1)
	ratio := float64(profile.Followers) / float64(following)
	score += min(ratio*3, 10)

	// Forks received (max 15 points)
	totalForks := 0
	for _, r := range repos {
		totalForks += r.Forks
	}
	score += logScale(float64(totalForks), 50, 15)

	// Org membership bonus (max 5 points)
	score += min(float64(len(profile.Organizations))*2.5, 5)

	return clampScore(score)
}

// scoreStackDiversity scores stack/language diversity (0-100): language
// count, Shannon-entropy evenness of the language distribution, framework
// detection from topics, and non-framework topic variety.
func (e *Engine) scoreStackDiversity(profile *schema.Profile) int {
	score := 0.0
	languages := profile.Languages

	// Number of languages - log scale (max 30 points)
	langCount := len(languages)
	score += logScale(float64(langCount), 10, 30)

	// Language distribution evenness via Shannon entropy (max 25 points)
	if langCount > 0 {
		entropy := 0.0
		for _, lang := range languages {
			frac := lang.Percentage / 100
			if frac > 0 {
				entropy -= frac * math.Log2(frac)
			}
		}
		maxEntropy := math.Log2(float64(max(langCount, 2)))
		score += entropy / maxEntropy * 25
	}

	// Framework detection from topics (max 25 points)
	allTopics := topicSet(profile.Repos)
	frameworkCount := intersectCount(allTopics, schema.KnownFrameworks)
	score += logScale(float64(frameworkCount), 8, 25)

	// Topic variety beyond frameworks (max 20 points)
	nonFramework := len(allTopics) - frameworkCount
	score += logScale(float64(nonFramework), 15, 20)

	return clampScore(score)
}

// scoreAISavviness scores AI tooling adoption (0-100) from repo metadata
// and, when available, commit-level signals.
func (e *Engine) scoreAISavviness(profile *schema.Profile, analysis *schema.CommitAnalysisResult) int {
	score := 0.0
	repos := profile.Repos

	// AI-related topics (max 18 points)
	allTopics := topicSet(repos)
	aiTopicCount := intersectCount(allTopics, schema.AITopics)
	score += logScale(float64(aiTopicCount), 6, 18)

	// AI framework languages (max 12 points)
	aiLangCount := intersectCount(profile.Languages.NameSet(), schema.AILanguages)
	score += min(float64(aiLangCount)/2*12, 12)

	// AI repo names/descriptions (max 12 points)
	aiRepos := 0
	for _, r := range repos {
		if schema.AINamePattern.MatchString(r.Name) || schema.AINamePattern.MatchString(r.Description) {
			aiRepos++
		}
	}
	score += logScale(float64(aiRepos), 5, 12)

	// AI config file detection bonus (max 8 points)
	score += min(float64(countAIConfigMentions(repos))*4, 8)

	// Commit analysis signals (max 35 points)
	if analysis != nil && analysis.TotalCommitsAnalyzed > 0 {
		total := float64(analysis.TotalCommitsAnalyzed)

		// Direct AI tool mentions (max 18 points)
		mentionRatio := float64(analysis.AIToolMentions.Total()) / total
		score += min(mentionRatio*90, 18)

		// Co-author bot tags (max 10 points)
		botRatio := float64(analysis.CoAuthorBots.Total()) / total
		score += min(botRatio*50, 10)

		// Heuristic score contribution (max 5 points)
		score += min(analysis.AIHeuristicScore/20, 5)

		// Commit burst patterns (max 2 points)
		if analysis.BurstScore > 0 {
			score += min(analysis.BurstScore*2, 2)
		}
	}

	// Bonus for high AI repo ratio (max 15 points)
	if len(repos) > 0 {
		score += float64(aiRepos) / float64(len(repos)) * 15
	}

	return clampScore(score)
}

// countAIConfigMentions counts repos whose combined name/description/topic
// text mentions an AI assistant config file.
func countAIConfigMentions(repos []schema.Repo) int {
	indicators := 0
	for _, r := range repos {
		combined := r.Name + " " + r.Description
		for _, t := range r.Topics {
			combined += " " + t
		}
		if schema.AIConfigPattern.MatchString(combined) {
			indicators++
		}
	}
	return indicators
}
