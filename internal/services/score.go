package services

import (
	"math"
	"regexp"
	"strings"
)

var (
	wordPattern    = regexp.MustCompile(`\w+`)
	keywordPattern = regexp.MustCompile(`[a-z]{4,}`)
)

// actionVerbs is the vocabulary of impact verbs rewarded by the heuristic.
// Distinct hits count; repeating a verb adds nothing.
var actionVerbs = []string{
	"managed", "led", "developed", "created", "implemented",
	"achieved", "increased", "reduced", "negotiated", "launched",
}

const (
	maxJobKeywords = 25
	maxVerbHits    = 10
)

// CalculateATSScore rates a resume from 0 to 100 the way a simple applicant
// tracking system would: length band, section presence, action-verb usage and
// keyword overlap with the job description. The function is pure; identical
// inputs always produce the same score.
func CalculateATSScore(resume, jobDescription string) int {
	lowerResume := strings.ToLower(resume)
	score := 20.0

	wordCount := len(wordPattern.FindAllString(resume, -1))
	switch {
	case wordCount < 250:
		score += 5
	case wordCount <= 700:
		score += 20
	default:
		score += 10
	}

	if strings.Contains(lowerResume, "experience") {
		score += 10
	}
	if strings.Contains(lowerResume, "education") {
		score += 5
	}
	// "skill" also matches "skills"; a single hit either way.
	if strings.Contains(lowerResume, "skill") {
		score += 10
	}

	verbHits := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lowerResume, verb) {
			verbHits++
		}
	}
	if verbHits > maxVerbHits {
		verbHits = maxVerbHits
	}
	score += float64(verbHits) * 1.5

	if strings.TrimSpace(jobDescription) == "" {
		// No target role to compare against; flat bonus instead.
		score += 10
	} else if keywords := extractJobKeywords(jobDescription); len(keywords) > 0 {
		hits := 0
		for _, keyword := range keywords {
			if strings.Contains(lowerResume, keyword) {
				hits++
			}
		}
		score += math.Round(float64(hits) / float64(len(keywords)) * 20)
	}

	final := int(math.Round(score))
	if final > 100 {
		final = 100
	}
	return final
}

// extractJobKeywords lowercases the job description and returns up to 25
// distinct tokens of at least four letters, in first-seen order.
func extractJobKeywords(jobDescription string) []string {
	tokens := keywordPattern.FindAllString(strings.ToLower(jobDescription), -1)

	seen := make(map[string]bool, len(tokens))
	keywords := make([]string, 0, maxJobKeywords)
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
		if len(keywords) == maxJobKeywords {
			break
		}
	}
	return keywords
}
