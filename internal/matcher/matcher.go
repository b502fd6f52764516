// Package matcher scores a candidate's skills against a posting's
// requirements. Matching is pure and deterministic so the same resume and
// posting always produce the same ranking.
package matcher

import (
	"math"
	"sort"

	"career-platform-backend/internal/skills"
)

// Weights of the match components. Direct hits dominate; related skills earn
// partial credit; the experience term is flat; industry credit is higher
// when the raw sets intersect at all.
const (
	directWeight      = 0.6
	relatedWeight     = 0.2
	experienceWeight  = 0.1
	industryAligned   = 0.1
	industryUnaligned = 0.05
)

type Result struct {
	MatchPercentage float64  `json:"match_percentage"`
	DirectMatches   []string `json:"direct_matches"`
	RelatedMatches  []string `json:"related_matches"`
	TotalRequired   int      `json:"total_required"`
	TotalMatched    int      `json:"total_matched"`
}

// Match compares candidate skills with a posting's required skills.
// With no requirements the result is a zero match, not 100.
func Match(candidateSkills, requiredSkills []string) Result {
	candidate := toSet(candidateSkills)
	required := toSet(requiredSkills)

	direct := make(map[string]struct{})
	for skill := range required {
		if _, ok := candidate[skill]; ok {
			direct[skill] = struct{}{}
			continue
		}
		if synonymHit(skill, candidate) {
			direct[skill] = struct{}{}
		}
	}

	related := make(map[string]struct{})
	for skill := range required {
		if _, ok := direct[skill]; ok {
			continue
		}
		if relatedHit(skill, candidate) {
			related[skill] = struct{}{}
		}
	}

	var pct float64
	if len(required) > 0 {
		total := float64(len(required))
		score := float64(len(direct))/total*directWeight +
			float64(len(related))/total*relatedWeight +
			experienceWeight
		if intersects(candidate, required) {
			score += industryAligned
		} else {
			score += industryUnaligned
		}
		pct = math.Min(round1(score*100), 100)
	}

	return Result{
		MatchPercentage: pct,
		DirectMatches:   sortedKeys(direct),
		RelatedMatches:  sortedKeys(related),
		TotalRequired:   len(required),
		TotalMatched:    len(direct) + len(related),
	}
}

// synonymHit reports whether the candidate covers a required skill through
// an alias group: the required skill is a group's canonical name or one of
// its aliases, and the candidate holds the canonical name or any alias.
func synonymHit(requiredSkill string, candidate map[string]struct{}) bool {
	for _, group := range skills.SynonymGroups {
		if requiredSkill != group.Canonical && !contains(group.Aliases, requiredSkill) {
			continue
		}
		if _, ok := candidate[group.Canonical]; ok {
			return true
		}
		for _, alias := range group.Aliases {
			if _, ok := candidate[alias]; ok {
				return true
			}
		}
	}
	return false
}

func relatedHit(requiredSkill string, candidate map[string]struct{}) bool {
	for _, group := range skills.RelatedGroups {
		if requiredSkill != group.Skill {
			continue
		}
		for _, rel := range group.Related {
			if _, ok := candidate[rel]; ok {
				return true
			}
		}
	}
	return false
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		if n := skills.Normalize(s); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func intersects(a, b map[string]struct{}) bool {
	for s := range a {
		if _, ok := b[s]; ok {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
