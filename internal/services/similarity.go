package services

import (
	"errors"
	"math"
	"strings"
)

// ErrDimensionMismatch indicates a contract violation: vectors compared for
// similarity must come from the same embedding model.
var ErrDimensionMismatch = errors.New("embedding vectors have different dimensions")

// CosineSimilarity returns dot(u,v)/(||u||*||v||) in [-1,1]. A zero-norm
// vector yields 0.0 rather than a division error.
func CosineSimilarity(u, v []float32) (float64, error) {
	if len(u) != len(v) {
		return 0, ErrDimensionMismatch
	}

	var dot, normU, normV float64
	for i := range u {
		a := float64(u[i])
		b := float64(v[i])
		dot += a * b
		normU += a * a
		normV += b * b
	}

	if normU == 0 || normV == 0 {
		return 0.0, nil
	}

	return dot / (math.Sqrt(normU) * math.Sqrt(normV)), nil
}

// ExperienceMatchBonus scores how well the candidate's years of experience
// fit the posting's bounds. Full bonus inside the range, nothing below the
// minimum, and a monotonically decaying partial bonus for over-qualified
// candidates that stays strictly inside (0, 5).
func ExperienceMatchBonus(candidateYears int, min, max *int) float64 {
	if min == nil && max == nil {
		return 0.0
	}

	if max == nil {
		if candidateYears >= *min {
			return 5.0
		}
		return 0.0
	}

	lower := 0
	if min != nil {
		lower = *min
	}

	switch {
	case candidateYears < lower:
		return 0.0
	case candidateYears <= *max:
		return 5.0
	default:
		return 5.0 * float64(*max+1) / float64(candidateYears+1)
	}
}

// SkillsMatchBonus rewards overlap between the candidate's skills and the
// posting's required and preferred skills. Matching is case-insensitive.
// Up to 10 points for required coverage plus up to 5 for preferred; the sum
// is not clamped here.
func SkillsMatchBonus(candidateSkills, requiredSkills, preferredSkills []string) float64 {
	candidate := normalizeSkillSet(candidateSkills)

	bonus := 0.0
	if len(requiredSkills) > 0 {
		bonus += 10.0 * overlapRatio(candidate, requiredSkills)
	}
	if len(preferredSkills) > 0 {
		bonus += 5.0 * overlapRatio(candidate, preferredSkills)
	}

	return bonus
}

// FinalMatchScore maps the cosine similarity from [-1,1] onto a [0,100]
// base, adds the rule-based bonuses, and clamps the result into [0,100].
func FinalMatchScore(similarity, experienceBonus, skillsBonus float64) float64 {
	base := ((similarity + 1) / 2) * 100
	return clamp(base+experienceBonus+skillsBonus, 0, 100)
}

func normalizeSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

func overlapRatio(candidate map[string]struct{}, wanted []string) float64 {
	wantedSet := normalizeSkillSet(wanted)
	if len(wantedSet) == 0 {
		return 0.0
	}

	matched := 0
	for skill := range wantedSet {
		if _, ok := candidate[skill]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(wantedSet))
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
