package scoring

import (
	"math"
	"sort"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// Composite weights of the four per-career match components.
const (
	weightHolland     = 0.4
	weightCompetency  = 0.3
	weightValues      = 0.2
	weightEnvironment = 0.1
)

const (
	// neutralMatch is returned when either side of a comparison is empty.
	neutralMatch = 50
	// baseMatch is the starting point for the bonus-driven components.
	baseMatch = 70
	// topSuggestions bounds the ranked list returned to callers.
	topSuggestions = 8
	// highSalaryMid marks careers whose pay should reward a salary-driven user.
	highSalaryMid = 12000
)

// hollandPositionWeights weight the user's three code letters: the dominant
// letter counts most.
var hollandPositionWeights = [3]float64{3, 2, 1}

// CareerMatch is one scored catalog entry.
type CareerMatch struct {
	Career      domain.Career
	Holland     float64
	Competency  float64
	Values      float64
	Environment float64
	Score       float64
}

// Percent returns the fused match percentage exposed to clients.
func (m CareerMatch) Percent() int {
	return int(math.Round(m.Score))
}

// HollandMatch compares a 3-letter user code against a career's tag set,
// position by position. The result is the weighted overlap achieved as a
// percentage of the overlap possible. An empty code or tag set yields the
// neutral 50.
func HollandMatch(code string, tags []string) float64 {
	if code == "" || len(tags) == 0 {
		return neutralMatch
	}
	tagSet := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tagSet[t] = struct{}{}
	}
	var achieved, possible float64
	for i, r := range code {
		if i >= len(hollandPositionWeights) {
			break
		}
		possible += hollandPositionWeights[i]
		if _, ok := tagSet[string(r)]; ok {
			achieved += hollandPositionWeights[i]
		}
	}
	if possible == 0 {
		return neutralMatch
	}
	return achieved / possible * 100
}

// CompetencyMatch scores how closely the user's levels meet a career's
// requirements: 100 minus 10 per point of distance, floored at zero, averaged
// over the required competencies. Careers without requirements score 70.
func CompetencyMatch(have CompetencyScores, req map[domain.CompetencyKey]float64) float64 {
	if len(req) == 0 {
		return baseMatch
	}
	var sum float64
	for key, required := range req {
		level, ok := have[key]
		if !ok {
			level = neutralValue
		}
		score := 100 - math.Abs(level-required)*10
		if score < 0 {
			score = 0
		}
		sum += score
	}
	return sum / float64(len(req))
}

// ValueMatch starts from the base 70 and adds fixed bonuses when the career's
// explicit tags line up with strong user preferences, capped at 100.
func ValueMatch(vals WorkValues, c domain.Career) float64 {
	score := float64(baseMatch)
	if c.SalaryMid() >= highSalaryMid && vals[domain.ValSalary] > 7 {
		score += 10
	}
	if c.Stable && vals[domain.ValStability] > 7 {
		score += 10
	}
	if c.Autonomous && vals[domain.ValAutonomy] > 7 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

// EnvironmentMatch starts from the base 70, adds 15 per career environment tag
// the user scores above 7, and shifts 10 either way for travel-requiring roles
// depending on travel willingness. The result is clamped to [30,100].
func EnvironmentMatch(env EnvironmentScores, c domain.Career) float64 {
	score := float64(baseMatch)
	for _, tag := range c.EnvTags {
		if env[tag] > 7 {
			score += 15
		}
	}
	if c.Travel {
		switch {
		case env[domain.EnvTravel] > 7:
			score += 10
		case env[domain.EnvTravel] < 4:
			score -= 10
		}
	}
	if score > 100 {
		score = 100
	}
	if score < 30 {
		score = 30
	}
	return score
}

// RankCareers scores every catalog entry and returns the top matches in
// descending order. The sort is stable, so equal scores keep catalog order;
// repeated runs over identical inputs produce identical rankings.
func RankCareers(catalog []domain.Career, code string, comps CompetencyScores, vals WorkValues, env EnvironmentScores) []CareerMatch {
	matches := make([]CareerMatch, 0, len(catalog))
	for _, c := range catalog {
		m := CareerMatch{
			Career:      c,
			Holland:     HollandMatch(code, c.Holland),
			Competency:  CompetencyMatch(comps, c.Requirements),
			Values:      ValueMatch(vals, c),
			Environment: EnvironmentMatch(env, c),
		}
		m.Score = weightHolland*m.Holland + weightCompetency*m.Competency +
			weightValues*m.Values + weightEnvironment*m.Environment
		matches = append(matches, m)
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > topSuggestions {
		matches = matches[:topSuggestions]
	}
	return matches
}
