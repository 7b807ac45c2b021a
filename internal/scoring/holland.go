package scoring

import (
	"strings"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// singleChoiceWeight is the fixed contribution of a tagged single-choice option.
const singleChoiceWeight = 3

// areaToDim maps competency areas to the Holland dimension they inform.
var areaToDim = map[string]domain.HollandDim{
	"technical":      domain.DimRealistic,
	"analytical":     domain.DimInvestigative,
	"creative":       domain.DimArtistic,
	"communication":  domain.DimSocial,
	"leadership":     domain.DimEnterprising,
	"organizational": domain.DimConventional,
}

// HollandScores accumulates weighted RIASEC counters, indexed by dimension.
type HollandScores [domain.HollandDimCount]float64

// Apply folds one answer into the counters:
//   - a single-choice answer whose selected option is tagged adds a fixed weight;
//   - a ranking answer adds weight = len-pos per tagged item, first ranked highest;
//   - any answer whose question area maps to a dimension adds its numeric value
//     (neutral default when non-numeric).
func (h *HollandScores) Apply(ans domain.Answer, q domain.Question) {
	switch q.Type {
	case domain.QuestionSingleChoice:
		if v, ok := stringValue(ans.RawValue); ok {
			if dim, ok := optionHolland(q, v); ok {
				h[dim] += singleChoiceWeight
			}
		}
	case domain.QuestionRanking:
		if items, ok := stringList(ans.RawValue); ok {
			for pos, item := range items {
				if dim, ok := optionHolland(q, item); ok {
					h[dim] += float64(len(items) - pos)
				}
			}
		}
	}
	if dim, ok := areaToDim[q.CompetencyArea]; ok {
		h[dim] += numericOrNeutral(ans.RawValue)
	}
}

// Code returns the three highest-scoring letters in descending order. Ties
// break by enumeration order (R,I,A,S,E,C), so with no informative answers
// the code degenerates to "RIA".
func (h HollandScores) Code() string {
	order := make([]domain.HollandDim, domain.HollandDimCount)
	for i := range order {
		order[i] = domain.HollandDim(i)
	}
	// insertion sort keeps equal scores in enumeration order
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && h[order[j]] > h[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	var b strings.Builder
	for _, d := range order[:3] {
		b.WriteString(d.Letter())
	}
	return b.String()
}
