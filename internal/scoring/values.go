package scoring

import "github.com/Chudy3122/doradca-ai/internal/domain"

// WorkValues tracks the fixed work-value set on a 1-10 scale.
type WorkValues map[domain.ValueKey]float64

// NewWorkValues seeds every value at the neutral midpoint.
func NewWorkValues() WorkValues {
	s := make(WorkValues, len(domain.ValueKeys))
	for _, k := range domain.ValueKeys {
		s[k] = neutralValue
	}
	return s
}

// motivatorKeys maps ranking-item values to work-value keys.
var motivatorKeys = map[string]domain.ValueKey{
	"stability":         domain.ValStability,
	"challenge":         domain.ValChallenge,
	"autonomy":          domain.ValAutonomy,
	"salary":            domain.ValSalary,
	"development":       domain.ValDevelopment,
	"helping_others":    domain.ValHelping,
	"work_life_balance": domain.ValBalance,
	"prestige":          domain.ValPrestige,
}

// Apply folds one answer in, keyed by the question's subcategory. Slider
// subcategories overwrite their target; the stability/challenge slider is an
// inverse pair setting both ends from one answer. Ranking answers assign
// weight 10-pos per motivator, overwriting rather than accumulating.
func (s WorkValues) Apply(ans domain.Answer, q domain.Question) {
	if q.Type == domain.QuestionRanking && q.Subcategory == "motivators" {
		if items, ok := stringList(ans.RawValue); ok {
			for pos, item := range items {
				if key, ok := motivatorKeys[item]; ok {
					s[key] = float64(10 - pos)
				}
			}
		}
		return
	}
	v := numericOrNeutral(ans.RawValue)
	switch q.Subcategory {
	case "stability_challenge":
		s[domain.ValChallenge] = v
		s[domain.ValStability] = 10 - v
	case "salary_importance":
		s[domain.ValSalary] = v
	case "autonomy":
		s[domain.ValAutonomy] = v
	case "development":
		s[domain.ValDevelopment] = v
	case "helping_others":
		s[domain.ValHelping] = v
	case "work_life_balance":
		s[domain.ValBalance] = v
	case "prestige":
		s[domain.ValPrestige] = v
	}
}
