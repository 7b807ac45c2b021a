package scoring

import "github.com/Chudy3122/doradca-ai/internal/domain"

// EnvironmentScores tracks preferred-environment attributes on a 1-10 scale.
type EnvironmentScores map[domain.EnvironmentKey]float64

// NewEnvironmentScores seeds every attribute at the neutral midpoint.
func NewEnvironmentScores() EnvironmentScores {
	s := make(EnvironmentScores, len(domain.EnvironmentKeys))
	for _, k := range domain.EnvironmentKeys {
		s[k] = neutralValue
	}
	return s
}

// environmentKeys maps ranking-item values to environment keys.
var environmentKeys = map[string]domain.EnvironmentKey{
	"construction_site": domain.EnvConstructionSite,
	"office":            domain.EnvOffice,
	"workshop":          domain.EnvWorkshop,
	"outdoor":           domain.EnvOutdoor,
	"remote":            domain.EnvRemote,
	"travel":            domain.EnvTravel,
}

// Apply folds one answer in, keyed by subcategory. The office/outdoor slider
// is an inverse pair; rankings assign 10-pos per item, overwriting.
func (s EnvironmentScores) Apply(ans domain.Answer, q domain.Question) {
	if q.Type == domain.QuestionRanking && q.Subcategory == "environments" {
		if items, ok := stringList(ans.RawValue); ok {
			for pos, item := range items {
				if key, ok := environmentKeys[item]; ok {
					s[key] = float64(10 - pos)
				}
			}
		}
		return
	}
	v := numericOrNeutral(ans.RawValue)
	switch q.Subcategory {
	case "office_field":
		s[domain.EnvOffice] = v
		s[domain.EnvOutdoor] = 10 - v
	case "construction":
		s[domain.EnvConstructionSite] = v
	case "workshop":
		s[domain.EnvWorkshop] = v
	case "remote_preference":
		s[domain.EnvRemote] = v
	case "travel_willingness":
		s[domain.EnvTravel] = v
	}
}
