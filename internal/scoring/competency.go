package scoring

import "github.com/Chudy3122/doradca-ai/internal/domain"

// workStyleArea is the one area that assigns its value directly instead of
// max-merging: the answer states how the user works, not how strongly.
const workStyleArea = "work_style"

// areaToCompetency maps question competency areas to profile competencies.
var areaToCompetency = map[string]domain.CompetencyKey{
	"technical":       domain.CompTechnical,
	"analytical":      domain.CompAnalytical,
	"creative":        domain.CompCreativity,
	"communication":   domain.CompCommunication,
	"teamwork":        domain.CompTeamwork,
	"leadership":      domain.CompLeadership,
	"organizational":  domain.CompOrganization,
	"adaptability":    domain.CompAdaptability,
	"problem_solving": domain.CompProblemSolving,
	"digital":         domain.CompDigital,
	"stress":          domain.CompStressResistance,
	workStyleArea:     domain.CompIndependence,
}

// CompetencyScores tracks the fixed competency set on a 1-10 scale.
type CompetencyScores map[domain.CompetencyKey]float64

// NewCompetencyScores seeds every competency at the neutral midpoint.
func NewCompetencyScores() CompetencyScores {
	s := make(CompetencyScores, len(domain.CompetencyKeys))
	for _, k := range domain.CompetencyKeys {
		s[k] = neutralValue
	}
	return s
}

// Apply folds one answer in. A single strong signal wins over earlier neutral
// defaults, so updates take the max of current and observed, except the work
// style area, which assigns directly.
func (s CompetencyScores) Apply(ans domain.Answer, q domain.Question) {
	key, ok := areaToCompetency[q.CompetencyArea]
	if !ok {
		return
	}
	v := numericOrNeutral(ans.RawValue)
	if q.CompetencyArea == workStyleArea {
		s[key] = v
		return
	}
	if v > s[key] {
		s[key] = v
	}
}
