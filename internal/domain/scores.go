package domain

// HollandDim enumerates the six RIASEC dimensions. All scorers index fixed
// arrays by this type; tie-breaks follow this enumeration order.
type HollandDim int

const (
	DimRealistic HollandDim = iota
	DimInvestigative
	DimArtistic
	DimSocial
	DimEnterprising
	DimConventional
	HollandDimCount
)

var hollandLetters = [HollandDimCount]string{"R", "I", "A", "S", "E", "C"}

// Letter returns the single-character RIASEC code for the dimension.
func (d HollandDim) Letter() string {
	if d < 0 || d >= HollandDimCount {
		return "?"
	}
	return hollandLetters[d]
}

// ParseHollandLetter maps a RIASEC letter to its dimension.
func ParseHollandLetter(s string) (HollandDim, bool) {
	for d, l := range hollandLetters {
		if l == s {
			return HollandDim(d), true
		}
	}
	return 0, false
}

// CompetencyKey names one of the fixed competencies tracked on a profile.
type CompetencyKey string

const (
	CompTechnical        CompetencyKey = "technical"
	CompAnalytical       CompetencyKey = "analytical"
	CompCreativity       CompetencyKey = "creativity"
	CompCommunication    CompetencyKey = "communication"
	CompTeamwork         CompetencyKey = "teamwork"
	CompLeadership       CompetencyKey = "leadership"
	CompOrganization     CompetencyKey = "organization"
	CompAdaptability     CompetencyKey = "adaptability"
	CompProblemSolving   CompetencyKey = "problem_solving"
	CompDigital          CompetencyKey = "digital"
	CompIndependence     CompetencyKey = "independence"
	CompStressResistance CompetencyKey = "stress_resistance"
)

// CompetencyKeys is the closed, ordered competency key set.
var CompetencyKeys = []CompetencyKey{
	CompTechnical, CompAnalytical, CompCreativity, CompCommunication,
	CompTeamwork, CompLeadership, CompOrganization, CompAdaptability,
	CompProblemSolving, CompDigital, CompIndependence, CompStressResistance,
}

// ValueKey names one of the fixed work values.
type ValueKey string

const (
	ValStability   ValueKey = "stability"
	ValChallenge   ValueKey = "challenge"
	ValAutonomy    ValueKey = "autonomy"
	ValSalary      ValueKey = "salary"
	ValDevelopment ValueKey = "development"
	ValHelping     ValueKey = "helping_others"
	ValBalance     ValueKey = "work_life_balance"
	ValPrestige    ValueKey = "prestige"
)

// ValueKeys is the closed, ordered work-value key set.
var ValueKeys = []ValueKey{
	ValStability, ValChallenge, ValAutonomy, ValSalary,
	ValDevelopment, ValHelping, ValBalance, ValPrestige,
}

// EnvironmentKey names one of the fixed preferred-environment attributes.
type EnvironmentKey string

const (
	EnvConstructionSite EnvironmentKey = "construction_site"
	EnvOffice           EnvironmentKey = "office"
	EnvWorkshop         EnvironmentKey = "workshop"
	EnvOutdoor          EnvironmentKey = "outdoor"
	EnvRemote           EnvironmentKey = "remote"
	EnvTravel           EnvironmentKey = "travel"
)

// EnvironmentKeys is the closed, ordered environment key set.
var EnvironmentKeys = []EnvironmentKey{
	EnvConstructionSite, EnvOffice, EnvWorkshop, EnvOutdoor, EnvRemote, EnvTravel,
}
