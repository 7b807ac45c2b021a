package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// Thresholds for the template-driven narrative.
const (
	strongCompetency = 8 // above this, the dominant letter gets its expert label
	strengthLevel    = 7 // competencies at or above this are listed as strengths
	lowCompetency    = 4 // below this, a competency is a development candidate
	relevantLevel    = 6 // requirement level that makes a gap worth flagging
)

// competencyLabels are the user-facing names of the fixed competencies.
var competencyLabels = map[domain.CompetencyKey]string{
	domain.CompTechnical:        "umiejętności techniczne",
	domain.CompAnalytical:       "myślenie analityczne",
	domain.CompCreativity:       "kreatywność",
	domain.CompCommunication:    "komunikacja",
	domain.CompTeamwork:         "praca zespołowa",
	domain.CompLeadership:       "przywództwo",
	domain.CompOrganization:     "organizacja pracy",
	domain.CompAdaptability:     "elastyczność",
	domain.CompProblemSolving:   "rozwiązywanie problemów",
	domain.CompDigital:          "kompetencje cyfrowe",
	domain.CompIndependence:     "samodzielność",
	domain.CompStressResistance: "odporność na stres",
}

type labelRule struct {
	key    domain.CompetencyKey
	expert string
	base   string
}

var labelRules = map[domain.HollandDim]labelRule{
	domain.DimRealistic:     {domain.CompTechnical, "Mistrz Rzemiosła", "Praktyk"},
	domain.DimInvestigative: {domain.CompAnalytical, "Analityk Strategiczny", "Badacz"},
	domain.DimArtistic:      {domain.CompCreativity, "Wizjoner", "Twórca"},
	domain.DimSocial:        {domain.CompCommunication, "Mentor", "Opiekun"},
	domain.DimEnterprising:  {domain.CompLeadership, "Lider Zmian", "Organizator"},
	domain.DimConventional:  {domain.CompOrganization, "Strażnik Porządku", "Administrator"},
}

// PersonalityLabel picks the fixed label for the dominant Holland letter,
// upgraded when the letter's signature competency is strong.
func PersonalityLabel(code string, comps CompetencyScores) string {
	if code == "" {
		return "Odkrywca"
	}
	dim, ok := domain.ParseHollandLetter(code[:1])
	if !ok {
		return "Odkrywca"
	}
	rule := labelRules[dim]
	if comps[rule.key] > strongCompetency {
		return rule.expert
	}
	return rule.base
}

// Summary assembles the profile prose: personality type plus the qualifying
// strength phrases joined into one paragraph.
func Summary(code string, comps CompetencyScores, vals WorkValues) string {
	label := PersonalityLabel(code, comps)
	var strengths []string
	for _, key := range domain.CompetencyKeys {
		if comps[key] >= strengthLevel {
			strengths = append(strengths, competencyLabels[key])
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Twój profil zawodowy to %s (kod Hollanda: %s).", label, code)
	if len(strengths) > 0 {
		fmt.Fprintf(&b, " Twoje mocne strony to: %s.", strings.Join(strengths, ", "))
	}
	if vals[domain.ValAutonomy] >= strengthLevel {
		b.WriteString(" Najlepiej pracujesz, gdy masz dużą samodzielność.")
	} else if vals[domain.ValStability] >= strengthLevel {
		b.WriteString(" Cenisz stabilne i przewidywalne środowisko pracy.")
	}
	return b.String()
}

// DevelopmentAreas flags competencies below the low threshold that any of the
// top recommended careers actually requires, in canonical key order.
func DevelopmentAreas(comps CompetencyScores, top []CareerMatch) []string {
	limit := len(top)
	if limit > 3 {
		limit = 3
	}
	var areas []string
	for _, key := range domain.CompetencyKeys {
		if comps[key] >= lowCompetency {
			continue
		}
		for _, m := range top[:limit] {
			if m.Career.Requirements[key] >= relevantLevel {
				areas = append(areas, competencyLabels[key])
				break
			}
		}
	}
	return areas
}

// Confidence reports how much of the test informed the analysis, as a percent.
func Confidence(answered, total int) int {
	if total <= 0 {
		return 0
	}
	pct := float64(answered) / float64(total) * 100
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct))
}
