package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

func TestPersonalityLabel_DominantLetterWithThreshold(t *testing.T) {
	comps := NewCompetencyScores()
	comps[domain.CompTechnical] = 9
	assert.Equal(t, "Mistrz Rzemiosła", PersonalityLabel("RIC", comps))

	comps[domain.CompTechnical] = 6
	assert.Equal(t, "Praktyk", PersonalityLabel("RIC", comps))

	comps = NewCompetencyScores()
	comps[domain.CompLeadership] = 9
	assert.Equal(t, "Lider Zmian", PersonalityLabel("ESC", comps))
	assert.Equal(t, "Odkrywca", PersonalityLabel("", comps))
}

func TestSummary_ListsStrengths(t *testing.T) {
	comps := NewCompetencyScores()
	comps[domain.CompCommunication] = 8
	comps[domain.CompTeamwork] = 7
	vals := NewWorkValues()
	vals[domain.ValAutonomy] = 8

	s := Summary("SEC", comps, vals)
	assert.Contains(t, s, "kod Hollanda: SEC")
	assert.Contains(t, s, "komunikacja")
	assert.Contains(t, s, "praca zespołowa")
	assert.Contains(t, s, "samodzielność")
}

func TestSummary_NoStrengthsStillProducesParagraph(t *testing.T) {
	comps := NewCompetencyScores()
	s := Summary("RIA", comps, NewWorkValues())
	assert.NotEmpty(t, s)
	assert.NotContains(t, s, "mocne strony")
}

func TestDevelopmentAreas_OnlyRelevantGapsFlagged(t *testing.T) {
	comps := NewCompetencyScores()
	comps[domain.CompDigital] = 2       // gap, required by top career
	comps[domain.CompCreativity] = 2    // gap, not required by top careers
	comps[domain.CompCommunication] = 8 // no gap

	top := []CareerMatch{
		{Career: domain.Career{Requirements: map[domain.CompetencyKey]float64{domain.CompDigital: 9}}},
		{Career: domain.Career{Requirements: map[domain.CompetencyKey]float64{domain.CompCommunication: 8}}},
	}
	areas := DevelopmentAreas(comps, top)
	require.Len(t, areas, 1)
	assert.Equal(t, "kompetencje cyfrowe", areas[0])
}

func TestDevelopmentAreas_OnlyTopThreeConsulted(t *testing.T) {
	comps := NewCompetencyScores()
	comps[domain.CompLeadership] = 1
	fourth := CareerMatch{Career: domain.Career{Requirements: map[domain.CompetencyKey]float64{domain.CompLeadership: 9}}}
	top := []CareerMatch{{}, {}, {}, fourth}
	assert.Empty(t, DevelopmentAreas(comps, top))
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 0, Confidence(5, 0))
	assert.Equal(t, 100, Confidence(20, 20))
	assert.Equal(t, 50, Confidence(10, 20))
	assert.Equal(t, 100, Confidence(25, 20))
}
