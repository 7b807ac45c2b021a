package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

func TestWorkValues_InversePairFromOneSlider(t *testing.T) {
	s := NewWorkValues()
	q := domain.Question{Type: domain.QuestionSlider, Subcategory: "stability_challenge"}
	s.Apply(domain.Answer{RawValue: raw(t, 8)}, q)
	assert.Equal(t, 8.0, s[domain.ValChallenge])
	assert.Equal(t, 2.0, s[domain.ValStability])
}

func TestWorkValues_RankingOverwritesByPosition(t *testing.T) {
	s := NewWorkValues()
	q := domain.Question{Type: domain.QuestionRanking, Subcategory: "motivators"}
	s.Apply(domain.Answer{RawValue: raw(t, []string{"salary", "autonomy", "development"})}, q)
	assert.Equal(t, 10.0, s[domain.ValSalary])
	assert.Equal(t, 9.0, s[domain.ValAutonomy])
	assert.Equal(t, 8.0, s[domain.ValDevelopment])

	// a second ranking overwrites rather than accumulating
	s.Apply(domain.Answer{RawValue: raw(t, []string{"autonomy"})}, q)
	assert.Equal(t, 10.0, s[domain.ValAutonomy])
}

func TestWorkValues_DirectSubcategories(t *testing.T) {
	cases := []struct {
		sub string
		key domain.ValueKey
	}{
		{"salary_importance", domain.ValSalary},
		{"autonomy", domain.ValAutonomy},
		{"development", domain.ValDevelopment},
		{"helping_others", domain.ValHelping},
		{"work_life_balance", domain.ValBalance},
		{"prestige", domain.ValPrestige},
	}
	for _, c := range cases {
		t.Run(c.sub, func(t *testing.T) {
			s := NewWorkValues()
			q := domain.Question{Type: domain.QuestionSlider, Subcategory: c.sub}
			s.Apply(domain.Answer{RawValue: raw(t, 9)}, q)
			assert.Equal(t, 9.0, s[c.key])
		})
	}
}

func TestEnvironment_OfficeFieldInversePair(t *testing.T) {
	s := NewEnvironmentScores()
	q := domain.Question{Type: domain.QuestionSlider, Subcategory: "office_field"}
	s.Apply(domain.Answer{RawValue: raw(t, 3)}, q)
	assert.Equal(t, 3.0, s[domain.EnvOffice])
	assert.Equal(t, 7.0, s[domain.EnvOutdoor])
}

func TestEnvironment_RankingAssignsDecreasingWeights(t *testing.T) {
	s := NewEnvironmentScores()
	q := domain.Question{Type: domain.QuestionRanking, Subcategory: "environments"}
	s.Apply(domain.Answer{RawValue: raw(t, []string{"workshop", "construction_site", "office"})}, q)
	assert.Equal(t, 10.0, s[domain.EnvWorkshop])
	assert.Equal(t, 9.0, s[domain.EnvConstructionSite])
	assert.Equal(t, 8.0, s[domain.EnvOffice])
	assert.GreaterOrEqual(t, s[domain.EnvWorkshop], s[domain.EnvConstructionSite])
}

func TestEnvironment_TravelWillingness(t *testing.T) {
	s := NewEnvironmentScores()
	q := domain.Question{Type: domain.QuestionSlider, Subcategory: "travel_willingness"}
	s.Apply(domain.Answer{RawValue: raw(t, 2)}, q)
	assert.Equal(t, 2.0, s[domain.EnvTravel])
}
