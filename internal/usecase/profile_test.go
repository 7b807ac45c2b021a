package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chudy3122/doradca-ai/internal/domain"
	"github.com/Chudy3122/doradca-ai/internal/usecase"
)

func TestProfileGet_NotFoundBeforeFirstAnalysis(t *testing.T) {
	svc := usecase.NewProfileService(newFakeProfileRepo())
	_, err := svc.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileUpdateSections_MergesOnlyUserFields(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["u1"] = domain.CareerProfile{
		UserID:      "u1",
		HollandCode: "RIC",
		Confidence:  90,
	}
	svc := usecase.NewProfileService(repo)

	bio, goals := "O mnie", "Awans"
	skills := []string{"Go"}
	p, err := svc.UpdateSections(context.Background(), "u1", domain.SectionsPatch{
		Bio: &bio, Goals: &goals, Skills: &skills,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UserSections{Bio: bio, Goals: goals, Skills: skills}, p.Sections)
	// derived fields untouched
	assert.Equal(t, "RIC", p.HollandCode)
	assert.Equal(t, 90, p.Confidence)
}

func TestProfileUpdateSections_AbsentFieldsKeepStoredValues(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["u1"] = domain.CareerProfile{
		UserID: "u1",
		Sections: domain.UserSections{
			Bio:    "Stare bio",
			Skills: []string{"Go", "SQL"},
		},
	}
	svc := usecase.NewProfileService(repo)

	bio := "Nowe bio"
	p, err := svc.UpdateSections(context.Background(), "u1", domain.SectionsPatch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Nowe bio", p.Sections.Bio)
	assert.Equal(t, []string{"Go", "SQL"}, p.Sections.Skills)
}

func TestProfileUpdateSections_MissingProfile(t *testing.T) {
	svc := usecase.NewProfileService(newFakeProfileRepo())
	bio := "x"
	_, err := svc.UpdateSections(context.Background(), "u1", domain.SectionsPatch{Bio: &bio})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
