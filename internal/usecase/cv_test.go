package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chudy3122/doradca-ai/internal/domain"
	"github.com/Chudy3122/doradca-ai/internal/usecase"
)

func validCV() usecase.CVData {
	return usecase.CVData{
		Personal: usecase.CVPersonal{
			FirstName: "Jan",
			LastName:  "Kowalski",
			Email:     "jan@example.com",
			Phone:     "+48 600 000 000",
		},
		Summary: "Inżynier z 5-letnim doświadczeniem.",
		Experience: []usecase.CVExperience{
			{Position: "Programista", Company: "Softhouse", From: "2020", To: "2024", Description: "Backend w Go."},
		},
		Skills: []string{"Go", "PostgreSQL"},
	}
}

func TestGeneratePDF_RendersAllSections(t *testing.T) {
	renderer := &fakePDF{}
	svc := usecase.NewCVService(renderer)

	pdf, filename, err := svc.GeneratePDF(context.Background(), validCV())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "CV-Jan-Kowalski.pdf", filename)

	assert.Contains(t, renderer.html, "Jan Kowalski")
	assert.Contains(t, renderer.html, "jan@example.com")
	assert.Contains(t, renderer.html, "Programista")
	assert.Contains(t, renderer.html, "PostgreSQL")
}

func TestGeneratePDF_MissingPersonalFields(t *testing.T) {
	svc := usecase.NewCVService(&fakePDF{})
	cv := validCV()
	cv.Personal.FirstName = " "
	cv.Personal.Email = ""

	_, _, err := svc.GeneratePDF(context.Background(), cv)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "first_name")
	assert.Contains(t, err.Error(), "email")
}

func TestGeneratePDF_RendererFailureSurfaces(t *testing.T) {
	svc := usecase.NewCVService(&fakePDF{err: errors.New("chromium exited 1")})
	_, _, err := svc.GeneratePDF(context.Background(), validCV())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chromium exited 1")
}

func TestGeneratePDF_EscapesUserContent(t *testing.T) {
	renderer := &fakePDF{}
	svc := usecase.NewCVService(renderer)
	cv := validCV()
	cv.Summary = `<script>alert("x")</script>`

	_, _, err := svc.GeneratePDF(context.Background(), cv)
	require.NoError(t, err)
	assert.NotContains(t, renderer.html, "<script>")
}
