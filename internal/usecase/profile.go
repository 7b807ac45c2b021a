package usecase

import (
	"fmt"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// ProfileService reads profiles and merges user-edited sections. Sections are
// the only fields this service writes; derived fields belong to analysis.
type ProfileService struct {
	Profiles domain.ProfileRepository
}

// NewProfileService constructs a ProfileService.
func NewProfileService(profiles domain.ProfileRepository) ProfileService {
	return ProfileService{Profiles: profiles}
}

// Get returns the caller's profile, or ErrNotFound before the first analysis.
func (s ProfileService) Get(ctx domain.Context, userID string) (domain.CareerProfile, error) {
	p, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return domain.CareerProfile{}, fmt.Errorf("op=profile.get: %w", err)
	}
	return p, nil
}

// UpdateSections merges the user-edited free-text sections into an existing
// profile. Fields absent from the patch keep their stored values. Profiles
// are created by analysis, so an absent row is ErrNotFound.
func (s ProfileService) UpdateSections(ctx domain.Context, userID string, patch domain.SectionsPatch) (domain.CareerProfile, error) {
	p, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return domain.CareerProfile{}, fmt.Errorf("op=profile.load: %w", err)
	}
	merged := patch.Apply(p.Sections)
	if err := s.Profiles.UpdateSections(ctx, userID, merged); err != nil {
		return domain.CareerProfile{}, fmt.Errorf("op=profile.update_sections: %w", err)
	}
	p.Sections = merged
	return p, nil
}
