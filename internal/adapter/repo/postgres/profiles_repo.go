package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// ProfileRepo persists the single per-user career profile row.
type ProfileRepo struct{ Pool PgxPool }

// NewProfileRepo constructs a ProfileRepo with the given pool.
func NewProfileRepo(p PgxPool) *ProfileRepo { return &ProfileRepo{Pool: p} }

// Get loads a user's profile.
func (r *ProfileRepo) Get(ctx domain.Context, userID string) (domain.CareerProfile, error) {
	tracer := otel.Tracer("repo.profiles")
	ctx, span := tracer.Start(ctx, "profiles.Get")
	defer span.End()
	q := `SELECT user_id, holland_code, personality_label, summary, competencies, work_values,
	        environment, suggestions, development_areas, confidence, last_test_id, test_history,
	        sections, created_at, updated_at
	      FROM user_career_profiles WHERE user_id=$1`
	row := r.Pool.QueryRow(ctx, q, userID)
	var p domain.CareerProfile
	var comps, vals, env, sugg, areas, history, sections []byte
	err := row.Scan(&p.UserID, &p.HollandCode, &p.PersonalityLabel, &p.Summary, &comps, &vals,
		&env, &sugg, &areas, &p.Confidence, &p.LastTestID, &history, &sections, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.CareerProfile{}, fmt.Errorf("op=profile.get: %w", domain.ErrNotFound)
		}
		return domain.CareerProfile{}, fmt.Errorf("op=profile.get: %w", err)
	}
	for _, dec := range []struct {
		raw []byte
		dst any
	}{
		{comps, &p.Competencies},
		{vals, &p.WorkValues},
		{env, &p.Environment},
		{sugg, &p.Suggestions},
		{areas, &p.DevelopmentAreas},
		{history, &p.TestHistory},
		{sections, &p.Sections},
	} {
		if len(dec.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(dec.raw, dec.dst); err != nil {
			return domain.CareerProfile{}, fmt.Errorf("op=profile.get: %w", err)
		}
	}
	return p, nil
}

// UpsertDerived writes the analysis output. The conflict clause deliberately
// leaves sections and created_at out: re-analysis never touches user edits.
func (r *ProfileRepo) UpsertDerived(ctx domain.Context, p domain.CareerProfile) error {
	tracer := otel.Tracer("repo.profiles")
	ctx, span := tracer.Start(ctx, "profiles.UpsertDerived")
	defer span.End()
	comps, err := json.Marshal(p.Competencies)
	if err != nil {
		return fmt.Errorf("op=profile.upsert: %w", err)
	}
	vals, err := json.Marshal(p.WorkValues)
	if err != nil {
		return fmt.Errorf("op=profile.upsert: %w", err)
	}
	env, err := json.Marshal(p.Environment)
	if err != nil {
		return fmt.Errorf("op=profile.upsert: %w", err)
	}
	sugg, err := json.Marshal(p.Suggestions)
	if err != nil {
		return fmt.Errorf("op=profile.upsert: %w", err)
	}
	areas, err := json.Marshal(p.DevelopmentAreas)
	if err != nil {
		return fmt.Errorf("op=profile.upsert: %w", err)
	}
	history, err := json.Marshal(p.TestHistory)
	if err != nil {
		return fmt.Errorf("op=profile.upsert: %w", err)
	}
	sections, err := json.Marshal(p.Sections)
	if err != nil {
		return fmt.Errorf("op=profile.upsert: %w", err)
	}
	q := `INSERT INTO user_career_profiles
	        (user_id, holland_code, personality_label, summary, competencies, work_values,
	         environment, suggestions, development_areas, confidence, last_test_id, test_history,
	         sections, created_at, updated_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	      ON CONFLICT (user_id) DO UPDATE SET
	        holland_code=EXCLUDED.holland_code,
	        personality_label=EXCLUDED.personality_label,
	        summary=EXCLUDED.summary,
	        competencies=EXCLUDED.competencies,
	        work_values=EXCLUDED.work_values,
	        environment=EXCLUDED.environment,
	        suggestions=EXCLUDED.suggestions,
	        development_areas=EXCLUDED.development_areas,
	        confidence=EXCLUDED.confidence,
	        last_test_id=EXCLUDED.last_test_id,
	        test_history=EXCLUDED.test_history,
	        updated_at=EXCLUDED.updated_at`
	_, err = r.Pool.Exec(ctx, q, p.UserID, p.HollandCode, p.PersonalityLabel, p.Summary, comps, vals,
		env, sugg, areas, p.Confidence, p.LastTestID, history, sections, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("op=profile.upsert: %w", err)
	}
	return nil
}

// UpdateSections writes only the user-edited sections.
func (r *ProfileRepo) UpdateSections(ctx domain.Context, userID string, s domain.UserSections) error {
	tracer := otel.Tracer("repo.profiles")
	ctx, span := tracer.Start(ctx, "profiles.UpdateSections")
	defer span.End()
	sections, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("op=profile.update_sections: %w", err)
	}
	q := `UPDATE user_career_profiles SET sections=$2, updated_at=now() WHERE user_id=$1`
	tag, err := r.Pool.Exec(ctx, q, userID, sections)
	if err != nil {
		return fmt.Errorf("op=profile.update_sections: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=profile.update_sections: %w", domain.ErrNotFound)
	}
	return nil
}
