// Package usecase wires domain ports into the application services.
package usecase

import (
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/Chudy3122/doradca-ai/internal/adapter/observability"
	"github.com/Chudy3122/doradca-ai/internal/domain"
	"github.com/Chudy3122/doradca-ai/internal/scoring"
)

// AnalyzeService runs the full scorer -> matcher -> narrative -> upsert
// pipeline for one completed test, synchronously within the request.
type AnalyzeService struct {
	Tests     domain.TestRepository
	Answers   domain.AnswerRepository
	Questions domain.QuestionRepository
	Profiles  domain.ProfileRepository
}

// NewAnalyzeService constructs an AnalyzeService.
func NewAnalyzeService(tests domain.TestRepository, answers domain.AnswerRepository, questions domain.QuestionRepository, profiles domain.ProfileRepository) AnalyzeService {
	return AnalyzeService{Tests: tests, Answers: answers, Questions: questions, Profiles: profiles}
}

// Analyze loads the test and its answers, computes all scores, and upserts the
// caller's profile. Only derived fields are written; user-edited sections and
// the bounded test history are carried over from the existing row. Concurrent
// re-analysis for one user is not guarded: the last writer wins at the row.
func (s AnalyzeService) Analyze(ctx domain.Context, userID, testID string) (domain.CareerProfile, error) {
	tracer := otel.Tracer("usecase.analyze")
	ctx, span := tracer.Start(ctx, "analyze.Run")
	defer span.End()

	if testID == "" {
		return domain.CareerProfile{}, fmt.Errorf("%w: test id required", domain.ErrInvalidArgument)
	}
	t, err := s.Tests.Get(ctx, testID)
	if err != nil {
		return domain.CareerProfile{}, fmt.Errorf("op=analyze.load_test: %w", err)
	}
	if t.UserID != userID {
		return domain.CareerProfile{}, fmt.Errorf("%w: test not owned by caller", domain.ErrUnauthorized)
	}
	if t.Status == domain.TestInProgress {
		return domain.CareerProfile{}, fmt.Errorf("%w: test not completed", domain.ErrConflict)
	}

	answers, err := s.Answers.ListByTest(ctx, testID)
	if err != nil {
		return domain.CareerProfile{}, fmt.Errorf("op=analyze.load_answers: %w", err)
	}
	if len(answers) == 0 {
		return domain.CareerProfile{}, fmt.Errorf("%w: test has no answers", domain.ErrInvalidArgument)
	}
	ids := make([]string, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}
	questions, err := s.Questions.GetByIDs(ctx, ids)
	if err != nil {
		return domain.CareerProfile{}, fmt.Errorf("op=analyze.load_questions: %w", err)
	}

	var holland scoring.HollandScores
	comps := scoring.NewCompetencyScores()
	vals := scoring.NewWorkValues()
	env := scoring.NewEnvironmentScores()
	for _, a := range answers {
		q, ok := questions[a.QuestionID]
		if !ok {
			continue
		}
		holland.Apply(a, q)
		comps.Apply(a, q)
		vals.Apply(a, q)
		env.Apply(a, q)
	}

	code := holland.Code()
	matches := scoring.RankCareers(domain.CareerCatalog(), code, comps, vals, env)
	suggestions := make([]domain.CareerSuggestion, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, domain.CareerSuggestion{
			CareerID: m.Career.ID,
			Title:    m.Career.Title,
			Match:    m.Percent(),
		})
	}

	total := t.QuestionCount
	if total == 0 {
		total = len(answers)
	}
	profile := domain.CareerProfile{
		UserID:           userID,
		HollandCode:      code,
		PersonalityLabel: scoring.PersonalityLabel(code, comps),
		Summary:          scoring.Summary(code, comps, vals),
		Competencies:     competencyMap(comps),
		WorkValues:       valueMap(vals),
		Environment:      environmentMap(env),
		Suggestions:      suggestions,
		DevelopmentAreas: scoring.DevelopmentAreas(comps, matches),
		Confidence:       scoring.Confidence(len(answers), total),
		LastTestID:       testID,
		UpdatedAt:        time.Now().UTC(),
	}

	// Carry forward user sections and push the previous last test id onto
	// the bounded history. First analysis starts with an empty history.
	existing, err := s.Profiles.Get(ctx, userID)
	switch {
	case err == nil:
		profile.Sections = existing.Sections
		profile.CreatedAt = existing.CreatedAt
		history := existing.TestHistory
		if existing.LastTestID != "" && existing.LastTestID != testID {
			history = append(history, existing.LastTestID)
		}
		if len(history) > domain.MaxTestHistory {
			history = history[len(history)-domain.MaxTestHistory:]
		}
		profile.TestHistory = history
	case errors.Is(err, domain.ErrNotFound):
		profile.CreatedAt = profile.UpdatedAt
		profile.TestHistory = []string{}
	default:
		return domain.CareerProfile{}, fmt.Errorf("op=analyze.load_profile: %w", err)
	}

	if err := s.Profiles.UpsertDerived(ctx, profile); err != nil {
		return domain.CareerProfile{}, fmt.Errorf("op=analyze.upsert_profile: %w", err)
	}
	if err := s.Tests.UpdateStatus(ctx, testID, domain.TestAnalyzed); err != nil {
		return domain.CareerProfile{}, fmt.Errorf("op=analyze.mark_analyzed: %w", err)
	}
	topMatch := 0
	if len(suggestions) > 0 {
		topMatch = suggestions[0].Match
	}
	observability.ObserveAnalysis(topMatch, profile.Confidence)
	return profile, nil
}

func competencyMap(s scoring.CompetencyScores) map[string]float64 {
	out := make(map[string]float64, len(s))
	for k, v := range s {
		out[string(k)] = v
	}
	return out
}

func valueMap(s scoring.WorkValues) map[string]float64 {
	out := make(map[string]float64, len(s))
	for k, v := range s {
		out[string(k)] = v
	}
	return out
}

func environmentMap(s scoring.EnvironmentScores) map[string]float64 {
	out := make(map[string]float64, len(s))
	for k, v := range s {
		out[string(k)] = v
	}
	return out
}
