package usecase

import (
	"fmt"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// QuestionService exposes the active question bank.
type QuestionService struct {
	Questions domain.QuestionRepository
}

// NewQuestionService constructs a QuestionService.
func NewQuestionService(questions domain.QuestionRepository) QuestionService {
	return QuestionService{Questions: questions}
}

// ListActive returns active questions ordered by their order index.
func (s QuestionService) ListActive(ctx domain.Context) ([]domain.Question, error) {
	qs, err := s.Questions.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("op=questions.list: %w", err)
	}
	return qs, nil
}

// Seed replaces or inserts the given question bank entries.
func (s QuestionService) Seed(ctx domain.Context, qs []domain.Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("%w: empty question seed", domain.ErrInvalidArgument)
	}
	if err := s.Questions.UpsertBatch(ctx, qs); err != nil {
		return fmt.Errorf("op=questions.seed: %w", err)
	}
	return nil
}
