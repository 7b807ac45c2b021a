package postgres

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// TestRepo loads competency tests and advances their status.
type TestRepo struct{ Pool PgxPool }

// NewTestRepo constructs a TestRepo with the given pool.
func NewTestRepo(p PgxPool) *TestRepo { return &TestRepo{Pool: p} }

// Get loads a test by id.
func (r *TestRepo) Get(ctx domain.Context, id string) (domain.Test, error) {
	tracer := otel.Tracer("repo.tests")
	ctx, span := tracer.Start(ctx, "tests.Get")
	defer span.End()
	q := `SELECT id, user_id, status, question_count, answer_count, created_at, updated_at FROM competency_tests WHERE id=$1`
	row := r.Pool.QueryRow(ctx, q, id)
	var t domain.Test
	if err := row.Scan(&t.ID, &t.UserID, &t.Status, &t.QuestionCount, &t.AnswerCount, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return domain.Test{}, fmt.Errorf("op=test.get: %w", domain.ErrNotFound)
		}
		return domain.Test{}, fmt.Errorf("op=test.get: %w", err)
	}
	return t, nil
}

// UpdateStatus advances a test's status.
func (r *TestRepo) UpdateStatus(ctx domain.Context, id string, status domain.TestStatus) error {
	tracer := otel.Tracer("repo.tests")
	ctx, span := tracer.Start(ctx, "tests.UpdateStatus")
	defer span.End()
	q := `UPDATE competency_tests SET status=$2, updated_at=$3 WHERE id=$1`
	tag, err := r.Pool.Exec(ctx, q, id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("op=test.update_status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=test.update_status: %w", domain.ErrNotFound)
	}
	return nil
}

// AnswerRepo loads submitted answers.
type AnswerRepo struct{ Pool PgxPool }

// NewAnswerRepo constructs an AnswerRepo with the given pool.
func NewAnswerRepo(p PgxPool) *AnswerRepo { return &AnswerRepo{Pool: p} }

// ListByTest loads a test's answers in submission order.
func (r *AnswerRepo) ListByTest(ctx domain.Context, testID string) ([]domain.Answer, error) {
	tracer := otel.Tracer("repo.answers")
	ctx, span := tracer.Start(ctx, "answers.ListByTest")
	defer span.End()
	q := `SELECT id, test_id, question_id, question_type, answer_value, created_at FROM test_answers WHERE test_id=$1 ORDER BY created_at, id`
	rows, err := r.Pool.Query(ctx, q, testID)
	if err != nil {
		return nil, fmt.Errorf("op=answer.list_by_test: %w", err)
	}
	defer rows.Close()
	var out []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.TestID, &a.QuestionID, &a.QuestionType, &a.RawValue, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("op=answer.list_by_test: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=answer.list_by_test: %w", err)
	}
	return out, nil
}
