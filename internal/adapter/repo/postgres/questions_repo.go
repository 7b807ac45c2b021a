package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// QuestionRepo persists and loads the question bank.
type QuestionRepo struct{ Pool PgxPool }

// NewQuestionRepo constructs a QuestionRepo with the given pool.
func NewQuestionRepo(p PgxPool) *QuestionRepo { return &QuestionRepo{Pool: p} }

const questionColumns = `id, type, text, options, competency_area, subcategory, order_index, is_active`

// ListActive loads active questions ordered by their order index.
func (r *QuestionRepo) ListActive(ctx domain.Context) ([]domain.Question, error) {
	tracer := otel.Tracer("repo.questions")
	ctx, span := tracer.Start(ctx, "questions.ListActive")
	defer span.End()
	q := `SELECT ` + questionColumns + ` FROM test_questions WHERE is_active ORDER BY order_index`
	rows, err := r.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("op=question.list_active: %w", err)
	}
	defer rows.Close()
	var out []domain.Question
	for rows.Next() {
		qn, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("op=question.list_active: %w", err)
		}
		out = append(out, qn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=question.list_active: %w", err)
	}
	return out, nil
}

// GetByIDs loads the given questions keyed by id; unknown ids are skipped.
func (r *QuestionRepo) GetByIDs(ctx domain.Context, ids []string) (map[string]domain.Question, error) {
	tracer := otel.Tracer("repo.questions")
	ctx, span := tracer.Start(ctx, "questions.GetByIDs")
	defer span.End()
	if len(ids) == 0 {
		return map[string]domain.Question{}, nil
	}
	q := `SELECT ` + questionColumns + ` FROM test_questions WHERE id = ANY($1)`
	rows, err := r.Pool.Query(ctx, q, ids)
	if err != nil {
		return nil, fmt.Errorf("op=question.get_by_ids: %w", err)
	}
	defer rows.Close()
	out := make(map[string]domain.Question, len(ids))
	for rows.Next() {
		qn, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("op=question.get_by_ids: %w", err)
		}
		out[qn.ID] = qn
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=question.get_by_ids: %w", err)
	}
	return out, nil
}

// UpsertBatch inserts or replaces question bank entries (dev seeding).
func (r *QuestionRepo) UpsertBatch(ctx domain.Context, qs []domain.Question) error {
	tracer := otel.Tracer("repo.questions")
	ctx, span := tracer.Start(ctx, "questions.UpsertBatch")
	defer span.End()
	q := `INSERT INTO test_questions (id, type, text, options, competency_area, subcategory, order_index, is_active)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	      ON CONFLICT (id) DO UPDATE SET
	        type=EXCLUDED.type, text=EXCLUDED.text, options=EXCLUDED.options,
	        competency_area=EXCLUDED.competency_area, subcategory=EXCLUDED.subcategory,
	        order_index=EXCLUDED.order_index, is_active=EXCLUDED.is_active`
	for _, qn := range qs {
		id := qn.ID
		if id == "" {
			id = uuid.New().String()
		}
		opts, err := json.Marshal(qn.Options)
		if err != nil {
			return fmt.Errorf("op=question.upsert: %w", err)
		}
		if _, err := r.Pool.Exec(ctx, q, id, qn.Type, qn.Text, opts, qn.CompetencyArea, qn.Subcategory, qn.OrderIndex, qn.IsActive); err != nil {
			return fmt.Errorf("op=question.upsert: %w", err)
		}
	}
	return nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanQuestion(row rowScanner) (domain.Question, error) {
	var qn domain.Question
	var opts []byte
	if err := row.Scan(&qn.ID, &qn.Type, &qn.Text, &opts, &qn.CompetencyArea, &qn.Subcategory, &qn.OrderIndex, &qn.IsActive); err != nil {
		return domain.Question{}, err
	}
	if len(opts) > 0 {
		if err := json.Unmarshal(opts, &qn.Options); err != nil {
			return domain.Question{}, err
		}
	}
	return qn, nil
}
