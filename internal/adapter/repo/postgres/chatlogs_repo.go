package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// ChatLogRepo appends advisor exchanges.
type ChatLogRepo struct{ Pool PgxPool }

// NewChatLogRepo constructs a ChatLogRepo with the given pool.
func NewChatLogRepo(p PgxPool) *ChatLogRepo { return &ChatLogRepo{Pool: p} }

// Create inserts a chat log row and returns its id.
func (r *ChatLogRepo) Create(ctx domain.Context, l domain.ChatLog) (string, error) {
	tracer := otel.Tracer("repo.chatlogs")
	ctx, span := tracer.Start(ctx, "chatlogs.Create")
	defer span.End()
	id := l.ID
	if id == "" {
		id = uuid.New().String()
	}
	created := l.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	q := `INSERT INTO chat_logs (id, user_id, message, reply, reasoning, created_at) VALUES ($1,$2,$3,$4,$5,$6)`
	if _, err := r.Pool.Exec(ctx, q, id, l.UserID, l.Message, l.Reply, l.Reasoning, created); err != nil {
		return "", fmt.Errorf("op=chatlog.create: %w", err)
	}
	return id, nil
}
