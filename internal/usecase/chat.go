package usecase

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Chudy3122/doradca-ai/internal/domain"
	"github.com/Chudy3122/doradca-ai/pkg/textx"
)

// chatSystemPrompt frames the assistant as a Polish career advisor. Replies
// are markdown; the model may close with a fenced JSON reasoning block which
// the service extracts best-effort.
const chatSystemPrompt = `Jesteś doświadczonym doradcą zawodowym. Odpowiadasz po polsku,
rzeczowo i konkretnie, w formacie markdown. Jeśli Twoja odpowiedź opiera się na
analizie, możesz zakończyć ją blokiem ` + "```json" + ` z polem "reasoning".`

// maxHistoryTurns bounds how much prior conversation is replayed to the model.
const maxHistoryTurns = 20

// ChatReply is the advisor's answer plus the optional parsed reasoning block.
type ChatReply struct {
	Reply     string          `json:"reply"`
	Reasoning json.RawMessage `json:"reasoning,omitempty"`
}

// ChatService handles one advisor exchange: rate limit, single LLM call (no
// retry; a provider failure surfaces directly), reasoning extraction, logging.
type ChatService struct {
	AI        domain.AIClient
	Logs      domain.ChatLogRepository
	Limiter   domain.ChatLimiter
	MaxTokens int
}

// NewChatService constructs a ChatService.
func NewChatService(ai domain.AIClient, logs domain.ChatLogRepository, limiter domain.ChatLimiter, maxTokens int) ChatService {
	return ChatService{AI: ai, Logs: logs, Limiter: limiter, MaxTokens: maxTokens}
}

// Ask sends the user's message (with bounded history) to the LLM and returns
// the markdown reply.
func (s ChatService) Ask(ctx domain.Context, userID, message string, history []domain.ChatMessage) (ChatReply, error) {
	message = textx.SanitizeText(message)
	if message == "" {
		return ChatReply{}, fmt.Errorf("%w: message required", domain.ErrInvalidArgument)
	}
	if s.Limiter != nil {
		allowed, retryAfter, err := s.Limiter.Allow(ctx, "chat:"+userID, 1)
		if err != nil {
			// Limiter failures fail open; the provider's own limits still apply.
			slog.Warn("chat limiter error", slog.Any("error", err))
		}
		if !allowed {
			return ChatReply{}, fmt.Errorf("%w: retry after %s", domain.ErrRateLimited, retryAfter.Round(time.Second))
		}
	}

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	messages := make([]domain.ChatMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, domain.ChatMessage{Role: "user", Content: message})

	text, err := s.AI.Chat(ctx, chatSystemPrompt, messages, s.MaxTokens)
	if err != nil {
		return ChatReply{}, fmt.Errorf("op=chat.completion: %w", err)
	}

	reply, reasoning := extractReasoning(text)
	if s.Logs != nil {
		if _, err := s.Logs.Create(ctx, domain.ChatLog{
			UserID:    userID,
			Message:   message,
			Reply:     reply,
			Reasoning: string(reasoning),
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			slog.Warn("chat log write failed", slog.Any("error", err))
		}
	}
	return ChatReply{Reply: reply, Reasoning: reasoning}, nil
}

// extractReasoning splits an optional trailing fenced JSON block off the
// reply. Any parse failure falls back to returning the full text unchanged.
func extractReasoning(text string) (string, json.RawMessage) {
	start := strings.LastIndex(text, "```json")
	if start < 0 {
		return strings.TrimSpace(text), nil
	}
	rest := text[start+len("```json"):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(text), nil
	}
	block := strings.TrimSpace(rest[:end])
	if !gjson.Valid(block) {
		return strings.TrimSpace(text), nil
	}
	reply := strings.TrimSpace(text[:start] + rest[end+len("```"):])
	if r := gjson.Get(block, "reasoning"); r.Exists() {
		return reply, json.RawMessage(r.Raw)
	}
	return reply, json.RawMessage(block)
}
