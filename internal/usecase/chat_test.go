package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chudy3122/doradca-ai/internal/domain"
	"github.com/Chudy3122/doradca-ai/internal/usecase"
)

func TestChat_ReplyWithReasoningBlock(t *testing.T) {
	ai := &fakeAI{reply: "Rozważ pracę w branży IT.\n\n```json\n{\"reasoning\":{\"holland\":\"RIC\",\"match\":88}}\n```"}
	logs := &fakeChatLogs{}
	svc := usecase.NewChatService(ai, logs, &fakeLimiter{allowed: true}, 512)

	out, err := svc.Ask(context.Background(), "u1", "Jaka praca dla mnie?", nil)
	require.NoError(t, err)
	assert.Equal(t, "Rozważ pracę w branży IT.", out.Reply)
	assert.JSONEq(t, `{"holland":"RIC","match":88}`, string(out.Reasoning))

	require.Len(t, logs.logs, 1)
	assert.Equal(t, "u1", logs.logs[0].UserID)
	assert.Equal(t, out.Reply, logs.logs[0].Reply)
}

func TestChat_MalformedReasoningFallsBackToPlainText(t *testing.T) {
	reply := "Oto moja rada.\n```json\n{not valid json\n```"
	ai := &fakeAI{reply: reply}
	svc := usecase.NewChatService(ai, &fakeChatLogs{}, &fakeLimiter{allowed: true}, 512)

	out, err := svc.Ask(context.Background(), "u1", "pytanie", nil)
	require.NoError(t, err)
	assert.Equal(t, reply, out.Reply)
	assert.Nil(t, out.Reasoning)
}

func TestChat_NoReasoningBlock(t *testing.T) {
	ai := &fakeAI{reply: "Zwykła odpowiedź markdown."}
	svc := usecase.NewChatService(ai, &fakeChatLogs{}, &fakeLimiter{allowed: true}, 512)

	out, err := svc.Ask(context.Background(), "u1", "pytanie", nil)
	require.NoError(t, err)
	assert.Equal(t, "Zwykła odpowiedź markdown.", out.Reply)
	assert.Nil(t, out.Reasoning)
}

func TestChat_RateLimited(t *testing.T) {
	lim := &fakeLimiter{allowed: false, retryAfter: 12 * time.Second}
	svc := usecase.NewChatService(&fakeAI{}, &fakeChatLogs{}, lim, 512)

	_, err := svc.Ask(context.Background(), "u1", "pytanie", nil)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Equal(t, 1, lim.calls)
}

func TestChat_ProviderFailureSurfacesImmediately(t *testing.T) {
	ai := &fakeAI{err: errors.New("upstream 502")}
	svc := usecase.NewChatService(ai, &fakeChatLogs{}, &fakeLimiter{allowed: true}, 512)

	_, err := svc.Ask(context.Background(), "u1", "pytanie", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 502")
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	svc := usecase.NewChatService(&fakeAI{}, &fakeChatLogs{}, &fakeLimiter{allowed: true}, 512)
	_, err := svc.Ask(context.Background(), "u1", "   ", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestChat_HistoryBoundedAndForwarded(t *testing.T) {
	ai := &fakeAI{reply: "ok"}
	svc := usecase.NewChatService(ai, &fakeChatLogs{}, &fakeLimiter{allowed: true}, 512)

	history := make([]domain.ChatMessage, 30)
	for i := range history {
		history[i] = domain.ChatMessage{Role: "user", Content: "stara wiadomość"}
	}
	_, err := svc.Ask(context.Background(), "u1", "nowa", history)
	require.NoError(t, err)
	// 20 replayed turns plus the new message
	assert.Len(t, ai.got, 21)
	assert.Equal(t, "nowa", ai.got[len(ai.got)-1].Content)
}
