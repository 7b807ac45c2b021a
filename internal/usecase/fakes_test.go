package usecase_test

import (
	"fmt"
	"time"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

type fakeTestRepo struct {
	tests    map[string]domain.Test
	statuses map[string]domain.TestStatus
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{tests: map[string]domain.Test{}, statuses: map[string]domain.TestStatus{}}
}

func (f *fakeTestRepo) Get(_ domain.Context, id string) (domain.Test, error) {
	t, ok := f.tests[id]
	if !ok {
		return domain.Test{}, fmt.Errorf("op=test.get: %w", domain.ErrNotFound)
	}
	return t, nil
}

func (f *fakeTestRepo) UpdateStatus(_ domain.Context, id string, status domain.TestStatus) error {
	f.statuses[id] = status
	return nil
}

type fakeAnswerRepo struct {
	answers map[string][]domain.Answer
}

func (f *fakeAnswerRepo) ListByTest(_ domain.Context, testID string) ([]domain.Answer, error) {
	return f.answers[testID], nil
}

type fakeQuestionRepo struct {
	questions map[string]domain.Question
}

func (f *fakeQuestionRepo) ListActive(_ domain.Context) ([]domain.Question, error) {
	out := make([]domain.Question, 0, len(f.questions))
	for _, q := range f.questions {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuestionRepo) GetByIDs(_ domain.Context, ids []string) (map[string]domain.Question, error) {
	out := map[string]domain.Question{}
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) UpsertBatch(_ domain.Context, qs []domain.Question) error {
	if f.questions == nil {
		f.questions = map[string]domain.Question{}
	}
	for _, q := range qs {
		f.questions[q.ID] = q
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]domain.CareerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]domain.CareerProfile{}}
}

func (f *fakeProfileRepo) Get(_ domain.Context, userID string) (domain.CareerProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return domain.CareerProfile{}, fmt.Errorf("op=profile.get: %w", domain.ErrNotFound)
	}
	return p, nil
}

func (f *fakeProfileRepo) UpsertDerived(_ domain.Context, p domain.CareerProfile) error {
	// Mirrors the SQL upsert: section columns are never part of the update,
	// so an existing row keeps its sections regardless of what p carries.
	if existing, ok := f.profiles[p.UserID]; ok {
		p.Sections = existing.Sections
	}
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) UpdateSections(_ domain.Context, userID string, s domain.UserSections) error {
	p, ok := f.profiles[userID]
	if !ok {
		return fmt.Errorf("op=profile.update_sections: %w", domain.ErrNotFound)
	}
	p.Sections = s
	f.profiles[userID] = p
	return nil
}

type fakeAI struct {
	reply string
	err   error
	got   []domain.ChatMessage
}

func (f *fakeAI) Chat(_ domain.Context, _ string, messages []domain.ChatMessage, _ int) (string, error) {
	f.got = messages
	return f.reply, f.err
}

type fakeLimiter struct {
	allowed    bool
	retryAfter time.Duration
	calls      int
}

func (f *fakeLimiter) Allow(_ domain.Context, _ string, _ int64) (bool, time.Duration, error) {
	f.calls++
	return f.allowed, f.retryAfter, nil
}

type fakeChatLogs struct {
	logs []domain.ChatLog
}

func (f *fakeChatLogs) Create(_ domain.Context, l domain.ChatLog) (string, error) {
	f.logs = append(f.logs, l)
	return "log-1", nil
}

type fakePDF struct {
	html string
	err  error
}

func (f *fakePDF) RenderHTML(_ domain.Context, html string) ([]byte, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7 fake"), nil
}
