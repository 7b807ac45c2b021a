// Package domain holds the core entities and ports of the career advisor.
package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrRateLimited     = errors.New("rate limited")
	ErrUpstreamTimeout = errors.New("upstream timeout")
	ErrInternal        = errors.New("internal error")
)

// QuestionType enumerates test question kinds.
type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "single_choice"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionSlider         QuestionType = "slider"
	QuestionRanking        QuestionType = "ranking"
	QuestionFreeText       QuestionType = "free_text"
)

// QuestionOption is one selectable option, optionally tagged with a Holland
// dimension that the option contributes to.
type QuestionOption struct {
	Value   string  `json:"value"`
	Label   string  `json:"label"`
	Holland *string `json:"holland,omitempty"`
}

// Question is immutable reference data describing one test item.
type Question struct {
	ID             string
	Type           QuestionType
	Text           string
	Options        []QuestionOption
	CompetencyArea string
	Subcategory    string
	OrderIndex     int
	IsActive       bool
}

// Answer is one submitted response. RawValue's shape depends on the question
// type: a number for sliders, an option value for single choice, an ordered
// list for rankings, or free text. Answers are created once and never mutated.
type Answer struct {
	ID           string
	TestID       string
	QuestionID   string
	QuestionType QuestionType
	RawValue     json.RawMessage
	CreatedAt    time.Time
}

// TestStatus transitions in_progress -> completed -> analyzed; analyzed is terminal.
type TestStatus string

const (
	TestInProgress TestStatus = "in_progress"
	TestCompleted  TestStatus = "completed"
	TestAnalyzed   TestStatus = "analyzed"
)

// Test is one competency-test attempt owned by a user.
type Test struct {
	ID            string
	UserID        string
	Status        TestStatus
	QuestionCount int
	AnswerCount   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MaxTestHistory bounds the profile's prior-test list (oldest dropped first).
const MaxTestHistory = 5

// CareerSuggestion is one ranked catalog match on a profile.
type CareerSuggestion struct {
	CareerID string `json:"career_id"`
	Title    string `json:"title"`
	Match    int    `json:"match"`
}

// UserSections holds the free-text fields the user edits directly. Analysis
// must never touch them.
type UserSections struct {
	Bio            string   `json:"bio"`
	Goals          string   `json:"goals"`
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
}

// SectionsPatch is a partial section update. A nil field was absent from the
// request and keeps the stored value.
type SectionsPatch struct {
	Bio            *string
	Goals          *string
	Skills         *[]string
	Certifications *[]string
}

// Apply merges the present fields of the patch onto s.
func (p SectionsPatch) Apply(s UserSections) UserSections {
	if p.Bio != nil {
		s.Bio = *p.Bio
	}
	if p.Goals != nil {
		s.Goals = *p.Goals
	}
	if p.Skills != nil {
		s.Skills = *p.Skills
	}
	if p.Certifications != nil {
		s.Certifications = *p.Certifications
	}
	return s
}

// CareerProfile is the single per-user profile row. Derived fields are
// overwritten on every analysis; Sections only through direct edits.
type CareerProfile struct {
	UserID           string
	HollandCode      string
	PersonalityLabel string
	Summary          string
	Competencies     map[string]float64
	WorkValues       map[string]float64
	Environment      map[string]float64
	Suggestions      []CareerSuggestion
	DevelopmentAreas []string
	Confidence       int
	LastTestID       string
	TestHistory      []string
	Sections         UserSections
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ChatLog records one advisor exchange for audit and context replay.
type ChatLog struct {
	ID        string
	UserID    string
	Message   string
	Reply     string
	Reasoning string
	CreatedAt time.Time
}

// Repositories (ports)

type QuestionRepository interface {
	ListActive(ctx Context) ([]Question, error)
	GetByIDs(ctx Context, ids []string) (map[string]Question, error)
	UpsertBatch(ctx Context, qs []Question) error
}

type TestRepository interface {
	Get(ctx Context, id string) (Test, error)
	UpdateStatus(ctx Context, id string, status TestStatus) error
}

type AnswerRepository interface {
	ListByTest(ctx Context, testID string) ([]Answer, error)
}

type ProfileRepository interface {
	Get(ctx Context, userID string) (CareerProfile, error)
	// UpsertDerived writes only analysis output, preserving Sections and
	// appending the previous last test id to the bounded history.
	UpsertDerived(ctx Context, p CareerProfile) error
	UpdateSections(ctx Context, userID string, s UserSections) error
}

type ChatLogRepository interface {
	Create(ctx Context, l ChatLog) (string, error)
}

// AIClient is the chat-completion port. Chat returns markdown text; a trailing
// structured reasoning block, when present, is parsed best-effort by the caller.
type AIClient interface {
	Chat(ctx Context, systemPrompt string, messages []ChatMessage, maxTokens int) (string, error)
}

// ChatMessage is one turn of a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PDFRenderer turns fully-formed HTML into PDF bytes.
type PDFRenderer interface {
	RenderHTML(ctx Context, html string) ([]byte, error)
}

// ChatLimiter bounds per-user chat throughput.
type ChatLimiter interface {
	Allow(ctx Context, key string, cost int64) (allowed bool, retryAfter time.Duration, err error)
}

// Context is an alias so ports read cleanly; adapters pass context.Context through.
type Context = context.Context
