package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Chudy3122/doradca-ai/internal/config"
	"github.com/Chudy3122/doradca-ai/internal/domain"
	"github.com/Chudy3122/doradca-ai/internal/usecase"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg       config.Config
	Analyze   usecase.AnalyzeService
	Profiles  usecase.ProfileService
	Chat      usecase.ChatService
	CV        usecase.CVService
	Questions usecase.QuestionService

	DBCheck    func(ctx context.Context) error
	RedisCheck func(ctx context.Context) error
	PDFCheck   func(ctx context.Context) error
	AICheck    func(ctx context.Context) error
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

func validationDetails(err error) map[string]string {
	verrs := map[string]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			verrs[strings.ToLower(fe.Field())] = fe.Tag()
		}
	}
	return verrs
}

// profileResponse is the wire shape of a career profile.
type profileResponse struct {
	UserID           string                    `json:"user_id"`
	HollandCode      string                    `json:"holland_code"`
	PersonalityLabel string                    `json:"personality_label"`
	Summary          string                    `json:"summary"`
	Competencies     map[string]float64        `json:"competencies"`
	WorkValues       map[string]float64        `json:"work_values"`
	Environment      map[string]float64        `json:"environment"`
	Suggestions      []domain.CareerSuggestion `json:"suggestions"`
	DevelopmentAreas []string                  `json:"development_areas"`
	Confidence       int                       `json:"confidence"`
	LastTestID       string                    `json:"last_test_id,omitempty"`
	TestHistory      []string                  `json:"test_history,omitempty"`
	Sections         domain.UserSections       `json:"sections"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

func toProfileResponse(p domain.CareerProfile) profileResponse {
	return profileResponse{
		UserID:           p.UserID,
		HollandCode:      p.HollandCode,
		PersonalityLabel: p.PersonalityLabel,
		Summary:          p.Summary,
		Competencies:     p.Competencies,
		WorkValues:       p.WorkValues,
		Environment:      p.Environment,
		Suggestions:      p.Suggestions,
		DevelopmentAreas: p.DevelopmentAreas,
		Confidence:       p.Confidence,
		LastTestID:       p.LastTestID,
		TestHistory:      p.TestHistory,
		Sections:         p.Sections,
		UpdatedAt:        p.UpdatedAt,
	}
}

// AnalyzeHandler scores a completed test and returns the refreshed profile.
func (s *Server) AnalyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		var req struct {
			TestID string `json:"test_id" validate:"required,max=100"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}
		profile, err := s.Analyze.Analyze(r.Context(), UserIDFrom(r), req.TestID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(profile))
	}
}

// ProfileHandler returns the caller's profile; 404 until first analysis.
func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := s.Profiles.Get(r.Context(), UserIDFrom(r))
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(profile))
	}
}

// UpdateProfileHandler patches the user-edited sections. Fields absent from
// the body keep their stored values; any other key, including derived fields
// like holland_code, is rejected.
func (s *Server) UpdateProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		var req struct {
			Bio            *string   `json:"bio" validate:"omitempty,max=4000"`
			Goals          *string   `json:"goals" validate:"omitempty,max=4000"`
			Skills         *[]string `json:"skills" validate:"omitempty,max=50,dive,max=200"`
			Certifications *[]string `json:"certifications" validate:"omitempty,max=50,dive,max=200"`
		}
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid body", domain.ErrInvalidArgument),
				map[string]string{"body": err.Error()})
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}
		profile, err := s.Profiles.UpdateSections(r.Context(), UserIDFrom(r), domain.SectionsPatch{
			Bio:            req.Bio,
			Goals:          req.Goals,
			Skills:         req.Skills,
			Certifications: req.Certifications,
		})
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(profile))
	}
}

// ChatHandler forwards one advisor exchange to the LLM.
func (s *Server) ChatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		var req struct {
			Message string               `json:"message" validate:"required,max=4000"`
			History []domain.ChatMessage `json:"history" validate:"max=40"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}
		reply, err := s.Chat.Ask(r.Context(), UserIDFrom(r), req.Message, req.History)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, reply)
	}
}

// GenerateCVPDFHandler renders the submitted CV and streams it as a download.
func (s *Server) GenerateCVPDFHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 2<<20)
		var req usecase.CVData
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		pdfBytes, filename, err := s.CV.GeneratePDF(r.Context(), req)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdfBytes)
	}
}

// questionResponse is the wire shape of one test question.
type questionResponse struct {
	ID             string                  `json:"id"`
	Type           domain.QuestionType     `json:"type"`
	Text           string                  `json:"text"`
	Options        []domain.QuestionOption `json:"options,omitempty"`
	CompetencyArea string                  `json:"competency_area,omitempty"`
	Subcategory    string                  `json:"subcategory,omitempty"`
	OrderIndex     int                     `json:"order_index"`
}

// QuestionsHandler lists active test questions in presentation order.
func (s *Server) QuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs, err := s.Questions.ListActive(r.Context())
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		out := make([]questionResponse, 0, len(qs))
		for _, q := range qs {
			out = append(out, questionResponse{
				ID:             q.ID,
				Type:           q.Type,
				Text:           q.Text,
				Options:        q.Options,
				CompetencyArea: q.CompetencyArea,
				Subcategory:    q.Subcategory,
				OrderIndex:     q.OrderIndex,
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"questions": out})
	}
}

// ReadyzHandler probes the DB, Redis and the PDF renderer.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	probe := func(ctx context.Context, name string, fn func(context.Context) error) check {
		if err := fn(ctx); err != nil {
			return check{Name: name, OK: false, Details: err.Error()}
		}
		return check{Name: name, OK: true}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := make([]check, 0, 4)
		if s.DBCheck != nil {
			checks = append(checks, probe(ctx, "db", s.DBCheck))
		}
		if s.RedisCheck != nil {
			checks = append(checks, probe(ctx, "redis", s.RedisCheck))
		}
		if s.PDFCheck != nil {
			checks = append(checks, probe(ctx, "pdf", s.PDFCheck))
		}
		if s.AICheck != nil {
			checks = append(checks, probe(ctx, "ai", s.AICheck))
		}
		ok := true
		for _, c := range checks {
			if !c.OK {
				ok = false
				break
			}
		}
		st := http.StatusOK
		if !ok {
			st = http.StatusServiceUnavailable
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}
