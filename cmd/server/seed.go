package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Chudy3122/doradca-ai/internal/domain"
	"github.com/Chudy3122/doradca-ai/internal/usecase"
)

type questionYAML struct {
	Questions []struct {
		ID             string `yaml:"id"`
		Type           string `yaml:"type"`
		Text           string `yaml:"text"`
		CompetencyArea string `yaml:"competency_area"`
		Subcategory    string `yaml:"subcategory"`
		Order          int    `yaml:"order"`
		Active         *bool  `yaml:"active"`
		Options        []struct {
			Value   string `yaml:"value"`
			Label   string `yaml:"label"`
			Holland string `yaml:"holland"`
		} `yaml:"options"`
	} `yaml:"questions"`
}

// seedQuestions loads the YAML question bank and upserts it. Missing seed
// files are reported, not fatal; prod never calls this.
func seedQuestions(ctx domain.Context, svc usecase.QuestionService, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("seed file not found: %s", path)
		}
		return err
	}
	var doc questionYAML
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("yaml parse: %w", err)
	}
	if len(doc.Questions) == 0 {
		return fmt.Errorf("no questions in %s", path)
	}

	qs := make([]domain.Question, 0, len(doc.Questions))
	for _, y := range doc.Questions {
		q := domain.Question{
			ID:             y.ID,
			Type:           domain.QuestionType(y.Type),
			Text:           y.Text,
			CompetencyArea: y.CompetencyArea,
			Subcategory:    y.Subcategory,
			OrderIndex:     y.Order,
			IsActive:       y.Active == nil || *y.Active,
		}
		for _, o := range y.Options {
			opt := domain.QuestionOption{Value: o.Value, Label: o.Label}
			if o.Holland != "" {
				h := o.Holland
				opt.Holland = &h
			}
			q.Options = append(q.Options, opt)
		}
		qs = append(qs, q)
	}
	return svc.Seed(ctx, qs)
}
