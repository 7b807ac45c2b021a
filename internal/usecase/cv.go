package usecase

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// CVPersonal is the required header of a CV.
type CVPersonal struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// CVExperience is one work-history entry.
type CVExperience struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description"`
}

// CVEducation is one education entry.
type CVEducation struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// CVData is the full CV payload submitted for PDF export.
type CVData struct {
	Personal       CVPersonal     `json:"personal"`
	Summary        string         `json:"summary"`
	Experience     []CVExperience `json:"experience"`
	Education      []CVEducation  `json:"education"`
	Skills         []string       `json:"skills"`
	Certifications []string       `json:"certifications"`
}

// CVService renders CV data to HTML and hands it to the PDF port. The
// renderer owns the browser process lifecycle; this service never does.
type CVService struct {
	Renderer domain.PDFRenderer
}

// NewCVService constructs a CVService.
func NewCVService(r domain.PDFRenderer) CVService { return CVService{Renderer: r} }

// GeneratePDF validates the personal header, renders the HTML template, and
// returns the PDF bytes with a download filename.
func (s CVService) GeneratePDF(ctx domain.Context, cv CVData) ([]byte, string, error) {
	var missing []string
	if strings.TrimSpace(cv.Personal.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(cv.Personal.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(cv.Personal.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, "", fmt.Errorf("%w: missing personal fields: %s", domain.ErrInvalidArgument, strings.Join(missing, ", "))
	}

	var b strings.Builder
	if err := cvTemplate.Execute(&b, cv); err != nil {
		return nil, "", fmt.Errorf("op=cv.render_html: %w", err)
	}
	pdf, err := s.Renderer.RenderHTML(ctx, b.String())
	if err != nil {
		return nil, "", fmt.Errorf("op=cv.render_pdf: %w", err)
	}
	filename := fmt.Sprintf("CV-%s-%s.pdf", cv.Personal.FirstName, cv.Personal.LastName)
	return pdf, filename, nil
}

var cvTemplate = template.Must(template.New("cv").Parse(`<!DOCTYPE html>
<html lang="pl">
<head>
<meta charset="utf-8">
<style>
  body { font-family: 'Segoe UI', Arial, sans-serif; color: #222; margin: 40px; }
  h1 { margin-bottom: 0; font-size: 26px; }
  .contact { color: #555; margin-bottom: 24px; }
  h2 { border-bottom: 1px solid #bbb; padding-bottom: 4px; font-size: 16px; margin-top: 24px; }
  .entry { margin-bottom: 12px; }
  .entry .meta { color: #777; font-size: 12px; }
  ul { margin: 4px 0 0 18px; padding: 0; }
</style>
</head>
<body>
<h1>{{.Personal.FirstName}} {{.Personal.LastName}}</h1>
<div class="contact">{{.Personal.Email}}{{if .Personal.Phone}} &middot; {{.Personal.Phone}}{{end}}{{if .Personal.Address}} &middot; {{.Personal.Address}}{{end}}</div>
{{if .Summary}}<h2>Podsumowanie</h2><p>{{.Summary}}</p>{{end}}
{{if .Experience}}<h2>Doświadczenie</h2>
{{range .Experience}}<div class="entry"><strong>{{.Position}}</strong> — {{.Company}}
<div class="meta">{{.From}} – {{.To}}</div>
{{if .Description}}<p>{{.Description}}</p>{{end}}</div>
{{end}}{{end}}
{{if .Education}}<h2>Wykształcenie</h2>
{{range .Education}}<div class="entry"><strong>{{.School}}</strong>{{if .Degree}} — {{.Degree}}{{end}}
<div class="meta">{{.From}} – {{.To}}</div></div>
{{end}}{{end}}
{{if .Skills}}<h2>Umiejętności</h2><ul>{{range .Skills}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .Certifications}}<h2>Certyfikaty</h2><ul>{{range .Certifications}}<li>{{.}}</li>{{end}}</ul>{{end}}
</body>
</html>`))
