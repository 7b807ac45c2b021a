// Package stub provides a fast, deterministic AI client for local runs and
// tests where no provider key is configured.
package stub

import (
	"strings"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// Client answers every prompt with a canned advisory reply.
type Client struct{}

// New constructs a stub client.
func New() *Client { return &Client{} }

// Chat echoes a fixed Polish advisory answer with a reasoning block so the
// extraction path is exercised end to end.
func (c *Client) Chat(_ domain.Context, _ string, messages []domain.ChatMessage, _ int) (string, error) {
	last := ""
	if len(messages) > 0 {
		last = messages[len(messages)-1].Content
	}
	var b strings.Builder
	b.WriteString("Dziękuję za pytanie")
	if last != "" {
		b.WriteString(" o: _")
		if len(last) > 80 {
			last = last[:80]
		}
		b.WriteString(last)
		b.WriteString("_")
	}
	b.WriteString(".\n\nNa podstawie Twojego profilu warto rozważyć role łączące ")
	b.WriteString("umiejętności techniczne z pracą zespołową.\n\n")
	b.WriteString("```json\n{\"reasoning\":{\"source\":\"stub\",\"confidence\":0.5}}\n```")
	return b.String(), nil
}
