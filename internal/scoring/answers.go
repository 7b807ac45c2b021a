// Package scoring implements the deterministic test-analysis pipeline: the
// four scorers, the career matcher, and the narrative generator. Everything
// here is pure computation over decoded answers; no I/O.
package scoring

import (
	"encoding/json"
	"strconv"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// neutralValue is the midpoint default on the implied 1-10 scale, used when an
// answer carries no usable numeric value.
const neutralValue = 5

// numericValue decodes a raw answer as a number. Numeric strings count too,
// since sliders arrive as either.
func numericValue(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// numericOrNeutral returns the answer's numeric value, or the neutral default.
func numericOrNeutral(raw json.RawMessage) float64 {
	if v, ok := numericValue(raw); ok {
		return v
	}
	return neutralValue
}

// stringValue decodes a raw answer as a single selected option value.
func stringValue(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// stringList decodes a raw answer as an ordered list (ranking answers).
func stringList(raw json.RawMessage) ([]string, bool) {
	var l []string
	if err := json.Unmarshal(raw, &l); err != nil || len(l) == 0 {
		return nil, false
	}
	return l, true
}

// optionHolland looks up the Holland tag of the option with the given value.
func optionHolland(q domain.Question, value string) (domain.HollandDim, bool) {
	for _, opt := range q.Options {
		if opt.Value == value && opt.Holland != nil {
			return domain.ParseHollandLetter(*opt.Holland)
		}
	}
	return 0, false
}
