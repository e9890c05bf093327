package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	domain "github.com/bryanwahyu/feedback-analyzer/internal/domain/feedback"
)

// FeedbackAnalyzer asks a Completer to score a message and parses the reply.
type FeedbackAnalyzer struct {
	completer domain.Completer
}

func NewFeedbackAnalyzer(c domain.Completer) *FeedbackAnalyzer {
	return &FeedbackAnalyzer{completer: c}
}

func (a *FeedbackAnalyzer) Analyze(ctx context.Context, message string) (domain.Analysis, error) {
	reply, err := a.completer.Complete(ctx, GetSystemPrompt(), GetUserPrompt(message))
	if err != nil {
		return domain.Analysis{}, domain.AnalysisFailure(err)
	}
	return ParseAnalysis(reply)
}

// ParseAnalysis decodes a reply that must be exactly one JSON object.
// Missing or invalid scores fall back to domain.DefaultScore and a missing
// or non-string notes field becomes "". Non-object replies and trailing
// content are analysis failures.
func ParseAnalysis(reply string) (domain.Analysis, error) {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(reply)))
	dec.UseNumber()

	var obj map[string]json.RawMessage
	if err := dec.Decode(&obj); err != nil {
		return domain.Analysis{}, domain.AnalysisFailuref("parse completion reply: %w", err)
	}
	if obj == nil {
		return domain.Analysis{}, domain.AnalysisFailuref("parse completion reply: expected a JSON object, got null")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.Analysis{}, domain.AnalysisFailuref("parse completion reply: unexpected content after JSON object")
	}

	return domain.Analysis{
		Doctor:   score(obj["doctor"]),
		Nurse:    score(obj["nurse"]),
		Hospital: score(obj["hospital"]),
		Notes:    notes(obj["notes"]),
	}, nil
}

func score(raw json.RawMessage) int {
	if len(raw) == 0 {
		return domain.DefaultScore
	}

	var text string
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return domain.DefaultScore
	}
	switch t := v.(type) {
	case json.Number:
		text = t.String()
	case string:
		text = strings.TrimSpace(t)
	default:
		return domain.DefaultScore
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f < domain.MinScore || f > domain.MaxScore {
		return domain.DefaultScore
	}
	return int(f)
}

func notes(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
