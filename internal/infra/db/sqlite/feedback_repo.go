package sqlite

import (
	"context"

	domain "github.com/bryanwahyu/feedback-analyzer/internal/domain/feedback"
	"github.com/bryanwahyu/feedback-analyzer/internal/infra/db"
)

const insertFeedback = `
INSERT INTO analyzed_feedback (
	message, doctor_score, nurse_score, hospital_score, notes_analysis
) VALUES (?, ?, ?, ?, ?)`

type FeedbackRepository struct {
	opener db.Opener
}

func NewFeedbackRepository(o db.Opener) *FeedbackRepository {
	return &FeedbackRepository{opener: o}
}

func (r *FeedbackRepository) Insert(ctx context.Context, rec domain.Record) error {
	return db.InsertRecord(ctx, r.opener, insertFeedback, rec)
}
