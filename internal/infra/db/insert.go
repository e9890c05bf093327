package db

import (
	"context"
	"fmt"

	domain "github.com/bryanwahyu/feedback-analyzer/internal/domain/feedback"
)

// InsertRecord runs query with the record's five columns bound in order
// (message, doctor_score, nurse_score, hospital_score, notes_analysis) inside
// a single transaction. The connection is closed on every path.
func InsertRecord(ctx context.Context, o Opener, query string, r domain.Record) (err error) {
	conn, err := o.Open(ctx)
	if err != nil {
		return domain.StorageFailure(err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return domain.StorageFailure(fmt.Errorf("begin transaction: %w", err))
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, query,
		r.Message, r.DoctorScore, r.NurseScore, r.HospitalScore, r.NotesAnalysis,
	); err != nil {
		return domain.StorageFailure(fmt.Errorf("insert analyzed feedback: %w", err))
	}
	if err = tx.Commit(); err != nil {
		return domain.StorageFailure(fmt.Errorf("commit analyzed feedback: %w", err))
	}
	return nil
}
