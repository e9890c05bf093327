package mysql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/feedback-analyzer/internal/domain/feedback"
	"github.com/bryanwahyu/feedback-analyzer/internal/infra/db"
)

func TestFeedbackRepository_Insert(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	repo := NewFeedbackRepository(db.OpenerFunc(func(context.Context) (*sql.DB, error) { return conn, nil }))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO analyzed_feedback\s+\(message, doctor_score, nurse_score, hospital_score, notes_analysis\)\s+VALUES \(\?,\?,\?,\?,\?\)`).
		WithArgs("Dr. Smith was excellent but the nurse was rude", 9, 3, 5, "Doctor praised, nurse criticized").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()
	mock.ExpectClose()

	err = repo.Insert(context.Background(), domain.Record{
		Message:       "Dr. Smith was excellent but the nurse was rude",
		DoctorScore:   9,
		NurseScore:    3,
		HospitalScore: 5,
		NotesAnalysis: "Doctor praised, nurse criticized",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepository_Insert_ConnectionRefused(t *testing.T) {
	repo := NewFeedbackRepository(db.OpenerFunc(func(context.Context) (*sql.DB, error) {
		return nil, errors.New("dial tcp 10.0.0.5:3306: connect: connection refused")
	}))
	err := repo.Insert(context.Background(), domain.Record{Message: "x"})
	require.Error(t, err)
	assert.Equal(t, domain.KindStorageFailure, domain.KindOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewOpener(t *testing.T) {
	o := NewOpener("u:p@tcp(localhost:3306)/feedback")
	assert.Equal(t, "mysql", o.Driver)
	assert.Equal(t, "u:p@tcp(localhost:3306)/feedback", o.DSN)
}
