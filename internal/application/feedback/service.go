package feedback

import (
	"context"

	domain "github.com/bryanwahyu/feedback-analyzer/internal/domain/feedback"
	"github.com/bryanwahyu/feedback-analyzer/internal/logging"
)

// Service runs analyze → store for one validated request.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	Analyzer domain.Analyzer
	Store    domain.Store
}

func NewService(analyzer domain.Analyzer, store domain.Store) *Service {
	return &Service{Analyzer: analyzer, Store: store}
}

// Submit analyzes the message and persists exactly one record. Nothing is stored
// when the analysis fails; the insert is the last step.
func (s *Service) Submit(ctx context.Context, req domain.Request) (domain.Analysis, error) {
	log := logging.FromContext(ctx)

	analysis, err := s.Analyzer.Analyze(ctx, req.Message)
	if err != nil {
		if domain.KindOf(err) == domain.KindUnknown {
			err = domain.AnalysisFailure(err)
		}
		log.Error("feedback analysis failed", "err", err)
		return domain.Analysis{}, err
	}

	if err := s.Store.Insert(ctx, domain.NewRecord(req.Message, analysis)); err != nil {
		if domain.KindOf(err) == domain.KindUnknown {
			err = domain.StorageFailure(err)
		}
		log.Error("store analyzed feedback failed", "err", err)
		return domain.Analysis{}, err
	}

	log.Info("feedback analyzed",
		"doctor", analysis.Doctor,
		"nurse", analysis.Nurse,
		"hospital", analysis.Hospital,
	)
	return analysis, nil
}
