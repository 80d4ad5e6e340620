package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"paperlens/internal/metrics"
	"paperlens/internal/model"
)

type AnalysisService struct {
	store     PaperStore
	generator Generator
	biasCache BiasCache
	publisher AuditPublisher
	audit     AuditStore
	logger    *zap.Logger
}

func NewAnalysisService(
	store PaperStore,
	generator Generator,
	biasCache BiasCache,
	publisher AuditPublisher,
	audit AuditStore,
	logger *zap.Logger,
) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		store:     store,
		generator: generator,
		biasCache: biasCache,
		publisher: publisher,
		audit:     audit,
		logger:    logger,
	}
}

type BiasResult struct {
	Analysis string `json:"analysis"`
	Cached   bool   `json:"cached"`
}

// DetectBias returns the cached analysis when one exists, otherwise runs the
// generator once and caches the result. A cache read failure degrades to a
// miss; a cache write failure only loses the caching benefit.
func (s *AnalysisService) DetectBias(ctx context.Context, paperID uint) (*BiasResult, error) {
	paper, err := s.getPaper(paperID)
	if err != nil {
		return nil, err
	}

	if s.biasCache != nil {
		cached, hit, cacheErr := s.biasCache.Get(ctx, paperID)
		if cacheErr != nil {
			s.logger.Warn("read bias cache failed", zap.Uint("paper_id", paperID), zap.Error(cacheErr))
		} else if hit {
			return &BiasResult{Analysis: cached, Cached: true}, nil
		}
	}

	metrics.GeneratorCalls.WithLabelValues(model.AnalysisKindBias).Inc()
	analysis, err := s.generator.DetectBias(ctx, paper.FullText)
	if err != nil {
		metrics.GeneratorFailures.WithLabelValues(model.AnalysisKindBias).Inc()
		s.logger.Error("bias analysis failed", zap.Uint("paper_id", paperID), zap.Error(err))
		return nil, err
	}

	if s.biasCache != nil {
		if err := s.biasCache.Set(ctx, paperID, analysis); err != nil {
			s.logger.Warn("write bias cache failed", zap.Uint("paper_id", paperID), zap.Error(err))
		}
	}

	s.publishAudit(ctx, model.AnalysisRecord{
		PaperID: paperID,
		Kind:    model.AnalysisKindBias,
		Output:  analysis,
		Model:   s.generator.Model(),
	})

	return &BiasResult{Analysis: analysis}, nil
}

type AskResult struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Ask answers a free-form question about one paper. An empty question is
// rejected before any generator call.
func (s *AnalysisService) Ask(ctx context.Context, paperID uint, question string) (*AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrQuestionEmpty
	}

	paper, err := s.getPaper(paperID)
	if err != nil {
		return nil, err
	}

	metrics.GeneratorCalls.WithLabelValues(model.AnalysisKindAnswer).Inc()
	answer, err := s.generator.AnswerQuestion(ctx, paper.FullText, question)
	if err != nil {
		metrics.GeneratorFailures.WithLabelValues(model.AnalysisKindAnswer).Inc()
		s.logger.Error("answer question failed", zap.Uint("paper_id", paperID), zap.Error(err))
		return nil, err
	}

	s.publishAudit(ctx, model.AnalysisRecord{
		PaperID:  paperID,
		Kind:     model.AnalysisKindAnswer,
		Question: question,
		Output:   answer,
		Model:    s.generator.Model(),
	})

	return &AskResult{Question: question, Answer: answer}, nil
}

// ListAnalyses returns the persisted audit trail for one paper.
func (s *AnalysisService) ListAnalyses(ctx context.Context, paperID uint) ([]model.AnalysisRecord, error) {
	if _, err := s.getPaper(paperID); err != nil {
		return nil, err
	}
	records, err := s.audit.ListByPaperID(paperID)
	if err != nil {
		s.logger.Error("list analysis records failed", zap.Uint("paper_id", paperID), zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (s *AnalysisService) getPaper(paperID uint) (*model.Paper, error) {
	if paperID == 0 {
		return nil, ErrInvalidInput
	}
	paper, err := s.store.GetByID(paperID)
	if err != nil {
		s.logger.Error("get paper failed", zap.Uint("paper_id", paperID), zap.Error(err))
		return nil, err
	}
	if paper == nil {
		return nil, ErrPaperNotFound
	}
	return paper, nil
}

func (s *AnalysisService) publishAudit(ctx context.Context, record model.AnalysisRecord) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, record); err != nil {
		s.logger.Warn("publish analysis audit failed",
			zap.Uint("paper_id", record.PaperID),
			zap.String("kind", record.Kind),
			zap.Error(err))
	}
}
