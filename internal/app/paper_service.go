package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"paperlens/internal/metrics"
	"paperlens/internal/model"
)

// PaperStore is the persistence capability backing papers. Implemented by
// repository.PaperRepository; tests substitute in-memory fakes.
type PaperStore interface {
	Create(paper *model.Paper) error
	List() ([]model.Paper, error)
	GetByID(id uint) (*model.Paper, error)
	DeleteByID(id uint) (bool, error)
}

// Generator is the text-generation capability. Implemented by ai.Generator.
type Generator interface {
	Model() string
	Summarize(ctx context.Context, text string) (string, error)
	DetectBias(ctx context.Context, text string) (string, error)
	AnswerQuestion(ctx context.Context, text, question string) (string, error)
}

// AuditPublisher enqueues completed analyses for asynchronous persistence.
type AuditPublisher interface {
	Publish(ctx context.Context, record model.AnalysisRecord) error
}

// AuditStore reads and cleans up persisted analysis audit rows.
type AuditStore interface {
	ListByPaperID(paperID uint) ([]model.AnalysisRecord, error)
	DeleteByPaperID(paperID uint) error
}

// BiasCache holds bias analysis text per paper between requests.
type BiasCache interface {
	Get(ctx context.Context, paperID uint) (string, bool, error)
	Set(ctx context.Context, paperID uint, analysis string) error
	Delete(ctx context.Context, paperID uint) error
}

type PaperService struct {
	store     PaperStore
	generator Generator
	publisher AuditPublisher
	audit     AuditStore
	biasCache BiasCache
	logger    *zap.Logger
}

func NewPaperService(
	store PaperStore,
	generator Generator,
	publisher AuditPublisher,
	audit AuditStore,
	biasCache BiasCache,
	logger *zap.Logger,
) *PaperService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaperService{
		store:     store,
		generator: generator,
		publisher: publisher,
		audit:     audit,
		biasCache: biasCache,
		logger:    logger,
	}
}

type UploadInput struct {
	Title    string
	FullText string
}

// Upload summarizes the text first, then inserts the row. A failed summary
// persists nothing; a failed insert discards the summary. There is no state
// to roll back because nothing is written before the single insert.
func (s *PaperService) Upload(ctx context.Context, input UploadInput) (*model.Paper, error) {
	fullText := strings.TrimSpace(input.FullText)
	if fullText == "" {
		return nil, ErrInvalidInput
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Untitled"
	}

	metrics.GeneratorCalls.WithLabelValues(model.AnalysisKindSummary).Inc()
	summary, err := s.generator.Summarize(ctx, fullText)
	if err != nil {
		metrics.GeneratorFailures.WithLabelValues(model.AnalysisKindSummary).Inc()
		s.logger.Error("summarize on upload failed", zap.String("title", title), zap.Error(err))
		return nil, err
	}

	paper := &model.Paper{
		Title:    title,
		FullText: fullText,
		Summary:  summary,
	}
	if err := s.store.Create(paper); err != nil {
		s.logger.Error("store paper failed", zap.String("title", title), zap.Error(err))
		return nil, err
	}
	metrics.PapersUploaded.Inc()

	s.publishAudit(ctx, model.AnalysisRecord{
		PaperID: paper.ID,
		Kind:    model.AnalysisKindSummary,
		Output:  summary,
		Model:   s.generator.Model(),
	})

	return paper, nil
}

func (s *PaperService) List(ctx context.Context) ([]model.Paper, error) {
	papers, err := s.store.List()
	if err != nil {
		s.logger.Error("list papers failed", zap.Error(err))
		return nil, err
	}
	return papers, nil
}

func (s *PaperService) Get(ctx context.Context, id uint) (*model.Paper, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	paper, err := s.store.GetByID(id)
	if err != nil {
		s.logger.Error("get paper failed", zap.Uint("paper_id", id), zap.Error(err))
		return nil, err
	}
	if paper == nil {
		return nil, ErrPaperNotFound
	}
	return paper, nil
}

// Delete removes the store row; cached bias text and audit rows are cleaned
// up best effort afterwards.
func (s *PaperService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}
	deleted, err := s.store.DeleteByID(id)
	if err != nil {
		s.logger.Error("delete paper failed", zap.Uint("paper_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrPaperNotFound
	}

	if s.biasCache != nil {
		if err := s.biasCache.Delete(ctx, id); err != nil {
			s.logger.Warn("drop cached bias analysis failed", zap.Uint("paper_id", id), zap.Error(err))
		}
	}
	if s.audit != nil {
		if err := s.audit.DeleteByPaperID(id); err != nil {
			s.logger.Warn("delete analysis records failed", zap.Uint("paper_id", id), zap.Error(err))
		}
	}
	return nil
}

func (s *PaperService) publishAudit(ctx context.Context, record model.AnalysisRecord) {
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
