package repository

import (
	"fmt"

	"gorm.io/gorm"

	"paperlens/internal/model"
)

type AnalysisRecordRepository struct {
	db *gorm.DB
}

func NewAnalysisRecordRepository(db *gorm.DB) *AnalysisRecordRepository {
	return &AnalysisRecordRepository{db: db}
}

func (r *AnalysisRecordRepository) Create(record *model.AnalysisRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("create analysis record failed: %w", err)
	}
	return nil
}

func (r *AnalysisRecordRepository) ListByPaperID(paperID uint) ([]model.AnalysisRecord, error) {
	var list []model.AnalysisRecord
	if err := r.db.
		Where("paper_id = ?", paperID).
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list analysis records failed: %w", err)
	}
	return list, nil
}

// DeleteByPaperID removes audit rows for a deleted paper.
func (r *AnalysisRecordRepository) DeleteByPaperID(paperID uint) error {
	if err := r.db.Where("paper_id = ?", paperID).Delete(&model.AnalysisRecord{}).Error; err != nil {
		return fmt.Errorf("delete analysis records failed: %w", err)
	}
	return nil
}
