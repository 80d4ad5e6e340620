package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"paperlens/internal/model"
)

type PaperRepository struct {
	db *gorm.DB
}

func NewPaperRepository(db *gorm.DB) *PaperRepository {
	return &PaperRepository{db: db}
}

func (r *PaperRepository) Create(paper *model.Paper) error {
	if err := r.db.Create(paper).Error; err != nil {
		return fmt.Errorf("create paper failed: %w", err)
	}
	return nil
}

// List returns all papers ordered by creation time descending. FullText is
// omitted to keep list payloads small; use GetByID for the complete row.
func (r *PaperRepository) List() ([]model.Paper, error) {
	var list []model.Paper
	if err := r.db.
		Select("id", "title", "summary", "created_at").
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list papers failed: %w", err)
	}
	return list, nil
}

func (r *PaperRepository) GetByID(id uint) (*model.Paper, error) {
	var paper model.Paper
	if err := r.db.First(&paper, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paper failed: %w", err)
	}
	return &paper, nil
}

func (r *PaperRepository) DeleteByID(id uint) (bool, error) {
	res := r.db.Delete(&model.Paper{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete paper failed: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
