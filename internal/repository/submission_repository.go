package repository

import (
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindAllWithForms() ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

// FindAllWithForms returns submissions newest first, each with its form
// preloaded so the responses view can show the form's title.
func (r *submissionRepository) FindAllWithForms() ([]model.Submission, error) {
	var submissions []model.Submission
	if err := r.db.Preload("Form").Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
