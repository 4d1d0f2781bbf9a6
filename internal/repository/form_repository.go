package repository

import (
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id string) (*model.Form, error)
	FindAll() ([]model.Form, error)
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id string) (*model.Form, error) {
	var form model.Form
	if err := r.db.First(&form, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindAll() ([]model.Form, error) {
	var forms []model.Form
	if err := r.db.Order("created_at DESC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}
