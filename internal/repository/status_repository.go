package repository

import (
	"badge_studio_backend/internal/model"

	"gorm.io/gorm"
)

type StatusRepository struct {
	DB *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{DB: db}
}

func (r *StatusRepository) Create(check *model.StatusCheck) error {
	return r.DB.Create(check).Error
}

func (r *StatusRepository) List(limit int) ([]model.StatusCheck, error) {
	var checks []model.StatusCheck
	err := r.DB.Order("timestamp DESC").Limit(limit).Find(&checks).Error
	return checks, err
}
