package repository

import (
	"badge_studio_backend/internal/model"

	"gorm.io/gorm"
)

type AdminActionRepository struct {
	DB *gorm.DB
}

func NewAdminActionRepository(db *gorm.DB) *AdminActionRepository {
	return &AdminActionRepository{DB: db}
}

func (r *AdminActionRepository) Create(action *model.AdminAction) error {
	return r.DB.Create(action).Error
}

func (r *AdminActionRepository) List(page, pageSize int) ([]model.AdminAction, int64, error) {
	var actions []model.AdminAction
	var total int64

	if err := r.DB.Model(&model.AdminAction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&actions).Error
	return actions, total, err
}
