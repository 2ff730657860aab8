package repository

import (
	"badge_studio_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

// Create 同时累加用户的徽章计数
func (r *BadgeRepository) Create(badge *model.BadgeGeneration) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(badge).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", badge.UserID).
			Update("badges_generated", gorm.Expr("badges_generated + 1")).
			Error
	})
}

func (r *BadgeRepository) List(page, pageSize int) ([]model.BadgeGeneration, int64, error) {
	var badges []model.BadgeGeneration
	var total int64

	if err := r.DB.Model(&model.BadgeGeneration{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&badges).Error
	return badges, total, err
}

func (r *BadgeRepository) FindByUserID(userID uint) ([]model.BadgeGeneration, error) {
	var badges []model.BadgeGeneration
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&badges).Error
	return badges, err
}
