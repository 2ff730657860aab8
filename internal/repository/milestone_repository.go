package repository

import (
	"badge_studio_backend/internal/model"

	"gorm.io/gorm"
)

type MilestoneRepository struct {
	DB *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{DB: db}
}

func (r *MilestoneRepository) Create(milestone *model.Milestone) error {
	return r.DB.Create(milestone).Error
}

// FindByUserID month 为空时返回全部月份
func (r *MilestoneRepository) FindByUserID(userID uint, month string) ([]model.Milestone, error) {
	var milestones []model.Milestone
	db := r.DB.Where("user_id = ?", userID)
	if month != "" {
		db = db.Where("month_bucket = ?", month)
	}
	err := db.Order("created_at DESC, id DESC").Find(&milestones).Error
	return milestones, err
}
