package repository

import (
	"badge_studio_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) Create(profile *model.EmployeeProfile) error {
	return r.DB.Create(profile).Error
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.EmployeeProfile, error) {
	var profile model.EmployeeProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *ProfileRepository) Update(profile *model.EmployeeProfile) error {
	return r.DB.Model(&model.EmployeeProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"department": profile.Department,
			"job_title":  profile.JobTitle,
			"join_date":  profile.JoinDate,
			"skills":     profile.Skills,
			"interests":  profile.Interests,
			"bio":        profile.Bio,
		}).Error
}

// FindByUserIDs 按用户ID索引
func (r *ProfileRepository) FindByUserIDs(userIDs []uint) (map[uint]model.EmployeeProfile, error) {
	result := make(map[uint]model.EmployeeProfile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var profiles []model.EmployeeProfile
	if err := r.DB.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		result[p.UserID] = p
	}
	return result, nil
}
