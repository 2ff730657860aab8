package repository

import (
	"badge_studio_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) Create(resource *model.Resource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) FindByID(id uint) (*model.Resource, error) {
	var resource model.Resource
	err := r.DB.First(&resource, id).Error
	return &resource, err
}

func (r *ResourceRepository) ExistsByURL(url string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Resource{}).Where("url = ?", url).Count(&count).Error
	return count > 0, err
}

// FindApproved 普通用户可见的资源列表，category 为空时不过滤
func (r *ResourceRepository) FindApproved(category string) ([]model.Resource, error) {
	var resources []model.Resource
	db := r.DB.Where("approved = ?", true)
	if category != "" {
		db = db.Where("category = ?", category)
	}
	err := db.Order("approved_at DESC, id DESC").Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) FindPending() ([]model.Resource, error) {
	var resources []model.Resource
	err := r.DB.Where("approved = ?", false).Order("created_at ASC, id ASC").Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) Approve(id, adminID uint, at time.Time) error {
	return r.DB.Model(&model.Resource{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"approved":    true,
			"approved_by": adminID,
			"approved_at": at,
		}).Error
}
