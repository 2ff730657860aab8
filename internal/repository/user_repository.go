package repository

import (
	"badge_studio_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByName(name string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("name = ?", name).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindBySessionToken(token string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("session_token = ?", token).First(&user).Error
	return &user, err
}

// SetSession 覆盖用户当前会话令牌，token 为 nil 表示登出
func (r *UserRepository) SetSession(userID uint, token *string, lastActive time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"session_token": token,
			"last_active":   lastActive,
		}).Error
}

func (r *UserRepository) IncrementMilestones(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("milestones_logged", gorm.Expr("milestones_logged + 1")).
		Error
}

// FindOthers 除 excludeID 外的全部用户，按名字排序
func (r *UserRepository) FindOthers(excludeID uint) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("id <> ?", excludeID).Order("name ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) List(page, pageSize int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	if err := r.DB.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	return users, total, err
}
