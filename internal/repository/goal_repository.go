package repository

import (
	"badge_studio_backend/internal/model"

	"gorm.io/gorm"
)

// GoalRepository 处理学习目标的数据访问
type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

// Create 创建新的学习目标
func (r *GoalRepository) Create(goal *model.LearningGoal) error {
	return r.DB.Create(goal).Error
}

// Update 更新学习目标
func (r *GoalRepository) Update(goal *model.LearningGoal) error {
	return r.DB.Model(&model.LearningGoal{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"title":        goal.Title,
			"description":  goal.Description,
			"category":     goal.Category,
			"status":       goal.Status,
			"target_hours": goal.TargetHours,
			"target_date":  goal.TargetDate,
		}).Error
}

// FindByUserID 获取用户的学习目标，status 为空时返回全部
func (r *GoalRepository) FindByUserID(userID uint, status model.GoalStatus) ([]model.LearningGoal, error) {
	var goals []model.LearningGoal
	db := r.DB.Where("user_id = ?", userID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("created_at DESC, id DESC").Find(&goals).Error
	return goals, err
}

// FindByIDAndUserID 根据ID和用户ID查找学习目标
func (r *GoalRepository) FindByIDAndUserID(id, userID uint) (*model.LearningGoal, error) {
	var goal model.LearningGoal
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	return &goal, err
}
