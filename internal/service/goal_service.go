package service

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/util"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// GoalService 处理学习目标的业务逻辑
type GoalService struct {
	GoalRepo *repository.GoalRepository
}

func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{GoalRepo: goalRepo}
}

// CreateGoalRequest 创建学习目标的请求结构
type CreateGoalRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=1000"`
	Category    string     `json:"category" binding:"max=100"`
	TargetHours float64    `json:"target_hours" binding:"gte=0"`
	TargetDate  *time.Time `json:"target_date"`
}

// UpdateGoalRequest 只更新传入的字段
type UpdateGoalRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	Category    *string    `json:"category" binding:"omitempty,max=100"`
	Status      *string    `json:"status"`
	TargetHours *float64   `json:"target_hours" binding:"omitempty,gte=0"`
	TargetDate  *time.Time `json:"target_date"`
}

func (s *GoalService) Create(userID uint, req CreateGoalRequest) (*model.LearningGoal, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrInvalidInput)
	}

	goal := &model.LearningGoal{
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		Category:    strings.TrimSpace(req.Category),
		Status:      model.GoalActive,
		TargetHours: req.TargetHours,
		TargetDate:  req.TargetDate,
	}
	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// List status 为空时返回全部
func (s *GoalService) List(userID uint, status string) ([]model.LearningGoal, error) {
	if status != "" && !model.GoalStatus(status).Valid() {
		return nil, fmt.Errorf("%w: unknown goal status %q", util.ErrInvalidInput, status)
	}
	return s.GoalRepo.FindByUserID(userID, model.GoalStatus(status))
}

// Get 只能读取自己的目标，别人的目标与不存在一样返回 404
func (s *GoalService) Get(userID, goalID uint) (*model.LearningGoal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Update(userID, goalID uint, req UpdateGoalRequest) (*model.LearningGoal, error) {
	goal, err := s.Get(userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", util.ErrInvalidInput)
		}
		goal.Title = title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Category != nil {
		goal.Category = strings.TrimSpace(*req.Category)
	}
	if req.Status != nil {
		status := model.GoalStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown goal status %q", util.ErrInvalidInput, *req.Status)
		}
		goal.Status = status
	}
	if req.TargetHours != nil {
		goal.TargetHours = *req.TargetHours
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}
