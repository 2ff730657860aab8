package service

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/util"
	"badge_studio_backend/pkg/logger"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type MilestoneService struct {
	MilestoneRepo *repository.MilestoneRepository
	UserRepo      *repository.UserRepository
	Goals         *GoalService
	Resources     *ResourceService
	Now           func() time.Time

	wg sync.WaitGroup
}

func NewMilestoneService(
	milestoneRepo *repository.MilestoneRepository,
	userRepo *repository.UserRepository,
	goals *GoalService,
	resources *ResourceService,
) *MilestoneService {
	return &MilestoneService{
		MilestoneRepo: milestoneRepo,
		UserRepo:      userRepo,
		Goals:         goals,
		Resources:     resources,
		Now:           time.Now,
	}
}

type CreateMilestoneRequest struct {
	GoalID        *uint   `json:"goal_id"`
	Title         string  `json:"title" binding:"required,max=255"`
	WhatLearned   string  `json:"what_learned"`
	Source        string  `json:"source" binding:"max=100"`
	SourceURL     string  `json:"source_url" binding:"max=512"`
	HoursInvested float64 `json:"hours_invested"`
}

// Create 记录里程碑。月份桶取服务器当前 UTC 月份，客户端不能指定
func (s *MilestoneService) Create(user *model.User, req CreateMilestoneRequest) (*model.Milestone, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrInvalidInput)
	}
	if req.HoursInvested < 0 {
		return nil, fmt.Errorf("%w: hours_invested must not be negative", util.ErrInvalidInput)
	}
	if req.GoalID != nil {
		if _, err := s.Goals.Get(user.ID, *req.GoalID); err != nil {
			return nil, err
		}
	}

	milestone := &model.Milestone{
		UserID:        user.ID,
		UserName:      user.Name,
		GoalID:        req.GoalID,
		Title:         title,
		WhatLearned:   strings.TrimSpace(req.WhatLearned),
		Source:        strings.TrimSpace(req.Source),
		SourceURL:     strings.TrimSpace(req.SourceURL),
		HoursInvested: req.HoursInvested,
		MonthBucket:   model.MonthBucket(s.Now()),
	}
	if err := s.MilestoneRepo.Create(milestone); err != nil {
		return nil, err
	}

	if err := s.UserRepo.IncrementMilestones(user.ID); err != nil {
		logger.Log.Error("Failed to increment milestone counter", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	if milestone.SourceURL != "" && s.Resources != nil {
		s.suggestResource(user.ID, *milestone)
	}

	return milestone, nil
}

// suggestResource 后台把里程碑的来源链接登记为待审核资源，失败只记日志，不影响里程碑本身
func (s *MilestoneService) suggestResource(userID uint, milestone model.Milestone) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Resources.SuggestFromMilestone(userID, milestone); err != nil {
			logger.Log.Warn("Resource suggestion failed",
				zap.Uint("milestone_id", milestone.ID),
				zap.String("source_url", milestone.SourceURL),
				zap.Error(err))
		}
	}()
}

// Wait 等待后台资源登记完成
func (s *MilestoneService) Wait() {
	s.wg.Wait()
}

// List month 为空时返回全部，否则必须是 YYYY-MM
func (s *MilestoneService) List(userID uint, month string) ([]model.Milestone, error) {
	if month != "" {
		if _, err := time.Parse(model.MonthBucketFormat, month); err != nil {
			return nil, fmt.Errorf("%w: month must be YYYY-MM", util.ErrInvalidInput)
		}
	}
	return s.MilestoneRepo.FindByUserID(userID, month)
}
