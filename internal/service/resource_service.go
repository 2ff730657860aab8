package service

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/util"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
	Audit        *AuditService
	Now          func() time.Time
}

func NewResourceService(resourceRepo *repository.ResourceRepository, audit *AuditService) *ResourceService {
	return &ResourceService{
		ResourceRepo: resourceRepo,
		Audit:        audit,
		Now:          time.Now,
	}
}

// ListApproved 普通用户只能看到已审核的资源
func (s *ResourceService) ListApproved(category string) ([]model.Resource, error) {
	return s.ResourceRepo.FindApproved(category)
}

func (s *ResourceService) ListPending(admin *model.User) ([]model.Resource, error) {
	resources, err := s.ResourceRepo.FindPending()
	if err != nil {
		return nil, err
	}
	if err := s.Audit.Record(admin, model.ActionViewPendingResources, "", fmt.Sprintf("count=%d", len(resources))); err != nil {
		return nil, err
	}
	return resources, nil
}

// Approve 重复审核保持已审核状态并刷新审核人和时间
func (s *ResourceService) Approve(admin *model.User, id uint) (*model.Resource, error) {
	if _, err := s.ResourceRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResourceNotFound
		}
		return nil, err
	}

	if err := s.ResourceRepo.Approve(id, admin.ID, s.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.Audit.Record(admin, model.ActionApproveResource, strconv.FormatUint(uint64(id), 10), ""); err != nil {
		return nil, err
	}
	return s.ResourceRepo.FindByID(id)
}

// SuggestFromMilestone 链接未登记过时创建一条待审核资源
func (s *ResourceService) SuggestFromMilestone(userID uint, milestone model.Milestone) error {
	exists, err := s.ResourceRepo.ExistsByURL(milestone.SourceURL)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.ResourceRepo.Create(&model.Resource{
		Title:       milestone.Title,
		URL:         milestone.SourceURL,
		Category:    milestone.Source,
		Source:      milestone.Source,
		Description: milestone.WhatLearned,
		SuggestedBy: userID,
	})
}
