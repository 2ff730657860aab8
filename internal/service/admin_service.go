package service

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"fmt"
)

// Page 分页列表
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// AdminService 管理员的列表查询，每次查询都写审计
type AdminService struct {
	UserRepo   *repository.UserRepository
	BadgeRepo  *repository.BadgeRepository
	ActionRepo *repository.AdminActionRepository
	Audit      *AuditService
}

func NewAdminService(
	userRepo *repository.UserRepository,
	badgeRepo *repository.BadgeRepository,
	actionRepo *repository.AdminActionRepository,
	audit *AuditService,
) *AdminService {
	return &AdminService{
		UserRepo:   userRepo,
		BadgeRepo:  badgeRepo,
		ActionRepo: actionRepo,
		Audit:      audit,
	}
}

func pageDetails(page, size int) string {
	return fmt.Sprintf("page=%d size=%d", page, size)
}

func (s *AdminService) ListUsers(admin *model.User, page, size int) (*Page[model.User], error) {
	users, total, err := s.UserRepo.List(page, size)
	if err != nil {
		return nil, err
	}
	if err := s.Audit.Record(admin, model.ActionViewUsers, "", pageDetails(page, size)); err != nil {
		return nil, err
	}
	return &Page[model.User]{Items: nonNil(users), Total: total, Page: page, PageSize: size}, nil
}

func (s *AdminService) ListBadges(admin *model.User, page, size int) (*Page[model.BadgeGeneration], error) {
	badges, total, err := s.BadgeRepo.List(page, size)
	if err != nil {
		return nil, err
	}
	if err := s.Audit.Record(admin, model.ActionViewBadges, "", pageDetails(page, size)); err != nil {
		return nil, err
	}
	return &Page[model.BadgeGeneration]{Items: nonNil(badges), Total: total, Page: page, PageSize: size}, nil
}

// ListActions 审计记录先写入再查询，本次查看也会出现在结果中
func (s *AdminService) ListActions(admin *model.User, page, size int) (*Page[model.AdminAction], error) {
	if err := s.Audit.Record(admin, model.ActionViewActions, "", pageDetails(page, size)); err != nil {
		return nil, err
	}
	actions, total, err := s.ActionRepo.List(page, size)
	if err != nil {
		return nil, err
	}
	return &Page[model.AdminAction]{Items: nonNil(actions), Total: total, Page: page, PageSize: size}, nil
}
