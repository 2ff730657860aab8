package service

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
)

// AuditService 写入管理员操作审计
type AuditService struct {
	ActionRepo *repository.AdminActionRepository
}

func NewAuditService(actionRepo *repository.AdminActionRepository) *AuditService {
	return &AuditService{ActionRepo: actionRepo}
}

func (s *AuditService) Record(admin *model.User, action, target, details string) error {
	return s.ActionRepo.Create(&model.AdminAction{
		AdminID:   admin.ID,
		AdminName: admin.Name,
		Action:    action,
		Target:    target,
		Details:   details,
	})
}
