package service

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/util"
	"badge_studio_backend/pkg/logger"
	"badge_studio_backend/pkg/monitoring"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type GenerateRequest struct {
	EmployeeName string `json:"employeeName" binding:"required"`
	Learning     string `json:"learning" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required"`
}

type GenerateResult struct {
	BadgeURL     string `json:"badgeUrl"`
	LinkedinPost string `json:"linkedinPost"`
}

// BadgeService 串联文案生成、徽章渲染和记录持久化
type BadgeService struct {
	Generator ContentGenerator
	BadgeRepo *repository.BadgeRepository
	Storage   *StorageService
	Now       func() time.Time
}

func NewBadgeService(generator ContentGenerator, badgeRepo *repository.BadgeRepository, storage *StorageService) *BadgeService {
	return &BadgeService{
		Generator: generator,
		BadgeRepo: badgeRepo,
		Storage:   storage,
		Now:       time.Now,
	}
}

func validateGenerateRequest(req *GenerateRequest) error {
	req.EmployeeName = strings.TrimSpace(req.EmployeeName)
	req.Learning = strings.TrimSpace(req.Learning)
	req.Difficulty = strings.TrimSpace(req.Difficulty)
	// 难度不限取值，未知难度由 PaletteFor 回退到第一档
	if req.EmployeeName == "" || req.Learning == "" || req.Difficulty == "" {
		return fmt.Errorf("%w: employeeName, learning and difficulty are required", util.ErrInvalidInput)
	}
	return nil
}

// difficultyLabel 难度可以是任意字符串，指标标签只保留三个已知值
func difficultyLabel(d string) string {
	if model.Difficulty(d).Valid() {
		return d
	}
	return "other"
}

// Generate 生成失败时不写任何记录；生成成功后持久化失败只记录日志，内容照常返回
func (s *BadgeService) Generate(ctx context.Context, user *model.User, req GenerateRequest) (*GenerateResult, error) {
	if err := validateGenerateRequest(&req); err != nil {
		return nil, err
	}

	content, err := s.Generator.Generate(ctx, GenerateInput{
		EmployeeName: req.EmployeeName,
		Learning:     req.Learning,
		Difficulty:   req.Difficulty,
	})
	if err != nil {
		monitoring.BadgeGenerations.WithLabelValues(difficultyLabel(req.Difficulty), "failed").Inc()
		return nil, err
	}

	svg := RenderBadgeSVG(req.EmployeeName, content.BadgeText, req.Difficulty)
	result := &GenerateResult{
		BadgeURL:     BadgeDataURI(svg),
		LinkedinPost: content.LinkedinPost,
	}
	monitoring.BadgeGenerations.WithLabelValues(difficultyLabel(req.Difficulty), "succeeded").Inc()

	record := &model.BadgeGeneration{
		UserID:       user.ID,
		UserName:     user.Name,
		EmployeeName: req.EmployeeName,
		Learning:     req.Learning,
		Difficulty:   model.Difficulty(req.Difficulty),
		BadgeText:    content.BadgeText,
		LinkedinPost: content.LinkedinPost,
	}

	if s.Storage.Enabled() {
		ref, err := s.Storage.ArchiveBadge(ctx, svg, s.Now())
		if err != nil {
			logger.Log.Warn("Failed to archive badge", zap.Uint("user_id", user.ID), zap.Error(err))
		}
		record.BadgeRef = ref
	}

	if err := s.BadgeRepo.Create(record); err != nil {
		logger.Log.Error("Failed to persist badge generation", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return result, nil
}
