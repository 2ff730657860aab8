package service

import (
	"badge_studio_backend/internal/config"
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/util"
	"badge_studio_backend/pkg/logger"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Audit    *AuditService
	Index    repository.SessionIndex // 可为 nil
	Cfg      config.AuthConfig
	Now      func() time.Time
}

func NewAuthService(userRepo *repository.UserRepository, audit *AuditService, index repository.SessionIndex, cfg config.AuthConfig) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Audit:    audit,
		Index:    index,
		Cfg:      cfg,
		Now:      time.Now,
	}
}

// RoleForName 只有与配置的管理员名字完全一致（区分大小写）时才是管理员
func (s *AuthService) RoleForName(name string) model.UserRole {
	if name == s.Cfg.AdminName {
		return model.RoleAdmin
	}
	return model.RoleUser
}

// Login 按名字登录，不存在则创建。每次登录都生成新令牌并覆盖旧令牌。
// 名字原样保存和比较，带空白的名字是另一个用户
func (s *AuthService) Login(ctx context.Context, name string) (*model.User, string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, "", fmt.Errorf("%w: name is required", util.ErrInvalidInput)
	}

	now := s.Now().UTC()

	user, err := s.UserRepo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &model.User{
			Name:       name,
			Role:       s.RoleForName(name),
			LastActive: now,
		}
		if err := s.UserRepo.Create(user); err != nil {
			return nil, "", err
		}
	} else if err != nil {
		return nil, "", err
	}

	token, err := util.GenerateSessionToken()
	if err != nil {
		return nil, "", err
	}

	previous := user.SessionToken
	if err := s.UserRepo.SetSession(user.ID, &token, now); err != nil {
		return nil, "", err
	}
	user.SessionToken = &token
	user.LastActive = now

	if s.Index != nil {
		if previous != nil {
			if err := s.Index.Remove(ctx, *previous); err != nil {
				logger.Log.Warn("Failed to remove previous session from index", zap.Error(err))
			}
		}
		if err := s.Index.Store(ctx, token, user.ID); err != nil {
			logger.Log.Warn("Failed to index session", zap.Error(err))
		}
	}

	if user.IsAdmin() {
		if err := s.Audit.Record(user, model.ActionAdminLogin, user.Name, ""); err != nil {
			logger.Log.Error("Failed to record admin login", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}

	return user, token, nil
}

// Authenticate 根据令牌查找用户，数据库中的当前令牌为准
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, util.ErrUnauthenticated
	}

	if s.Index != nil {
		if id, ok, err := s.Index.Lookup(ctx, token); err != nil {
			logger.Log.Warn("Session index lookup failed", zap.Error(err))
		} else if ok {
			user, err := s.UserRepo.FindByID(id)
			if err == nil && user.SessionToken != nil && *user.SessionToken == token {
				return user, nil
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
	}

	user, err := s.UserRepo.FindBySessionToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if s.Index != nil {
			_ = s.Index.Remove(ctx, token)
		}
		return nil, util.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	if s.Index != nil {
		if err := s.Index.Store(ctx, token, user.ID); err != nil {
			logger.Log.Warn("Failed to index session", zap.Error(err))
		}
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, user *model.User) error {
	if err := s.UserRepo.SetSession(user.ID, nil, s.Now().UTC()); err != nil {
		return err
	}
	if s.Index != nil && user.SessionToken != nil {
		if err := s.Index.Remove(ctx, *user.SessionToken); err != nil {
			logger.Log.Warn("Failed to remove session from index", zap.Error(err))
		}
	}
	user.SessionToken = nil
	return nil
}
