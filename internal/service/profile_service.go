package service

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/util"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{ProfileRepo: profileRepo}
}

// ProfileRequest 创建和更新共用
type ProfileRequest struct {
	Department string     `json:"department" binding:"max=100"`
	JobTitle   string     `json:"job_title" binding:"max=100"`
	JoinDate   *time.Time `json:"join_date"`
	Skills     []string   `json:"skills"`
	Interests  []string   `json:"interests"`
	Bio        string     `json:"bio"`
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (req ProfileRequest) apply(profile *model.EmployeeProfile) {
	profile.Department = strings.TrimSpace(req.Department)
	profile.JobTitle = strings.TrimSpace(req.JobTitle)
	profile.JoinDate = req.JoinDate
	profile.Skills = model.EncodeStringList(cleanList(req.Skills))
	profile.Interests = model.EncodeStringList(cleanList(req.Interests))
	profile.Bio = req.Bio
}

func (s *ProfileService) Create(userID uint, req ProfileRequest) (*model.EmployeeProfile, error) {
	_, err := s.ProfileRepo.FindByUserID(userID)
	if err == nil {
		return nil, util.ErrProfileExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile := &model.EmployeeProfile{UserID: userID}
	req.apply(profile)
	if err := s.ProfileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Get(userID uint) (*model.EmployeeProfile, error) {
	profile, err := s.ProfileRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Update(userID uint, req ProfileRequest) (*model.EmployeeProfile, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	req.apply(profile)
	if err := s.ProfileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
