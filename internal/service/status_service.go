package service

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/util"
	"fmt"
	"strings"
	"time"
)

const statusListLimit = 1000

type StatusService struct {
	StatusRepo *repository.StatusRepository
	Now        func() time.Time
}

func NewStatusService(statusRepo *repository.StatusRepository) *StatusService {
	return &StatusService{StatusRepo: statusRepo, Now: time.Now}
}

func (s *StatusService) Create(clientName string) (*model.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, fmt.Errorf("%w: client_name is required", util.ErrInvalidInput)
	}

	check := &model.StatusCheck{
		ClientName: clientName,
		Timestamp:  s.Now().UTC(),
	}
	if err := s.StatusRepo.Create(check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *StatusService) List() ([]model.StatusCheck, error) {
	checks, err := s.StatusRepo.List(statusListLimit)
	if err != nil {
		return nil, err
	}
	return nonNil(checks), nil
}
