package service

import (
	"badge_studio_backend/internal/config"
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"fmt"
	"sort"
	"time"
)

const (
	recentActivityLimit     = 20
	topLearnersLimit        = 10
	topPlatformsLimit       = 10
	skillsByDepartmentLimit = 20
	skillTrendsLimit        = 20
)

// AnalyticsService 管理后台报表，每次请求都实时聚合
type AnalyticsService struct {
	AnalyticsRepo *repository.AnalyticsRepository
	Audit         *AuditService
	Cfg           config.AnalyticsConfig
	Now           func() time.Time
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository, audit *AuditService, cfg config.AnalyticsConfig) *AnalyticsService {
	return &AnalyticsService{
		AnalyticsRepo: analyticsRepo,
		Audit:         audit,
		Cfg:           cfg,
		Now:           time.Now,
	}
}

func (s *AnalyticsService) currentMonth() string {
	return model.MonthBucket(s.Now())
}

// BuildAdminStats 不写审计，供 AdminStats 和测试使用
func (s *AnalyticsService) BuildAdminStats() (*model.AdminStats, error) {
	counts, err := s.AnalyticsRepo.GetBasicCounts()
	if err != nil {
		return nil, err
	}
	recent, err := s.AnalyticsRepo.GetRecentActivity(recentActivityLimit)
	if err != nil {
		return nil, err
	}
	learners, err := s.AnalyticsRepo.GetTopLearners(topLearnersLimit)
	if err != nil {
		return nil, err
	}

	month := s.currentMonth()
	hours, err := s.AnalyticsRepo.GetMonthlyHours(month)
	if err != nil {
		return nil, err
	}
	meeting, err := s.AnalyticsRepo.CountUsersMeetingTarget(month, s.Cfg.MonthlyTargetHours)
	if err != nil {
		return nil, err
	}
	platforms, err := s.AnalyticsRepo.GetTopPlatforms(topPlatformsLimit)
	if err != nil {
		return nil, err
	}
	skills, err := s.AnalyticsRepo.GetSkillsByDepartment(skillsByDepartmentLimit)
	if err != nil {
		return nil, err
	}

	return &model.AdminStats{
		Counts:                 *counts,
		RecentActivity:         nonNil(recent),
		TopLearners:            nonNil(learners),
		CurrentMonth:           month,
		MonthlyLearningHours:   hours,
		MonthlyTargetHours:     s.Cfg.MonthlyTargetHours,
		EmployeesMeetingTarget: meeting,
		TopLearningPlatforms:   nonNil(platforms),
		SkillsByDepartment:     nonNil(skills),
	}, nil
}

func (s *AnalyticsService) AdminStats(admin *model.User) (*model.AdminStats, error) {
	stats, err := s.BuildAdminStats()
	if err != nil {
		return nil, err
	}
	if err := s.Audit.Record(admin, model.ActionViewStats, "", ""); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *AnalyticsService) BuildLearningAnalytics() (*model.LearningAnalytics, error) {
	departments, err := s.AnalyticsRepo.GetDepartmentHours()
	if err != nil {
		return nil, err
	}
	rows, err := s.AnalyticsRepo.GetSkillMonthCounts()
	if err != nil {
		return nil, err
	}
	platforms, err := s.AnalyticsRepo.GetTopPlatforms(topPlatformsLimit)
	if err != nil {
		return nil, err
	}

	return &model.LearningAnalytics{
		CurrentMonth:         s.currentMonth(),
		DepartmentHours:      nonNil(departments),
		SkillTrends:          BuildSkillTrends(rows, skillTrendsLimit),
		TopLearningPlatforms: nonNil(platforms),
	}, nil
}

func (s *AnalyticsService) LearningAnalytics(admin *model.User) (*model.LearningAnalytics, error) {
	analytics, err := s.BuildLearningAnalytics()
	if err != nil {
		return nil, err
	}
	details := fmt.Sprintf("departments=%d skills=%d", len(analytics.DepartmentHours), len(analytics.SkillTrends))
	if err := s.Audit.Record(admin, model.ActionViewLearningAnalytics, "", details); err != nil {
		return nil, err
	}
	return analytics, nil
}

// BuildSkillTrends 把 (技能, 月份) 计数按技能归并，月份升序；按总数降序、技能升序取前 limit 个
func BuildSkillTrends(rows []repository.SkillMonthCount, limit int) []model.SkillTrend {
	index := make(map[string]int)
	trends := make([]model.SkillTrend, 0)

	for _, row := range rows {
		i, ok := index[row.Skill]
		if !ok {
			i = len(trends)
			index[row.Skill] = i
			trends = append(trends, model.SkillTrend{Skill: row.Skill, Months: []model.MonthCount{}})
		}
		trends[i].Total += row.Count
		trends[i].Months = append(trends[i].Months, model.MonthCount{Month: row.Month, Count: row.Count})
	}

	for i := range trends {
		months := trends[i].Months
		sort.Slice(months, func(a, b int) bool { return months[a].Month < months[b].Month })
	}
	sort.Slice(trends, func(a, b int) bool {
		if trends[a].Total != trends[b].Total {
			return trends[a].Total > trends[b].Total
		}
		return trends[a].Skill < trends[b].Skill
	})

	if len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
