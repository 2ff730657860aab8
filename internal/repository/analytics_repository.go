package repository

import (
	"badge_studio_backend/internal/model"

	"gorm.io/gorm"
)

// AnalyticsRepository 管理后台统计的聚合查询，每次请求实时计算
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func (r *AnalyticsRepository) GetBasicCounts() (*model.BasicCounts, error) {
	var counts model.BasicCounts

	queries := []struct {
		db  *gorm.DB
		dst *int64
	}{
		{r.DB.Model(&model.User{}), &counts.TotalUsers},
		{r.DB.Model(&model.User{}).Where("role = ?", model.RoleAdmin), &counts.TotalAdmins},
		{r.DB.Model(&model.BadgeGeneration{}), &counts.TotalBadgeGenerations},
		{r.DB.Model(&model.EmployeeProfile{}), &counts.TotalProfiles},
		{r.DB.Model(&model.LearningGoal{}), &counts.TotalGoals},
		{r.DB.Model(&model.Milestone{}), &counts.TotalMilestones},
		{r.DB.Model(&model.Resource{}), &counts.TotalResources},
		{r.DB.Model(&model.Resource{}).Where("approved = ?", false), &counts.PendingResources},
	}

	for _, q := range queries {
		if err := q.db.Count(q.dst).Error; err != nil {
			return nil, err
		}
	}
	return &counts, nil
}

// GetRecentActivity 最近 limit 条徽章生成记录，最新在前
func (r *AnalyticsRepository) GetRecentActivity(limit int) ([]model.RecentActivity, error) {
	var items []model.RecentActivity
	err := r.DB.Model(&model.BadgeGeneration{}).
		Select("id, user_name, employee_name, learning, difficulty, created_at").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}

// GetTopLearners 按生成者分组计数，次数相同按名字升序
func (r *AnalyticsRepository) GetTopLearners(limit int) ([]model.LearnerCount, error) {
	var items []model.LearnerCount
	err := r.DB.Model(&model.BadgeGeneration{}).
		Select("user_name, COUNT(*) AS count").
		Group("user_name").
		Order("COUNT(*) DESC, user_name ASC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}

// GetMonthlyHours 只统计 month_bucket 等于 month 的里程碑
func (r *AnalyticsRepository) GetMonthlyHours(month string) (float64, error) {
	var total float64
	err := r.DB.Model(&model.Milestone{}).
		Select("COALESCE(SUM(hours_invested), 0)").
		Where("month_bucket = ?", month).
		Scan(&total).Error
	return total, err
}

// CountUsersMeetingTarget 当月累计学时不少于 target 的用户数
func (r *AnalyticsRepository) CountUsersMeetingTarget(month string, target float64) (int64, error) {
	sub := r.DB.Model(&model.Milestone{}).
		Select("user_id").
		Where("month_bucket = ?", month).
		Group("user_id").
		Having("SUM(hours_invested) >= ?", target)

	var count int64
	err := r.DB.Table("(?) AS qualified", sub).Count(&count).Error
	return count, err
}

// GetTopPlatforms 按来源原样分组计数（空来源也是一组），次数相同按来源升序
func (r *AnalyticsRepository) GetTopPlatforms(limit int) ([]model.PlatformCount, error) {
	var items []model.PlatformCount
	err := r.DB.Model(&model.Milestone{}).
		Select("source, COUNT(*) AS count").
		Group("source").
		Order("COUNT(*) DESC, source ASC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}

// GetSkillsByDepartment 按 profile ID 升序展开 (部门, 技能)，取前 limit 个
func (r *AnalyticsRepository) GetSkillsByDepartment(limit int) ([]model.DepartmentSkill, error) {
	var profiles []model.EmployeeProfile
	if err := r.DB.Select("id, department, skills").Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}

	pairs := make([]model.DepartmentSkill, 0, limit)
	for _, p := range profiles {
		for _, skill := range p.SkillList() {
			if len(pairs) >= limit {
				return pairs, nil
			}
			pairs = append(pairs, model.DepartmentSkill{Department: p.Department, Skill: skill})
		}
	}
	return pairs, nil
}

// GetDepartmentHours 里程碑按学习者档案的部门汇总，没有档案的里程碑不计入
func (r *AnalyticsRepository) GetDepartmentHours() ([]model.DepartmentHours, error) {
	var items []model.DepartmentHours
	err := r.DB.Model(&model.Milestone{}).
		Select("employee_profiles.department AS department, " +
			"COALESCE(SUM(milestones.hours_invested), 0) AS total_hours, " +
			"COUNT(milestones.id) AS milestone_count").
		Joins("JOIN employee_profiles ON employee_profiles.user_id = milestones.user_id AND employee_profiles.deleted_at IS NULL").
		Group("employee_profiles.department").
		Order("total_hours DESC, department ASC").
		Scan(&items).Error
	return items, err
}

// SkillMonthCount 技能趋势的中间结果
type SkillMonthCount struct {
	Skill string
	Month string
	Count int64
}

// GetSkillMonthCounts 按 (规范化学习内容, 月份) 分组计数
func (r *AnalyticsRepository) GetSkillMonthCounts() ([]SkillMonthCount, error) {
	var rows []SkillMonthCount
	err := r.DB.Model(&model.Milestone{}).
		Select("LOWER(TRIM(what_learned)) AS skill, month_bucket AS month, COUNT(*) AS count").
		Where("TRIM(what_learned) <> ''").
		Group("LOWER(TRIM(what_learned)), month_bucket").
		Scan(&rows).Error
	return rows, err
}
