package model

import "time"

type BasicCounts struct {
	TotalUsers            int64 `json:"total_users"`
	TotalAdmins           int64 `json:"total_admins"`
	TotalBadgeGenerations int64 `json:"total_badge_generations"`
	TotalProfiles         int64 `json:"total_profiles"`
	TotalGoals            int64 `json:"total_goals"`
	TotalMilestones       int64 `json:"total_milestones"`
	TotalResources        int64 `json:"total_resources"`
	PendingResources      int64 `json:"pending_resources"`
}

// RecentActivity 最近徽章生成记录的投影
type RecentActivity struct {
	ID           uint       `json:"id"`
	UserName     string     `json:"user_name"`
	EmployeeName string     `json:"employee_name"`
	Learning     string     `json:"learning"`
	Difficulty   Difficulty `json:"difficulty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type LearnerCount struct {
	UserName string `json:"user_name"`
	Count    int64  `json:"count"`
}

type PlatformCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

type DepartmentSkill struct {
	Department string `json:"department"`
	Skill      string `json:"skill"`
}

type DepartmentHours struct {
	Department     string  `json:"department"`
	TotalHours     float64 `json:"total_hours"`
	MilestoneCount int64   `json:"milestone_count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type SkillTrend struct {
	Skill  string       `json:"skill"`
	Total  int64        `json:"total"`
	Months []MonthCount `json:"months"`
}

type AdminStats struct {
	Counts                 BasicCounts       `json:"counts"`
	RecentActivity         []RecentActivity  `json:"recent_activity"`
	TopLearners            []LearnerCount    `json:"top_learners"`
	CurrentMonth           string            `json:"current_month"`
	MonthlyLearningHours   float64           `json:"monthly_learning_hours"`
	MonthlyTargetHours     float64           `json:"monthly_target_hours"`
	EmployeesMeetingTarget int64             `json:"employees_meeting_target"`
	TopLearningPlatforms   []PlatformCount   `json:"top_learning_platforms"`
	SkillsByDepartment     []DepartmentSkill `json:"skills_by_department"`
}

type LearningAnalytics struct {
	CurrentMonth         string            `json:"current_month"`
	DepartmentHours      []DepartmentHours `json:"department_hours"`
	SkillTrends          []SkillTrend      `json:"skill_trends"`
	TopLearningPlatforms []PlatformCount   `json:"top_learning_platforms"`
}
