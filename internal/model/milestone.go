package model

import "time"

// MonthBucketFormat 月份桶格式 YYYY-MM
const MonthBucketFormat = "2006-01"

func MonthBucket(t time.Time) string {
	return t.UTC().Format(MonthBucketFormat)
}

type Milestone struct {
	BaseModel
	UserID        uint    `gorm:"index;not null" json:"user_id"`
	UserName      string  `gorm:"size:100" json:"user_name"`
	GoalID        *uint   `gorm:"index" json:"goal_id,omitempty"`
	Title         string  `gorm:"size:255;not null" json:"title"`
	WhatLearned   string  `gorm:"type:text" json:"what_learned"`
	Source        string  `gorm:"size:100;index" json:"source"`
	SourceURL     string  `gorm:"size:512" json:"source_url"`
	HoursInvested float64 `gorm:"default:0" json:"hours_invested"`
	MonthBucket   string  `gorm:"size:7;index;not null" json:"month_bucket"`
}

func (Milestone) TableName() string {
	return "milestones"
}
