package model

import "time"

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalActive, GoalCompleted, GoalPaused:
		return true
	}
	return false
}

type LearningGoal struct {
	BaseModel
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"size:100" json:"category"`
	Status      GoalStatus `gorm:"size:20;not null;default:'active'" json:"status"`
	TargetHours float64    `gorm:"default:0" json:"target_hours"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
}

func (LearningGoal) TableName() string {
	return "learning_goals"
}
