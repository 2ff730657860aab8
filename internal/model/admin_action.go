package model

const (
	ActionAdminLogin            = "admin_login"
	ActionViewStats             = "view_stats"
	ActionViewPendingResources  = "view_pending_resources"
	ActionApproveResource       = "approve_resource"
	ActionViewLearningAnalytics = "view_learning_analytics"
	ActionViewUsers             = "view_users"
	ActionViewBadges            = "view_badges"
	ActionViewActions           = "view_actions"
)

// AdminAction 审计日志
type AdminAction struct {
	BaseModel
	AdminID   uint   `gorm:"index;not null" json:"admin_id"`
	AdminName string `gorm:"size:100" json:"admin_name"`
	Action    string `gorm:"size:64;index;not null" json:"action"`
	Target    string `gorm:"size:255" json:"target"`
	Details   string `gorm:"type:text" json:"details"`
}

func (AdminAction) TableName() string {
	return "admin_actions"
}
