package model

import "time"

// Resource 学习资源推荐，只有 Approved 为 true 时对普通用户可见
type Resource struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	URL         string     `gorm:"size:512;index;not null" json:"url"`
	Category    string     `gorm:"size:100;index" json:"category"`
	Source      string     `gorm:"size:100" json:"source"`
	Description string     `gorm:"type:text" json:"description"`
	SuggestedBy uint       `gorm:"index" json:"suggested_by"`
	Approved    bool       `gorm:"index;default:false" json:"approved"`
	ApprovedBy  *uint      `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
}

func (Resource) TableName() string {
	return "resources"
}
