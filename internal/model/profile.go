package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// EmployeeProfile 与 User 一对一
type EmployeeProfile struct {
	BaseModel
	UserID     uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Department string         `gorm:"size:100;index" json:"department"`
	JobTitle   string         `gorm:"size:100" json:"job_title"`
	JoinDate   *time.Time     `json:"join_date,omitempty"`
	Skills     datatypes.JSON `json:"skills"`
	Interests  datatypes.JSON `json:"interests"`
	Bio        string         `gorm:"type:text" json:"bio"`
}

func (EmployeeProfile) TableName() string {
	return "employee_profiles"
}

// SkillList 解析 Skills 列，格式错误时返回空
func (p *EmployeeProfile) SkillList() []string {
	return decodeStringList(p.Skills)
}

func (p *EmployeeProfile) InterestList() []string {
	return decodeStringList(p.Interests)
}

func EncodeStringList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}
