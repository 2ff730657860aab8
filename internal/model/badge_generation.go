package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties 区分大小写
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	for _, v := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}

// BadgeGeneration 一次成功的 /generate 调用，写入后不再修改
type BadgeGeneration struct {
	BaseModel
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	UserName     string     `gorm:"size:100;index" json:"user_name"`
	EmployeeName string     `gorm:"size:100" json:"employee_name"`
	Learning     string     `gorm:"type:text" json:"learning"`
	Difficulty   Difficulty `gorm:"size:64" json:"difficulty"`
	BadgeText    string     `gorm:"type:text" json:"badge_text"`
	LinkedinPost string     `gorm:"type:text" json:"linkedin_post"`
	BadgeRef     string     `gorm:"size:512" json:"badge_ref"`
}

func (BadgeGeneration) TableName() string {
	return "badge_generations"
}
