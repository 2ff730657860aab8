package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Capability 受保护路由所需的权限，角色到权限的映射只在 Can 中出现
type Capability string

const (
	CapMember Capability = "member"
	CapAdmin  Capability = "admin"
)

type User struct {
	BaseModel
	Name             string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Role             UserRole  `gorm:"size:20;not null;default:'user'" json:"role"`
	SessionToken     *string   `gorm:"size:64;uniqueIndex" json:"-"`
	BadgesGenerated  int       `gorm:"default:0" json:"badges_generated"`
	MilestonesLogged int       `gorm:"default:0" json:"milestones_logged"`
	LastActive       time.Time `json:"last_active"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) Can(capability Capability) bool {
	if u == nil {
		return false
	}
	switch capability {
	case CapMember:
		return true
	case CapAdmin:
		return u.Role == RoleAdmin
	default:
		return false
	}
}
