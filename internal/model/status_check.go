package model

import "time"

type StatusCheck struct {
	UUIDBase
	ClientName string    `gorm:"size:255;not null" json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func (StatusCheck) TableName() string {
	return "status_checks"
}
