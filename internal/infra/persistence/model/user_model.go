package model

import (
	"time"
)

// UserModel mirrors the 'users' table. Email, KakaoID and the credential
// columns are nullable: password accounts have credential columns set and
// KakaoID NULL, OAuth accounts the other way around.
type UserModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Nickname      string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email         *string `gorm:"type:varchar(255);uniqueIndex"`
	Birthday      string  `gorm:"type:varchar(50)"`
	Job           string  `gorm:"type:varchar(100)"`
	ProfileImgURL string  `gorm:"type:varchar(512)"`
	KakaoID       *string `gorm:"type:varchar(64);uniqueIndex"`
	PasswordHash  *string `gorm:"type:varchar(128)"`
	Salt          *string `gorm:"type:varchar(64)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
