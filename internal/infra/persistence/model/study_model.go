package model

import "time"

// StudyModel mirrors the 'studies' table.
type StudyModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"index;not null"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"type:varchar(512)"`
	Views       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudyModel) TableName() string {
	return "studies"
}

// LikeStudyModel mirrors the 'like_studies' table.
type LikeStudyModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"index;not null"`
	StudyID   int64 `gorm:"index;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeStudyModel) TableName() string {
	return "like_studies"
}

// JoinStudyModel mirrors the 'join_studies' table.
type JoinStudyModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"index;not null"`
	StudyID   int64 `gorm:"index;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (JoinStudyModel) TableName() string {
	return "join_studies"
}

// NoticeModel mirrors the 'notices' table.
type NoticeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index;not null"`
	StudyID   int64  `gorm:"index;not null"`
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoticeModel) TableName() string {
	return "notices"
}

// TaskModel mirrors the 'tasks' table.
type TaskModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index;not null"`
	StudyID   int64  `gorm:"index;not null"`
	Content   string `gorm:"type:text"`
	Completed bool   `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
