package entity

import "time"

// Study is a study-group posting authored by a user.
type Study struct {
	ID          int64     // Auto-incremented primary key.
	UserID      int64     // The authoring user's id.
	Title       string    // Posting title.
	Description string    // Posting body.
	Image       string    // Raw stored image reference. Empty when the posting has no image.
	Views       int       // View counter maintained by external collaborators.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// LikeStudy records that a user has liked a study.
type LikeStudy struct {
	ID        int64
	UserID    int64
	StudyID   int64
	CreatedAt time.Time
}

// JoinStudy records that a user has joined a study.
type JoinStudy struct {
	ID        int64
	UserID    int64
	StudyID   int64
	CreatedAt time.Time
}

// Notice is an announcement a user posted inside a study.
type Notice struct {
	ID        int64
	UserID    int64     // The authoring user's id.
	StudyID   int64     // The study the notice belongs to.
	Content   string    // Announcement body.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Task is a to-do item assigned to a user within a study.
type Task struct {
	ID        int64
	UserID    int64
	StudyID   int64
	Content   string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
