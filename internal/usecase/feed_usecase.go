package usecase

import (
	"context"
	"time"

	"studyhub/internal/domain/entity"
)

// StudyView is the serialized shape of a study posting. Image carries the
// raw stored reference; joined-study rows additionally expose the resolved
// absolute URL.
type StudyView struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LikedStudyRow is a study the user has liked. Liked is always true; the
// flag exists so clients can merge liked rows into mixed study lists.
type LikedStudyRow struct {
	StudyView
	Liked bool `json:"liked"`
}

// JoinedStudyDetail is the hydrated study nested inside a joined-study row,
// including the study owner's restricted profile and the display image URL.
type JoinedStudyDetail struct {
	StudyView
	Owner    *UserSummary `json:"owner"`
	ImageURL *string      `json:"image_url"` // Absolute URL; null when the study has no image.
}

// JoinedStudyRow is one membership row merged with its hydrated study.
type JoinedStudyRow struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	StudyID   int64              `json:"study_id"`
	CreatedAt time.Time          `json:"created_at"`
	Study     *JoinedStudyDetail `json:"study"`
}

// NoticeRow is one announcement merged with its hydrated author.
type NoticeRow struct {
	ID        int64        `json:"id"`
	StudyID   int64        `json:"study_id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Author    *UserSummary `json:"author"`
}

// TaskView is one completed task row.
type TaskView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	StudyID   int64     `json:"study_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStudyView maps a domain study to its serialized shape.
func NewStudyView(study *entity.Study) StudyView {
	return StudyView{
		ID:          study.ID,
		UserID:      study.UserID,
		Title:       study.Title,
		Description: study.Description,
		Image:       study.Image,
		Views:       study.Views,
		CreatedAt:   study.CreatedAt,
		UpdatedAt:   study.UpdatedAt,
	}
}

// FeedUsecase assembles the per-user read endpoints. Every method returns a
// nil slice when the user has no matching rows; the delivery layer serializes
// that as JSON null, never as an empty array.
type FeedUsecase interface {
	UserStudies(ctx context.Context, userID int64) ([]*StudyView, error)
	LikedStudies(ctx context.Context, userID int64) ([]*LikedStudyRow, error)
	JoinedStudies(ctx context.Context, userID int64) ([]*JoinedStudyRow, error)
	Notices(ctx context.Context, userID int64) ([]*NoticeRow, error)
	CompletedTasks(ctx context.Context, userID int64) ([]*TaskView, error)
}
