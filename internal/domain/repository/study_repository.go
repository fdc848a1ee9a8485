package repository

import (
	"context"
	"errors"

	"studyhub/internal/domain/entity"
)

// ErrStudyNotFound is a domain-specific error returned when a study is not found.
var ErrStudyNotFound = errors.New("study not found")

// StudyRepository defines read operations over study postings.
type StudyRepository interface {
	// FindByOwner retrieves all studies authored by the given user, in
	// primary-key order.
	FindByOwner(ctx context.Context, userID int64) ([]*entity.Study, error)

	// MapByIDs resolves a batch of study ids in a single query. The returned
	// map covers every requested id that exists and omits ids that do not.
	MapByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Study, error)
}

// LikeStudyRepository defines read operations over like records.
type LikeStudyRepository interface {
	// FindByUser retrieves all like records created by the given user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.LikeStudy, error)
}

// JoinStudyRepository defines read operations over join records.
type JoinStudyRepository interface {
	// FindByUser retrieves all join records created by the given user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.JoinStudy, error)
}

// NoticeRepository defines read operations over study notices.
type NoticeRepository interface {
	// FindByAuthor retrieves all notices written by the given user.
	FindByAuthor(ctx context.Context, userID int64) ([]*entity.Notice, error)
}

// TaskRepository defines read operations over study tasks.
type TaskRepository interface {
	// FindCompletedByUser retrieves the user's completed tasks ordered by
	// most-recently-updated first.
	FindCompletedByUser(ctx context.Context, userID int64) ([]*entity.Task, error)
}
