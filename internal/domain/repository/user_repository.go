// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"studyhub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByNickname retrieves a single user by their exact nickname.
	FindByNickname(ctx context.Context, nickname string) (*entity.User, error)

	// FindByEmail retrieves a single user by their exact email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByKakaoID retrieves a single user by their Kakao account id.
	FindByKakaoID(ctx context.Context, kakaoID string) (*entity.User, error)

	// FindAll retrieves every user, in primary-key order.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// MapByIDs resolves a batch of user ids in a single query. The returned
	// map covers every requested id that exists and omits ids that do not;
	// callers must guard dereferences accordingly.
	MapByIDs(ctx context.Context, ids []int64) (map[int64]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}
