// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/repository"
	"studyhub/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByNickname retrieves a single user by their exact nickname.
func (repo *userRepository) FindByNickname(ctx context.Context, nickname string) (*entity.User, error) {
	return repo.findOne(ctx, "nickname = ?", nickname)
}

// FindByEmail retrieves a single user by their exact email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByKakaoID retrieves a single user by their Kakao account id.
func (repo *userRepository) FindByKakaoID(ctx context.Context, kakaoID string) (*entity.User, error) {
	return repo.findOne(ctx, "kakao_id = ?", kakaoID)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves every user in primary-key order.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// MapByIDs resolves a batch of user ids with a single query. Ids that resolve
// to nothing are simply absent from the returned map.
func (repo *userRepository) MapByIDs(ctx context.Context, ids []int64) (map[int64]*entity.User, error) {
	if len(ids) == 0 {
		return map[int64]*entity.User{}, nil
	}

	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	users := make(map[int64]*entity.User, len(userModels))
	for _, userM := range userModels {
		users[userM.ID] = toUserDomain(userM)
	}

	return users, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return uniqueViolationError(err)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// uniqueViolationError maps a violated unique index to the conflict the
// caller should report. The usecase pre-checks make these races rare, but a
// concurrent signup can still slip past them; the conflict code then has to
// name the column that actually collided, not assume the nickname.
func uniqueViolationError(err error) error {
	switch uniqueConstraintColumn(err) {
	case "nickname":
		return domainerrors.ErrNicknameTaken.WrapMessage("nickname already exists")
	case "email":
		return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
	default:
		return domainerrors.ErrDuplicateUser.WrapMessage("user already exists")
	}
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:            data.ID,
		Nickname:      data.Nickname,
		Birthday:      data.Birthday,
		Job:           data.Job,
		ProfileImgURL: data.ProfileImgURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.Email != nil {
		user.Email = *data.Email
	}
	if data.KakaoID != nil {
		user.KakaoID = *data.KakaoID
	}
	if data.PasswordHash != nil && data.Salt != nil {
		user.Credential = &entity.Credential{
			PasswordHash: *data.PasswordHash,
			Salt:         *data.Salt,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:            data.ID,
		Nickname:      data.Nickname,
		Birthday:      data.Birthday,
		Job:           data.Job,
		ProfileImgURL: data.ProfileImgURL,
	}

	if data.Email != "" {
		email := data.Email
		userM.Email = &email
	}
	if data.KakaoID != "" {
		kakaoID := data.KakaoID
		userM.KakaoID = &kakaoID
	}
	if data.Credential != nil {
		hash := data.Credential.PasswordHash
		salt := data.Credential.Salt
		userM.PasswordHash = &hash
		userM.Salt = &salt
	}

	return userM
}
