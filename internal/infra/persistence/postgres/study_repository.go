package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/repository"
	"studyhub/internal/infra/persistence/model"
)

// studyRepository implements the repository.StudyRepository interface.
type studyRepository struct {
	db *gorm.DB
}

// NewStudyRepository is the constructor for studyRepository.
func NewStudyRepository(db *gorm.DB) repository.StudyRepository {
	return &studyRepository{db: db}
}

// FindByOwner retrieves all studies authored by the given user in primary-key order.
func (repo *studyRepository) FindByOwner(ctx context.Context, userID int64) ([]*entity.Study, error) {
	var studyModels []*model.StudyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&studyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find studies by owner")
	}

	studies := make([]*entity.Study, 0, len(studyModels))
	for _, studyM := range studyModels {
		studies = append(studies, toStudyDomain(studyM))
	}

	return studies, nil
}

// MapByIDs resolves a batch of study ids with a single query. Ids that resolve
// to nothing are simply absent from the returned map.
func (repo *studyRepository) MapByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Study, error) {
	if len(ids) == 0 {
		return map[int64]*entity.Study{}, nil
	}

	var studyModels []*model.StudyModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&studyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find studies by ids")
	}

	studies := make(map[int64]*entity.Study, len(studyModels))
	for _, studyM := range studyModels {
		studies[studyM.ID] = toStudyDomain(studyM)
	}

	return studies, nil
}

// likeStudyRepository implements the repository.LikeStudyRepository interface.
type likeStudyRepository struct {
	db *gorm.DB
}

// NewLikeStudyRepository is the constructor for likeStudyRepository.
func NewLikeStudyRepository(db *gorm.DB) repository.LikeStudyRepository {
	return &likeStudyRepository{db: db}
}

// FindByUser retrieves all like records created by the given user.
func (repo *likeStudyRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.LikeStudy, error) {
	var likeModels []*model.LikeStudyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&likeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find likes by user")
	}

	likes := make([]*entity.LikeStudy, 0, len(likeModels))
	for _, likeM := range likeModels {
		likes = append(likes, &entity.LikeStudy{
			ID:        likeM.ID,
			UserID:    likeM.UserID,
			StudyID:   likeM.StudyID,
			CreatedAt: likeM.CreatedAt,
		})
	}

	return likes, nil
}

// joinStudyRepository implements the repository.JoinStudyRepository interface.
type joinStudyRepository struct {
	db *gorm.DB
}

// NewJoinStudyRepository is the constructor for joinStudyRepository.
func NewJoinStudyRepository(db *gorm.DB) repository.JoinStudyRepository {
	return &joinStudyRepository{db: db}
}

// FindByUser retrieves all join records created by the given user.
func (repo *joinStudyRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.JoinStudy, error) {
	var joinModels []*model.JoinStudyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&joinModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find joins by user")
	}

	joins := make([]*entity.JoinStudy, 0, len(joinModels))
	for _, joinM := range joinModels {
		joins = append(joins, &entity.JoinStudy{
			ID:        joinM.ID,
			UserID:    joinM.UserID,
			StudyID:   joinM.StudyID,
			CreatedAt: joinM.CreatedAt,
		})
	}

	return joins, nil
}

// toStudyDomain converts a GORM StudyModel to a domain Study entity.
func toStudyDomain(data *model.StudyModel) *entity.Study {
	if data == nil {
		return nil
	}

	return &entity.Study{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Image:       data.Image,
		Views:       data.Views,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
