package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/repository"
	"studyhub/internal/infra/persistence/model"
)

// noticeRepository implements the repository.NoticeRepository interface.
type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository is the constructor for noticeRepository.
func NewNoticeRepository(db *gorm.DB) repository.NoticeRepository {
	return &noticeRepository{db: db}
}

// FindByAuthor retrieves all notices written by the given user in primary-key order.
func (repo *noticeRepository) FindByAuthor(ctx context.Context, userID int64) ([]*entity.Notice, error) {
	var noticeModels []*model.NoticeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&noticeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notices by author")
	}

	notices := make([]*entity.Notice, 0, len(noticeModels))
	for _, noticeM := range noticeModels {
		notices = append(notices, &entity.Notice{
			ID:        noticeM.ID,
			UserID:    noticeM.UserID,
			StudyID:   noticeM.StudyID,
			Content:   noticeM.Content,
			CreatedAt: noticeM.CreatedAt,
			UpdatedAt: noticeM.UpdatedAt,
		})
	}

	return notices, nil
}
