package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/repository"
	"studyhub/internal/infra/persistence/model"
)

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindCompletedByUser retrieves the user's completed tasks ordered by
// most-recently-updated first.
func (repo *taskRepository) FindCompletedByUser(ctx context.Context, userID int64) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND completed = ?", userID, true).
		Order("updated_at DESC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find completed tasks by user")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, &entity.Task{
			ID:        taskM.ID,
			UserID:    taskM.UserID,
			StudyID:   taskM.StudyID,
			Content:   taskM.Content,
			Completed: taskM.Completed,
			CreatedAt: taskM.CreatedAt,
			UpdatedAt: taskM.UpdatedAt,
		})
	}

	return tasks, nil
}
