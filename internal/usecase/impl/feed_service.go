package impl

import (
	"context"
	"log/slog"

	deliverycontext "studyhub/internal/delivery/context"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/repository"
	"studyhub/internal/domain/service"
	"studyhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedService implements the FeedUsecase interface. It is stateless between
// requests: every call fetches the primary rows, batch-resolves whatever they
// reference, and merges in primary-row order.
type feedService struct {
	userRepo   repository.UserRepository
	studyRepo  repository.StudyRepository
	likeRepo   repository.LikeStudyRepository
	joinRepo   repository.JoinStudyRepository
	noticeRepo repository.NoticeRepository
	taskRepo   repository.TaskRepository
	imageURL   service.StudyImageURLBuilder
	logger     *slog.Logger
}

// FeedServiceParams holds dependencies for FeedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	StudyRepo  repository.StudyRepository
	LikeRepo   repository.LikeStudyRepository
	JoinRepo   repository.JoinStudyRepository
	NoticeRepo repository.NoticeRepository
	TaskRepo   repository.TaskRepository
	ImageURL   service.StudyImageURLBuilder
	Logger     *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	return &feedService{
		userRepo:   params.UserRepo,
		studyRepo:  params.StudyRepo,
		likeRepo:   params.LikeRepo,
		joinRepo:   params.JoinRepo,
		noticeRepo: params.NoticeRepo,
		taskRepo:   params.TaskRepo,
		imageURL:   params.ImageURL,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UserStudies returns the studies authored by the user, nil when there are none.
func (srv *feedService) UserStudies(ctx context.Context, userID int64) ([]*usecase.StudyView, error) {
	studies, err := srv.studyRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find studies by owner")
	}
	if len(studies) == 0 {
		return nil, nil
	}

	views := make([]*usecase.StudyView, 0, len(studies))
	for _, study := range studies {
		view := usecase.NewStudyView(study)
		views = append(views, &view)
	}

	return views, nil
}

// LikedStudies returns the studies the user has liked, each flagged liked.
// The referenced studies are resolved in a single batch; a like pointing at a
// study missing from the batch fails the whole response.
func (srv *feedService) LikedStudies(ctx context.Context, userID int64) ([]*usecase.LikedStudyRow, error) {
	likes, err := srv.likeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find likes by user")
	}
	if len(likes) == 0 {
		return nil, nil
	}

	studyIDs := make([]int64, 0, len(likes))
	for _, like := range likes {
		studyIDs = append(studyIDs, like.StudyID)
	}

	studies, err := srv.studyRepo.MapByIDs(ctx, uniqueIDs(studyIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to batch-load liked studies")
	}

	rows := make([]*usecase.LikedStudyRow, 0, len(likes))
	for _, like := range likes {
		study, ok := studies[like.StudyID]
		if !ok {
			srv.log(ctx).Error("Liked study missing", slog.Int64("studyID", like.StudyID), slog.Int64("userID", userID))

			return nil, errors.Wrap(domainerrors.ErrStudyNotFound, "liked study no longer exists")
		}

		rows = append(rows, &usecase.LikedStudyRow{
			StudyView: usecase.NewStudyView(study),
			Liked:     true,
		})
	}

	return rows, nil
}

// JoinedStudies returns the user's memberships, each merged with its study
// hydrated two levels deep: the study row itself and the study owner's
// restricted profile. Studies and owners are each resolved in one batch.
func (srv *feedService) JoinedStudies(ctx context.Context, userID int64) ([]*usecase.JoinedStudyRow, error) {
	joins, err := srv.joinRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find joins by user")
	}
	if len(joins) == 0 {
		return nil, nil
	}

	studyIDs := make([]int64, 0, len(joins))
	for _, join := range joins {
		studyIDs = append(studyIDs, join.StudyID)
	}

	studies, err := srv.studyRepo.MapByIDs(ctx, uniqueIDs(studyIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to batch-load joined studies")
	}

	ownerIDs := make([]int64, 0, len(studies))
	for _, study := range studies {
		ownerIDs = append(ownerIDs, study.UserID)
	}

	owners, err := srv.userRepo.MapByIDs(ctx, uniqueIDs(ownerIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to batch-load study owners")
	}

	rows := make([]*usecase.JoinedStudyRow, 0, len(joins))
	for _, join := range joins {
		study, ok := studies[join.StudyID]
		if !ok {
			srv.log(ctx).Error("Joined study missing", slog.Int64("studyID", join.StudyID), slog.Int64("userID", userID))

			return nil, errors.Wrap(domainerrors.ErrStudyNotFound, "joined study no longer exists")
		}

		owner, ok := owners[study.UserID]
		if !ok {
			srv.log(ctx).Error("Study owner missing", slog.Int64("ownerID", study.UserID), slog.Int64("studyID", study.ID))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "study owner no longer exists")
		}

		rows = append(rows, &usecase.JoinedStudyRow{
			ID:        join.ID,
			UserID:    join.UserID,
			StudyID:   join.StudyID,
			CreatedAt: join.CreatedAt,
			Study: &usecase.JoinedStudyDetail{
				StudyView: usecase.NewStudyView(study),
				Owner:     usecase.NewUserSummary(owner),
				ImageURL:  srv.displayImageURL(study),
			},
		})
	}

	return rows, nil
}

// displayImageURL resolves the stored image reference to an absolute URL.
// Studies without an image stay without one.
func (srv *feedService) displayImageURL(study *entity.Study) *string {
	if study.Image == "" {
		return nil
	}

	url := srv.imageURL.StudyImageURL(study.Image)

	return &url
}

// Notices returns the announcements authored by the user, merged with the
// author's restricted profile. An empty set is null regardless of whether the
// user still exists; the existence check only guards hydration.
func (srv *feedService) Notices(ctx context.Context, userID int64) ([]*usecase.NoticeRow, error) {
	notices, err := srv.noticeRepo.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notices by author")
	}
	if len(notices) == 0 {
		return nil, nil
	}

	if err := srv.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	authorIDs := make([]int64, 0, len(notices))
	for _, notice := range notices {
		authorIDs = append(authorIDs, notice.UserID)
	}

	authors, err := srv.userRepo.MapByIDs(ctx, uniqueIDs(authorIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to batch-load notice authors")
	}

	rows := make([]*usecase.NoticeRow, 0, len(notices))
	for _, notice := range notices {
		author, ok := authors[notice.UserID]
		if !ok {
			srv.log(ctx).Error("Notice author missing", slog.Int64("authorID", notice.UserID), slog.Int64("noticeID", notice.ID))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "notice author no longer exists")
		}

		rows = append(rows, &usecase.NoticeRow{
			ID:        notice.ID,
			StudyID:   notice.StudyID,
			Content:   notice.Content,
			CreatedAt: notice.CreatedAt,
			UpdatedAt: notice.UpdatedAt,
			Author:    usecase.NewUserSummary(author),
		})
	}

	return rows, nil
}

// CompletedTasks returns the user's completed tasks, most recently updated
// first. The acting user must exist.
func (srv *feedService) CompletedTasks(ctx context.Context, userID int64) ([]*usecase.TaskView, error) {
	if err := srv.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	tasks, err := srv.taskRepo.FindCompletedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find completed tasks")
	}
	if len(tasks) == 0 {
		return nil, nil
	}

	views := make([]*usecase.TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, &usecase.TaskView{
			ID:        task.ID,
			UserID:    task.UserID,
			StudyID:   task.StudyID,
			Content:   task.Content,
			CreatedAt: task.CreatedAt,
			UpdatedAt: task.UpdatedAt,
		})
	}

	return views, nil
}

// uniqueIDs drops duplicate ids while preserving first-seen order, so each
// referenced id hits the batch query exactly once.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

func (srv *feedService) requireUser(ctx context.Context, userID int64) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "acting user does not exist")
		}

		return errors.Wrap(err, "failed to verify user existence")
	}

	return nil
}
