package impl

import (
	"context"
	"testing"
	"time"

	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/repository"
	mockRepo "studyhub/internal/mocks/repository"
	mockService "studyhub/internal/mocks/service"
	"studyhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// feedServiceFixtures holds all test dependencies for feed service tests.
type feedServiceFixtures struct {
	service    usecase.FeedUsecase
	userRepo   *mockRepo.MockUserRepository
	studyRepo  *mockRepo.MockStudyRepository
	likeRepo   *mockRepo.MockLikeStudyRepository
	joinRepo   *mockRepo.MockJoinStudyRepository
	noticeRepo *mockRepo.MockNoticeRepository
	taskRepo   *mockRepo.MockTaskRepository
	imageURL   *mockService.MockStudyImageURLBuilder
}

func createTestFeedService(t *testing.T) feedServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	studyRepo := mockRepo.NewMockStudyRepository(t)
	likeRepo := mockRepo.NewMockLikeStudyRepository(t)
	joinRepo := mockRepo.NewMockJoinStudyRepository(t)
	noticeRepo := mockRepo.NewMockNoticeRepository(t)
	taskRepo := mockRepo.NewMockTaskRepository(t)
	imageURL := mockService.NewMockStudyImageURLBuilder(t)

	svc := NewFeedService(FeedServiceParams{
		UserRepo:   userRepo,
		StudyRepo:  studyRepo,
		LikeRepo:   likeRepo,
		JoinRepo:   joinRepo,
		NoticeRepo: noticeRepo,
		TaskRepo:   taskRepo,
		ImageURL:   imageURL,
		Logger:     newDiscardLogger(),
	})

	return feedServiceFixtures{
		service:    svc,
		userRepo:   userRepo,
		studyRepo:  studyRepo,
		likeRepo:   likeRepo,
		joinRepo:   joinRepo,
		noticeRepo: noticeRepo,
		taskRepo:   taskRepo,
		imageURL:   imageURL,
	}
}

func TestFeedService_UserStudies(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.studyRepo.EXPECT().FindByOwner(ctx, int64(1)).Return([]*entity.Study{
		{ID: 10, UserID: 1, Title: "algorithms"},
		{ID: 11, UserID: 1, Title: "compilers"},
	}, nil)

	views, err := fx.service.UserStudies(ctx, 1)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(10), views[0].ID)
	assert.Equal(t, "compilers", views[1].Title)
}

// The empty-feed contract: no rows means a nil slice, which the HTTP layer
// serializes as null rather than [].
func TestFeedService_UserStudies_EmptyIsNil(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.studyRepo.EXPECT().FindByOwner(ctx, int64(1)).Return([]*entity.Study{}, nil)

	views, err := fx.service.UserStudies(ctx, 1)

	require.NoError(t, err)
	assert.Nil(t, views)
}

func TestFeedService_LikedStudies_BatchedAndOrdered(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.likeRepo.EXPECT().FindByUser(ctx, int64(1)).Return([]*entity.LikeStudy{
		{ID: 100, UserID: 1, StudyID: 30},
		{ID: 101, UserID: 1, StudyID: 10},
		{ID: 102, UserID: 1, StudyID: 20},
	}, nil)
	fx.studyRepo.EXPECT().
		MapByIDs(ctx, []int64{30, 10, 20}).
		Return(map[int64]*entity.Study{
			10: {ID: 10, Title: "algorithms"},
			20: {ID: 20, Title: "compilers"},
			30: {ID: 30, Title: "databases"},
		}, nil)

	rows, err := fx.service.LikedStudies(ctx, 1)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	// Rows come back in like-row order, not id order.
	assert.Equal(t, int64(30), rows[0].ID)
	assert.Equal(t, int64(10), rows[1].ID)
	assert.Equal(t, int64(20), rows[2].ID)
	for _, row := range rows {
		assert.True(t, row.Liked)
	}
}

func TestFeedService_LikedStudies_EmptyIsNil(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.likeRepo.EXPECT().FindByUser(ctx, int64(1)).Return(nil, nil)

	rows, err := fx.service.LikedStudies(ctx, 1)

	require.NoError(t, err)
	assert.Nil(t, rows)
	fx.studyRepo.AssertNotCalled(t, "MapByIDs", mock.Anything, mock.Anything)
}

// A like that references a study missing from the batch result fails the
// whole response; rows are never silently skipped.
func TestFeedService_LikedStudies_MissingStudyIsFatal(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.likeRepo.EXPECT().FindByUser(ctx, int64(1)).Return([]*entity.LikeStudy{
		{ID: 100, UserID: 1, StudyID: 10},
		{ID: 101, UserID: 1, StudyID: 99},
	}, nil)
	fx.studyRepo.EXPECT().
		MapByIDs(ctx, []int64{10, 99}).
		Return(map[int64]*entity.Study{10: {ID: 10}}, nil)

	rows, err := fx.service.LikedStudies(ctx, 1)

	require.Error(t, err)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, domainerrors.ErrStudyNotFound)
}

func TestFeedService_JoinedStudies_TwoLevelHydration(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()
	joinedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	fx.joinRepo.EXPECT().FindByUser(ctx, int64(1)).Return([]*entity.JoinStudy{
		{ID: 200, UserID: 1, StudyID: 10, CreatedAt: joinedAt},
		{ID: 201, UserID: 1, StudyID: 20, CreatedAt: joinedAt},
	}, nil)
	fx.studyRepo.EXPECT().
		MapByIDs(ctx, []int64{10, 20}).
		Return(map[int64]*entity.Study{
			10: {ID: 10, UserID: 5, Title: "algorithms", Image: "study-10.png"},
			20: {ID: 20, UserID: 6, Title: "compilers"},
		}, nil)
	fx.userRepo.EXPECT().
		MapByIDs(ctx, mock.AnythingOfType("[]int64")).
		Return(map[int64]*entity.User{
			5: {ID: 5, Nickname: "owner-five", ProfileImgURL: "https://img.example/5.jpg"},
			6: {ID: 6, Nickname: "owner-six"},
		}, nil)
	fx.imageURL.EXPECT().StudyImageURL("study-10.png").Return("https://img.example/study-10.png")

	rows, err := fx.service.JoinedStudies(ctx, 1)

	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, int64(200), first.ID)
	assert.Equal(t, int64(10), first.StudyID)
	assert.Equal(t, joinedAt, first.CreatedAt)
	require.NotNil(t, first.Study)
	assert.Equal(t, "algorithms", first.Study.Title)
	require.NotNil(t, first.Study.Owner)
	assert.Equal(t, "owner-five", first.Study.Owner.Nickname)
	require.NotNil(t, first.Study.ImageURL)
	assert.Equal(t, "https://img.example/study-10.png", *first.Study.ImageURL)

	// The second study has no image, so no URL gets built for it.
	second := rows[1]
	assert.Equal(t, "owner-six", second.Study.Owner.Nickname)
	assert.Nil(t, second.Study.ImageURL)
}

func TestFeedService_JoinedStudies_MissingOwnerIsFatal(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.joinRepo.EXPECT().FindByUser(ctx, int64(1)).Return([]*entity.JoinStudy{
		{ID: 200, UserID: 1, StudyID: 10},
	}, nil)
	fx.studyRepo.EXPECT().
		MapByIDs(ctx, []int64{10}).
		Return(map[int64]*entity.Study{10: {ID: 10, UserID: 5}}, nil)
	fx.userRepo.EXPECT().
		MapByIDs(ctx, []int64{5}).
		Return(map[int64]*entity.User{}, nil)

	rows, err := fx.service.JoinedStudies(ctx, 1)

	require.Error(t, err)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFeedService_JoinedStudies_EmptyIsNil(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.joinRepo.EXPECT().FindByUser(ctx, int64(1)).Return(nil, nil)

	rows, err := fx.service.JoinedStudies(ctx, 1)

	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestFeedService_Notices_HydratesAuthor(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.User{ID: 1, Nickname: "gopher"}, nil)
	fx.noticeRepo.EXPECT().FindByAuthor(ctx, int64(1)).Return([]*entity.Notice{
		{ID: 300, UserID: 1, StudyID: 10, Content: "first meeting moved"},
		{ID: 301, UserID: 1, StudyID: 20, Content: "bring laptops"},
	}, nil)
	fx.userRepo.EXPECT().
		MapByIDs(ctx, []int64{1}).
		Return(map[int64]*entity.User{1: {ID: 1, Nickname: "gopher"}}, nil)

	rows, err := fx.service.Notices(ctx, 1)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "first meeting moved", rows[0].Content)
	require.NotNil(t, rows[0].Author)
	assert.Equal(t, "gopher", rows[0].Author.Nickname)
}

func TestFeedService_Notices_UnknownUser(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.noticeRepo.EXPECT().FindByAuthor(ctx, int64(404)).Return([]*entity.Notice{
		{ID: 300, UserID: 404, StudyID: 10, Content: "orphaned notice"},
	}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	rows, err := fx.service.Notices(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.userRepo.AssertNotCalled(t, "MapByIDs", mock.Anything, mock.Anything)
}

func TestFeedService_Notices_EmptyIsNil(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.noticeRepo.EXPECT().FindByAuthor(ctx, int64(1)).Return(nil, nil)

	rows, err := fx.service.Notices(ctx, 1)

	require.NoError(t, err)
	assert.Nil(t, rows)
}

// A user with no notices gets the same null body even if the account itself
// has vanished: the empty set short-circuits before the existence check.
func TestFeedService_Notices_EmptySetForVanishedUser(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.noticeRepo.EXPECT().FindByAuthor(ctx, int64(77)).Return(nil, nil)

	rows, err := fx.service.Notices(ctx, 77)

	require.NoError(t, err)
	assert.Nil(t, rows)
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestFeedService_CompletedTasks(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()
	newer := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.User{ID: 1}, nil)
	// The repository returns rows already ordered by updated_at DESC.
	fx.taskRepo.EXPECT().FindCompletedByUser(ctx, int64(1)).Return([]*entity.Task{
		{ID: 400, UserID: 1, StudyID: 10, Content: "review chapter 3", Completed: true, UpdatedAt: newer},
		{ID: 401, UserID: 1, StudyID: 10, Content: "solve problem set", Completed: true, UpdatedAt: older},
	}, nil)

	views, err := fx.service.CompletedTasks(ctx, 1)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(400), views[0].ID)
	assert.True(t, views[0].UpdatedAt.After(views[1].UpdatedAt))
}

func TestFeedService_CompletedTasks_UnknownUser(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	views, err := fx.service.CompletedTasks(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, views)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFeedService_CompletedTasks_EmptyIsNil(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.User{ID: 1}, nil)
	fx.taskRepo.EXPECT().FindCompletedByUser(ctx, int64(1)).Return([]*entity.Task{}, nil)

	views, err := fx.service.CompletedTasks(ctx, 1)

	require.NoError(t, err)
	assert.Nil(t, views)
}
