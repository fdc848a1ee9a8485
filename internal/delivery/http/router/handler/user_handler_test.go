package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFeedUsecase lets each test plug in just the method it exercises.
type stubFeedUsecase struct {
	userStudies    func(ctx context.Context, userID int64) ([]*usecase.StudyView, error)
	likedStudies   func(ctx context.Context, userID int64) ([]*usecase.LikedStudyRow, error)
	joinedStudies  func(ctx context.Context, userID int64) ([]*usecase.JoinedStudyRow, error)
	notices        func(ctx context.Context, userID int64) ([]*usecase.NoticeRow, error)
	completedTasks func(ctx context.Context, userID int64) ([]*usecase.TaskView, error)
}

func (s *stubFeedUsecase) UserStudies(ctx context.Context, userID int64) ([]*usecase.StudyView, error) {
	return s.userStudies(ctx, userID)
}

func (s *stubFeedUsecase) LikedStudies(ctx context.Context, userID int64) ([]*usecase.LikedStudyRow, error) {
	return s.likedStudies(ctx, userID)
}

func (s *stubFeedUsecase) JoinedStudies(ctx context.Context, userID int64) ([]*usecase.JoinedStudyRow, error) {
	return s.joinedStudies(ctx, userID)
}

func (s *stubFeedUsecase) Notices(ctx context.Context, userID int64) ([]*usecase.NoticeRow, error) {
	return s.notices(ctx, userID)
}

func (s *stubFeedUsecase) CompletedTasks(ctx context.Context, userID int64) ([]*usecase.TaskView, error) {
	return s.completedTasks(ctx, userID)
}

type stubUserUsecase struct {
	signUp         func(ctx context.Context, input *usecase.SignUpInput) error
	login          func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	kakaoLogin     func(ctx context.Context, input *usecase.KakaoLoginInput) (*usecase.KakaoLoginOutput, error)
	getUserSummary func(ctx context.Context, userID int64) (*usecase.UserSummary, error)
	listUsers      func(ctx context.Context) ([]*usecase.UserView, error)
}

func (s *stubUserUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) error {
	return s.signUp(ctx, input)
}

func (s *stubUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.login(ctx, input)
}

func (s *stubUserUsecase) KakaoLogin(ctx context.Context, input *usecase.KakaoLoginInput) (*usecase.KakaoLoginOutput, error) {
	return s.kakaoLogin(ctx, input)
}

func (s *stubUserUsecase) GetUserSummary(ctx context.Context, userID int64) (*usecase.UserSummary, error) {
	return s.getUserSummary(ctx, userID)
}

func (s *stubUserUsecase) ListUsers(ctx context.Context) ([]*usecase.UserView, error) {
	return s.listUsers(ctx)
}

func newTestContext(t *testing.T, target string, paramValue string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramValue != "" {
		c.SetParamNames("user_id")
		c.SetParamValues(paramValue)
	}

	return c, rec
}

// An empty feed must serialize as "data":null, never as [].
func TestUserHandler_Studies_EmptyFeedSerializesNull(t *testing.T) {
	feedUC := &stubFeedUsecase{
		userStudies: func(context.Context, int64) ([]*usecase.StudyView, error) {
			return nil, nil
		},
	}
	h := NewUserHandler(nil, feedUC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, "/users/1/studies", "1")

	require.NoError(t, h.Studies(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":null`)
	assert.NotContains(t, rec.Body.String(), `"data":[]`)
}

func TestUserHandler_Studies_WrapsRowsInEnvelope(t *testing.T) {
	feedUC := &stubFeedUsecase{
		userStudies: func(_ context.Context, userID int64) ([]*usecase.StudyView, error) {
			assert.Equal(t, int64(7), userID)

			return []*usecase.StudyView{{ID: 10, UserID: 7, Title: "algorithms"}}, nil
		},
	}
	h := NewUserHandler(nil, feedUC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, "/users/7/studies", "7")

	require.NoError(t, h.Studies(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"title":"algorithms"`)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	h := NewUserHandler(&stubUserUsecase{}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, "/users/not-a-number", "not-a-number")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_GetUser_RestrictedProjection(t *testing.T) {
	userUC := &stubUserUsecase{
		getUserSummary: func(_ context.Context, userID int64) (*usecase.UserSummary, error) {
			return &usecase.UserSummary{ID: userID, Nickname: "gopher", ProfileImgURL: "https://img.example/42.jpg"}, nil
		},
	}
	h := NewUserHandler(userUC, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, "/users/42", "42")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"nickname":"gopher"`)
	// The restricted projection never exposes contact details.
	assert.NotContains(t, body, "email")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
