package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"studyhub/internal/delivery/http/response"
	"studyhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user read handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	feedUC usecase.FeedUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, feedUC usecase.FeedUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		feedUC: feedUC,
		logger: logger,
	}
}

// userIDParam parses the :user_id path parameter.
func userIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid user id")
	}

	return id, nil
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// GetUser handles GET /users/:user_id with the restricted profile projection.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	summary, err := h.userUC.GetUserSummary(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "User retrieved successfully")
}

// Studies handles GET /users/:user_id/studies.
func (h *UserHandler) Studies(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	rows, err := h.feedUC.UserStudies(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Studies retrieved successfully")
}

// LikedStudies handles GET /users/:user_id/likes.
func (h *UserHandler) LikedStudies(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	rows, err := h.feedUC.LikedStudies(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Liked studies retrieved successfully")
}

// JoinedStudies handles GET /users/:user_id/joins.
func (h *UserHandler) JoinedStudies(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	rows, err := h.feedUC.JoinedStudies(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Joined studies retrieved successfully")
}

// Notices handles GET /users/:user_id/notices.
func (h *UserHandler) Notices(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	rows, err := h.feedUC.Notices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Notices retrieved successfully")
}

// CompletedTasks handles GET /users/:user_id/tasks/completed.
func (h *UserHandler) CompletedTasks(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	rows, err := h.feedUC.CompletedTasks(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Completed tasks retrieved successfully")
}
