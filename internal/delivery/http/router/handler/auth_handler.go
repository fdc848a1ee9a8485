// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"studyhub/internal/delivery/http/response"
	"studyhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles the user registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SignUp(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	// The signup response carries an acknowledgment only, never the record.
	return response.Success(c, http.StatusOK, nil, "Signup successful")
}

// Login handles the password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// KakaoLogin handles the Kakao OAuth login request.
func (h *AuthHandler) KakaoLogin(c echo.Context) error {
	var input *usecase.KakaoLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Kakao login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.KakaoLogin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Kakao login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
