package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "studyhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func invokeErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec := invokeErrorHandler(t, domainerrors.ErrNicknameTaken)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, "NICKNAME_TAKEN")
}

// Usecases wrap domain errors with pkg/errors context; the handler must still
// find the AppError inside the chain.
func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrUserNotFound, "login failed")

	rec := invokeErrorHandler(t, wrapped)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestErrorMiddleware_OAuthProviderError(t *testing.T) {
	rec := invokeErrorHandler(t, errors.Wrap(domainerrors.ErrOAuthProvider, "kakao login"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "OAUTH_PROVIDER_ERROR")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := invokeErrorHandler(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

// Anything unrecognized falls back to the opaque 500 envelope.
func TestErrorMiddleware_UnknownErrorFallsBackToInternal(t *testing.T) {
	rec := invokeErrorHandler(t, errors.New("database exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "INTERNAL_ERROR")
	assert.Contains(t, body, `"code":500`)
}
