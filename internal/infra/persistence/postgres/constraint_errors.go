package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err comes from a violated
// unique index. The connection is opened without gorm's error translation,
// so the message check handles the raw driver error (SQLSTATE 23505).
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505")
}

// uniqueConstraintColumn names the users column whose unique index was
// violated, or "" when the error does not identify one. Postgres embeds the
// index name (idx_users_<column>) in the driver error text; a translated
// gorm.ErrDuplicatedKey carries no such detail and classifies as "".
func uniqueConstraintColumn(err error) string {
	errMsg := strings.ToLower(err.Error())
	for _, column := range []string{"nickname", "email", "kakao_id"} {
		if strings.Contains(errMsg, column) {
			return column
		}
	}

	return ""
}

// isNotNullConstraintViolation reports whether err comes from a NOT NULL
// column rejecting the row (SQLSTATE 23502).
func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}
