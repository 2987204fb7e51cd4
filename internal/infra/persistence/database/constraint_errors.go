package database

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation recognises duplicate keys from both dialects.
// TranslateError covers most cases; the message check catches drivers that
// bypass the translator.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed") || // sqlite
		strings.Contains(errMsg, "duplicate key value") || // postgres
		strings.Contains(errMsg, "sqlstate 23505")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint failed") || // sqlite
		strings.Contains(errMsg, "null value in column") || // postgres
		strings.Contains(errMsg, "sqlstate 23502")
}
