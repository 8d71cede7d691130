package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint-violation predicates used by the repositories to translate
// database failures into domain errors. GORM's translated errors cover the
// usual paths; the SQLSTATE fallbacks catch drivers that skip translation.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, "23502") ||
		strings.Contains(strings.ToLower(err.Error()), "null value")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, "23514")
}

func hasSQLState(err error, code string) bool {
	return strings.Contains(err.Error(), code)
}
