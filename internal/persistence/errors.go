package persistence

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"feedgraph/internal/core"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func IsUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasPgCode(err, pgUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasPgCode(err, pgForeignKeyViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func NotFound(resource string, id int64) error {
	return fmt.Errorf("%w: %s %d", core.ErrNotFound, resource, id)
}

// Translate maps store errors to outcome errors: missing rows and dangling references become ErrNotFound,
// unique violations ErrConflict. Anything else is returned as is.
func Translate(err error, resource string, id int64) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound), IsForeignKeyViolation(err):
		return NotFound(resource, id)
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %s %d", core.ErrConflict, resource, id)
	default:
		return err
	}
}
