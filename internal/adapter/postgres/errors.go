package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/proximity-backend/internal/domain"
)

// SQLSTATE codes mapped onto domain sentinels. restrict_violation is raised
// by the append-only trigger on moderation_actions.
var pgCodeToDomain = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22003": domain.ErrValidation,    // numeric_value_out_of_range
	"23001": domain.ErrConflict,      // restrict_violation
}

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and id (anything printable). Context errors and unknown codes are
// wrapped but not mapped.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeToDomain[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s %v: %s: %w", entity, id, pgErr.ConstraintName, mapped)
			}
			return fmt.Errorf("%s %v: %w", entity, id, mapped)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}
