// Package throttle implements the shadow throttle repository using PostgreSQL.
package throttle

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/proximity-backend/internal/adapter/postgres"
	"github.com/heartmarshall/proximity-backend/internal/domain"
)

const table = "shadow_throttles"

var columns = []string{"id", "user_id", "reason", "severity", "started_at", "expires_at", "created_by", "notes"}

// Repo provides shadow throttle persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new throttle repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// activeAt restricts a query to throttles in force at now.
func activeAt(now time.Time) sq.Sqlizer {
	return sq.And{
		sq.LtOrEq{"started_at": now},
		sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": now}},
	}
}

// Create inserts a new throttle. Throttles are never merged.
func (r *Repo) Create(ctx context.Context, t domain.ShadowThrottle) (domain.ShadowThrottle, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.UserID, string(t.Reason), t.Severity, t.StartedAt, t.ExpiresAt, t.CreatedBy, t.Notes).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ShadowThrottle{}, fmt.Errorf("build insert throttle: %w", err)
	}

	created, err := scanThrottle(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ShadowThrottle{}, postgres.MapError(err, "shadow_throttle", t.ID)
	}
	return created, nil
}

// Delete removes a throttle and returns the deleted row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (domain.ShadowThrottle, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ShadowThrottle{}, fmt.Errorf("build delete throttle: %w", err)
	}

	deleted, err := scanThrottle(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ShadowThrottle{}, postgres.MapError(err, "shadow_throttle", id)
	}
	return deleted, nil
}

// MaxActiveSeverity returns the highest severity among the user's active
// throttles, or 0 when none is active.
func (r *Repo) MaxActiveSeverity(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	query, args, err := postgres.Builder.
		Select("COALESCE(MAX(severity), 0)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(activeAt(now)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build max severity: %w", err)
	}

	var sev int32
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&sev); err != nil {
		return 0, postgres.MapError(err, "shadow_throttle max severity for user", userID)
	}
	return int(sev), nil
}

// MaxActiveSeverities is the batch form of MaxActiveSeverity. Users without
// an active throttle are absent from the result.
func (r *Repo) MaxActiveSeverities(ctx context.Context, userIDs []uuid.UUID, now time.Time) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	query, args, err := postgres.Builder.
		Select("user_id", "MAX(severity)").
		From(table).
		Where(sq.Expr("user_id = ANY(?)", userIDs)).
		Where(activeAt(now)).
		GroupBy("user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build max severities: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("max severities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  uuid.UUID
			sev int32
		)
		if err := rows.Scan(&id, &sev); err != nil {
			return nil, fmt.Errorf("scan max severity: %w", err)
		}
		out[id] = int(sev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate max severities: %w", err)
	}

	return out, nil
}

// ListByUser returns the user's throttles, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ShadowThrottle, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("started_at DESC", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return r.list(ctx, b)
}

// ListActive returns throttles in force at now, most severe first.
func (r *Repo) ListActive(ctx context.Context, now time.Time, limit, offset int) ([]domain.ShadowThrottle, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(activeAt(now)).
		OrderBy("severity DESC", "started_at DESC", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return r.list(ctx, b)
}

// CountByUser returns the total and currently active throttle counts.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID, now time.Time) (total, active int, err error) {
	activeSQL, activeArgs, err := activeAt(now).ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build active predicate: %w", err)
	}

	query, args, err := postgres.Builder.
		Select("count(*)").
		Column(sq.Expr("count(*) FILTER (WHERE "+activeSQL+")", activeArgs...)).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build count throttles: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total, &active); err != nil {
		return 0, 0, postgres.MapError(err, "shadow_throttle count for user", userID)
	}
	return total, active, nil
}

// CountActive returns how many throttles are in force at now.
func (r *Repo) CountActive(ctx context.Context, now time.Time) (int, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(activeAt(now)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count active throttles: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count active throttles: %w", err)
	}
	return n, nil
}

// DeleteExpiredBefore removes timed throttles that ran out at or before
// cutoff. Permanent throttles are never pruned.
func (r *Repo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.NotEq{"expires_at": nil}).
		Where(sq.LtOrEq{"expires_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired throttles: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired throttles: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.ShadowThrottle, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list throttles: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list throttles: %w", err)
	}
	defer rows.Close()

	var out []domain.ShadowThrottle
	for rows.Next() {
		t, err := scanThrottle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan throttle: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate throttles: %w", err)
	}
	return out, nil
}

func scanThrottle(row pgx.Row) (domain.ShadowThrottle, error) {
	var (
		t        domain.ShadowThrottle
		reason   string
		severity int16
	)
	if err := row.Scan(&t.ID, &t.UserID, &reason, &severity, &t.StartedAt, &t.ExpiresAt, &t.CreatedBy, &t.Notes); err != nil {
		return domain.ShadowThrottle{}, err
	}
	t.Reason = domain.ThrottleReason(reason)
	t.Severity = int(severity)
	return t, nil
}
