// Package artifact implements the proximity artifact repository using
// PostgreSQL. The true coordinate is written on insert and only read back by
// the locking moderation lookup.
package artifact

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
	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

const table = "proximity_artifacts"

var publicColumns = []string{
	"id", "owner_id", "type", "content", "lat", "lng", "visibility_radius_m",
	"state", "flag_count", "flagged_at", "created_at", "expires_at", "removed_at",
}

// incrementFlagSQL bumps flag_count and performs the one-time active -> flagged
// transition. prev locks the row and captures flagged_at before the update so
// the caller learns whether this increment was the crossing one.
var incrementFlagSQL = `
WITH prev AS (
    SELECT id, flagged_at FROM ` + table + `
    WHERE id = $1 AND state <> 'removed' AND expires_at > $3
    FOR UPDATE
)
UPDATE ` + table + ` a SET
    flag_count = a.flag_count + 1,
    state = CASE WHEN a.state = 'active' AND a.flagged_at IS NULL AND a.flag_count + 1 >= $2
                 THEN 'flagged' ELSE a.state END,
    flagged_at = CASE WHEN a.state = 'active' AND a.flagged_at IS NULL AND a.flag_count + 1 >= $2
                 THEN $3 ELSE a.flagged_at END
FROM prev
WHERE a.id = prev.id
RETURNING ` + prefixed("a.", publicColumns) + `, (prev.flagged_at IS NULL AND a.flagged_at IS NOT NULL) AS escalated`

// Repo provides artifact persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new artifact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new artifact. TrueLocation is required.
func (r *Repo) Create(ctx context.Context, a domain.ProximityArtifact) (domain.ProximityArtifact, error) {
	if a.TrueLocation == nil {
		return domain.ProximityArtifact{}, fmt.Errorf("artifact %s: %w", a.ID, domain.NewValidationError("location", "true location is required"))
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "owner_id", "type", "content", "true_lat", "true_lng", "lat", "lng",
			"visibility_radius_m", "state", "flag_count", "created_at", "expires_at").
		Values(a.ID, a.OwnerID, string(a.Type), a.Content, a.TrueLocation.Lat, a.TrueLocation.Lng,
			a.Location.Lat, a.Location.Lng, a.VisibilityRadiusM, string(a.State), a.FlagCount,
			a.CreatedAt, a.ExpiresAt).
		Suffix("RETURNING " + strings.Join(publicColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.ProximityArtifact{}, fmt.Errorf("build insert artifact: %w", err)
	}

	created, err := scanArtifact(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ProximityArtifact{}, postgres.MapError(err, "artifact", a.ID)
	}
	loc := *a.TrueLocation
	created.TrueLocation = &loc

	return created, nil
}

// IncrementFlag atomically adds one flag to a non-removed, non-expired
// artifact. Escalated is true only for the increment that moved it from
// active to flagged.
func (r *Repo) IncrementFlag(ctx context.Context, id uuid.UUID, threshold int, now time.Time) (domain.FlagResult, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, incrementFlagSQL, id, threshold, now)

	var res domain.FlagResult
	a, err := scanArtifact(row, &res.Escalated)
	if err != nil {
		return domain.FlagResult{}, postgres.MapError(err, "artifact", id)
	}
	res.Artifact = a

	return res, nil
}

// UpdateState writes a new persisted state. Transition legality is checked by
// the caller under GetByIDForUpdate.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, state domain.ArtifactState, now time.Time) (domain.ProximityArtifact, error) {
	if !state.IsPersisted() {
		return domain.ProximityArtifact{}, fmt.Errorf("artifact %s: state %q: %w", id, state, domain.ErrValidation)
	}

	b := postgres.Builder.
		Update(table).
		Set("state", string(state)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(publicColumns, ", "))
	if state == domain.ArtifactStateRemoved {
		b = b.Set("removed_at", now)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return domain.ProximityArtifact{}, fmt.Errorf("build update artifact state: %w", err)
	}

	a, err := scanArtifact(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ProximityArtifact{}, postgres.MapError(err, "artifact", id)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the artifact regardless of state. The true location is not
// loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.ProximityArtifact, error) {
	query, args, err := postgres.Builder.
		Select(publicColumns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.ProximityArtifact{}, fmt.Errorf("build get artifact: %w", err)
	}

	a, err := scanArtifact(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ProximityArtifact{}, postgres.MapError(err, "artifact", id)
	}
	return a, nil
}

// GetByIDForUpdate locks the row for the rest of the transaction and loads
// the true location for moderators.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.ProximityArtifact, error) {
	query, args, err := postgres.Builder.
		Select(append(append([]string{}, publicColumns...), "true_lat", "true_lng")...).
		From(table).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return domain.ProximityArtifact{}, fmt.Errorf("build lock artifact: %w", err)
	}

	var trueLoc geo.Point
	a, err := scanArtifact(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...), &trueLoc.Lat, &trueLoc.Lng)
	if err != nil {
		return domain.ProximityArtifact{}, postgres.MapError(err, "artifact", id)
	}
	a.TrueLocation = &trueLoc

	return a, nil
}

// Find returns artifacts matching q. The true location is never loaded.
func (r *Repo) Find(ctx context.Context, q domain.ArtifactQuery) ([]domain.ProximityArtifact, error) {
	b := applyQuery(postgres.Builder.Select(publicColumns...).From(table), q)
	if q.OrderByFlags {
		b = b.OrderBy("flag_count DESC")
	}
	b = b.OrderBy("created_at DESC", "id")
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}
	if q.Offset > 0 {
		b = b.Offset(uint64(q.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find artifacts: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find artifacts: %w", err)
	}
	defer rows.Close()

	var out []domain.ProximityArtifact
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artifacts: %w", err)
	}

	return out, nil
}

// Count returns how many artifacts match q. Paging and ordering are ignored.
func (r *Repo) Count(ctx context.Context, q domain.ArtifactQuery) (int, error) {
	query, args, err := applyQuery(postgres.Builder.Select("count(*)").From(table), q).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count artifacts: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count artifacts: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Query translation
// ---------------------------------------------------------------------------

// applyQuery translates the predicates of q into WHERE clauses. It mirrors
// domain.ArtifactQuery.Matches.
func applyQuery(b sq.SelectBuilder, q domain.ArtifactQuery) sq.SelectBuilder {
	if q.VisibleAt != nil {
		b = b.Where(sq.Gt{"expires_at": *q.VisibleAt})
	}
	if q.Box != nil {
		b = b.Where(sq.GtOrEq{"lat": q.Box.MinLat}).Where(sq.LtOrEq{"lat": q.Box.MaxLat})
		if q.Box.CrossesAntimeridian() {
			b = b.Where(sq.Or{sq.GtOrEq{"lng": q.Box.MinLng}, sq.LtOrEq{"lng": q.Box.MaxLng}})
		} else {
			b = b.Where(sq.GtOrEq{"lng": q.Box.MinLng}).Where(sq.LtOrEq{"lng": q.Box.MaxLng})
		}
	}
	if q.Type != nil {
		b = b.Where(sq.Eq{"type": string(*q.Type)})
	}
	if q.OwnerID != nil {
		b = b.Where(sq.Eq{"owner_id": *q.OwnerID})
	}
	if len(q.States) > 0 {
		states := make([]string, len(q.States))
		for i, s := range q.States {
			states[i] = string(s)
		}
		b = b.Where(sq.Eq{"state": states})
	}
	if q.CreatedSince != nil {
		b = b.Where(sq.GtOrEq{"created_at": *q.CreatedSince})
	}
	return b
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

// scanArtifact reads publicColumns followed by any extra destinations.
func scanArtifact(row pgx.Row, extra ...any) (domain.ProximityArtifact, error) {
	var (
		a          domain.ProximityArtifact
		typ, state string
		lat, lng   float64
		radius     int32
		flagCount  int32
	)
	dest := []any{
		&a.ID, &a.OwnerID, &typ, &a.Content, &lat, &lng, &radius,
		&state, &flagCount, &a.FlaggedAt, &a.CreatedAt, &a.ExpiresAt, &a.RemovedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return domain.ProximityArtifact{}, err
	}

	a.Type = domain.ArtifactType(typ)
	a.State = domain.ArtifactState(state)
	a.Location = geo.Point{Lat: lat, Lng: lng}
	a.VisibilityRadiusM = int(radius)
	a.FlagCount = int(flagCount)

	return a, nil
}

func prefixed(prefix string, cols []string) string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = prefix + c
	}
	return strings.Join(out, ", ")
}

// DeleteExpiredBefore removes artifacts that expired at or before cutoff.
// Artifacts referenced by the audit trail are kept.
func (r *Repo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.LtOrEq{"expires_at": cutoff}).
		Where("NOT EXISTS (SELECT 1 FROM moderation_actions m WHERE m.target_artifact_id = " + table + ".id)").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired artifacts: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired artifacts: %w", err)
	}
	return tag.RowsAffected(), nil
}
