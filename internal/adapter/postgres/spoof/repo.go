// Package spoof implements the geo-spoof detection repository using PostgreSQL.
package spoof

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

const table = "geo_spoof_detections"

var columns = []string{
	"id", "user_id", "ip_address", "reported_lat", "reported_lng", "ip_lat", "ip_lng",
	"distance_km", "velocity_kmh", "suspicion_score", "flags", "is_confirmed_spoof",
	"dismissed", "dismissed_at", "detected_at",
}

// Repo provides detection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new spoof detection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// pending selects detections still awaiting review.
func pending(threshold int) sq.Sqlizer {
	return sq.And{
		sq.Eq{"is_confirmed_spoof": false},
		sq.Eq{"dismissed": false},
		sq.GtOrEq{"suspicion_score": threshold},
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a detection.
func (r *Repo) Create(ctx context.Context, d domain.GeoSpoofDetection) (domain.GeoSpoofDetection, error) {
	var ipLat, ipLng *float64
	if d.IPLocation != nil {
		ipLat, ipLng = &d.IPLocation.Lat, &d.IPLocation.Lng
	}
	var ip *string
	if d.IPAddress != "" {
		ip = &d.IPAddress
	}
	flags := d.Flags
	if flags == nil {
		flags = []string{}
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.UserID, ip, d.Reported.Lat, d.Reported.Lng, ipLat, ipLng,
			d.DistanceKm, d.VelocityKmh, d.SuspicionScore, flags, d.IsConfirmedSpoof,
			d.Dismissed, d.DismissedAt, d.DetectedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.GeoSpoofDetection{}, fmt.Errorf("build insert detection: %w", err)
	}

	created, err := scanDetection(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.GeoSpoofDetection{}, postgres.MapError(err, "geo_spoof_detection", d.ID)
	}
	return created, nil
}

// MarkConfirmed sets is_confirmed_spoof.
func (r *Repo) MarkConfirmed(ctx context.Context, id uuid.UUID) (domain.GeoSpoofDetection, error) {
	return r.update(ctx, id, postgres.Builder.Update(table).Set("is_confirmed_spoof", true))
}

// MarkDismissed flags the detection as dismissed. The score is kept.
func (r *Repo) MarkDismissed(ctx context.Context, id uuid.UUID, now time.Time) (domain.GeoSpoofDetection, error) {
	return r.update(ctx, id, postgres.Builder.Update(table).Set("dismissed", true).Set("dismissed_at", now))
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, b sq.UpdateBuilder) (domain.GeoSpoofDetection, error) {
	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.GeoSpoofDetection{}, fmt.Errorf("build update detection: %w", err)
	}

	d, err := scanDetection(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.GeoSpoofDetection{}, postgres.MapError(err, "geo_spoof_detection", id)
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByIDForUpdate locks the detection for the rest of the transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.GeoSpoofDetection, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return domain.GeoSpoofDetection{}, fmt.Errorf("build lock detection: %w", err)
	}

	d, err := scanDetection(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.GeoSpoofDetection{}, postgres.MapError(err, "geo_spoof_detection", id)
	}
	return d, nil
}

// ListByUser returns the user's detections detected at or after since,
// newest first. A zero since returns the whole history.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]domain.GeoSpoofDetection, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("detected_at DESC", "id")
	if !since.IsZero() {
		b = b.Where(sq.GtOrEq{"detected_at": since})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return r.list(ctx, b)
}

// CountSince returns how many detections the user had at or after since.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"detected_at": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count detections: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "geo_spoof_detection count for user", userID)
	}
	return n, nil
}

// Counts aggregates the user's detections. HighRisk excludes dismissed rows.
func (r *Repo) Counts(ctx context.Context, userID uuid.UUID, threshold int) (domain.SpoofCounts, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		Column(sq.Expr("count(*) FILTER (WHERE suspicion_score >= ? AND NOT dismissed)", threshold)).
		Column("count(*) FILTER (WHERE is_confirmed_spoof)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.SpoofCounts{}, fmt.Errorf("build detection counts: %w", err)
	}

	var c domain.SpoofCounts
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&c.Total, &c.HighRisk, &c.Confirmed); err != nil {
		return domain.SpoofCounts{}, postgres.MapError(err, "geo_spoof_detection counts for user", userID)
	}
	return c, nil
}

// ListPending returns the review queue: unconfirmed, not dismissed detections
// scoring at least threshold, highest score first.
func (r *Repo) ListPending(ctx context.Context, threshold, limit, offset int) ([]domain.GeoSpoofDetection, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(pending(threshold)).
		OrderBy("suspicion_score DESC", "detected_at DESC", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return r.list(ctx, b)
}

// CountPending returns the size of the review queue.
func (r *Repo) CountPending(ctx context.Context, threshold int) (int, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(pending(threshold)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count pending detections: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pending detections: %w", err)
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.GeoSpoofDetection, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list detections: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list detections: %w", err)
	}
	defer rows.Close()

	var out []domain.GeoSpoofDetection
	for rows.Next() {
		d, err := scanDetection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan detection: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate detections: %w", err)
	}
	return out, nil
}

func scanDetection(row pgx.Row) (domain.GeoSpoofDetection, error) {
	var (
		d            domain.GeoSpoofDetection
		ip           *string
		ipLat, ipLng *float64
		score        int16
	)
	err := row.Scan(
		&d.ID, &d.UserID, &ip, &d.Reported.Lat, &d.Reported.Lng, &ipLat, &ipLng,
		&d.DistanceKm, &d.VelocityKmh, &score, &d.Flags, &d.IsConfirmedSpoof,
		&d.Dismissed, &d.DismissedAt, &d.DetectedAt,
	)
	if err != nil {
		return domain.GeoSpoofDetection{}, err
	}
	if ip != nil {
		d.IPAddress = *ip
	}
	if ipLat != nil && ipLng != nil {
		d.IPLocation = &geo.Point{Lat: *ipLat, Lng: *ipLng}
	}
	d.SuspicionScore = int(score)
	return d, nil
}
