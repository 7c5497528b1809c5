// Package moderation implements the moderation action repository using PostgreSQL.
// It provides append-only operations; the table rejects UPDATE and DELETE.
package moderation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/proximity-backend/internal/adapter/postgres"
	"github.com/heartmarshall/proximity-backend/internal/domain"
)

const table = "moderation_actions"

var columns = []string{
	"id", "moderator_id", "target_user_id", "target_artifact_id",
	"action_type", "reason", "metadata", "created_at",
}

// Repo provides moderation action persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new moderation action repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends an action and returns the persisted record.
func (r *Repo) Create(ctx context.Context, a domain.ModerationAction) (domain.ModerationAction, error) {
	meta, err := json.Marshal(a.Metadata)
	if err != nil {
		return domain.ModerationAction{}, fmt.Errorf("moderation_action marshal metadata: %w", err)
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.ModeratorID, a.TargetUserID, a.TargetArtifactID,
			string(a.ActionType), a.Reason, meta, a.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ModerationAction{}, fmt.Errorf("build insert moderation_action: %w", err)
	}

	created, err := scanAction(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ModerationAction{}, postgres.MapError(err, "moderation_action", a.ID)
	}
	return created, nil
}

// List returns actions matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.ActionFilter, limit, offset int) ([]domain.ModerationAction, error) {
	b := applyFilter(postgres.Builder.Select(columns...).From(table), f).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list moderation_actions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list moderation_actions: %w", err)
	}
	defer rows.Close()

	var out []domain.ModerationAction
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan moderation_action: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moderation_actions: %w", err)
	}
	return out, nil
}

// Count returns the number of actions matching f.
func (r *Repo) Count(ctx context.Context, f domain.ActionFilter) (int, error) {
	query, args, err := applyFilter(postgres.Builder.Select("count(*)").From(table), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count moderation_actions: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count moderation_actions: %w", err)
	}
	return n, nil
}

// CountSince returns the number of actions created at or after since.
func (r *Repo) CountSince(ctx context.Context, since time.Time) (int, error) {
	return r.Count(ctx, domain.ActionFilter{Since: &since})
}

func applyFilter(b sq.SelectBuilder, f domain.ActionFilter) sq.SelectBuilder {
	if f.TargetUserID != nil {
		b = b.Where(sq.Eq{"target_user_id": *f.TargetUserID})
	}
	if f.TargetArtifactID != nil {
		b = b.Where(sq.Eq{"target_artifact_id": *f.TargetArtifactID})
	}
	if f.Since != nil {
		b = b.Where(sq.GtOrEq{"created_at": *f.Since})
	}
	return b
}

func scanAction(row pgx.Row) (domain.ModerationAction, error) {
	var (
		a          domain.ModerationAction
		actionType string
		meta       []byte
	)
	err := row.Scan(&a.ID, &a.ModeratorID, &a.TargetUserID, &a.TargetArtifactID,
		&actionType, &a.Reason, &meta, &a.CreatedAt)
	if err != nil {
		return domain.ModerationAction{}, err
	}
	a.ActionType = domain.ActionType(actionType)

	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &a.Metadata); err != nil {
			return domain.ModerationAction{}, fmt.Errorf("moderation_action %s unmarshal metadata: %w", a.ID, err)
		}
	}
	return a, nil
}
