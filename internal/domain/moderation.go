package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActionType names a moderation action. It is an open set: new values can be
// written without a schema change, the constants below are the ones the core
// itself emits.
type ActionType string

const (
	ActionFlagReview      ActionType = "flag_review"
	ActionContentRemoval  ActionType = "content_removal"
	ActionShadowThrottle  ActionType = "shadow_throttle"
	ActionAccountBan      ActionType = "account_ban"
	ActionGeoSpoofConfirm ActionType = "geo_spoof_confirm"
	ActionGeoSpoofDismiss ActionType = "geo_spoof_dismiss"
	ActionAutoFlag        ActionType = "auto_flag"
	ActionAutoThrottle    ActionType = "auto_throttle"
	ActionOwnerRemoval    ActionType = "owner_removal"
	ActionThrottleRemoved ActionType = "throttle_removed"
)

func (t ActionType) String() string { return string(t) }

// ActionMetadata is the structured payload of a ModerationAction. Known
// fields are typed; anything else goes into Extra.
type ActionMetadata struct {
	Decision        string         `json:"decision,omitempty"`
	PreviousState   ArtifactState  `json:"previous_state,omitempty"`
	NewState        ArtifactState  `json:"new_state,omitempty"`
	FlagCount       *int           `json:"flag_count,omitempty"`
	ThrottleID      *uuid.UUID     `json:"throttle_id,omitempty"`
	Severity        *int           `json:"severity,omitempty"`
	DurationHours   *int           `json:"duration_hours,omitempty"`
	DetectionID     *uuid.UUID     `json:"detection_id,omitempty"`
	SuspicionScore  *int           `json:"suspicion_score,omitempty"`
	ThrottleApplied *bool          `json:"throttle_applied,omitempty"`
	Extra           map[string]any `json:"extra,omitempty"`
}

// ModerationAction is an immutable audit record of a moderation transition.
type ModerationAction struct {
	ID               uuid.UUID
	ModeratorID      *uuid.UUID // nil for system-triggered transitions
	TargetUserID     *uuid.UUID
	TargetArtifactID *uuid.UUID
	ActionType       ActionType
	Reason           string
	Metadata         ActionMetadata
	CreatedAt        time.Time
}

// IsSystem reports whether the action was taken automatically.
func (a *ModerationAction) IsSystem() bool {
	return a.ModeratorID == nil
}

// ModerationDashboard aggregates the moderator overview.
type ModerationDashboard struct {
	FlaggedArtifacts       int
	ActiveThrottles        int
	PendingSpoofDetections int
	ActionsToday           int
	RecentActions          []ModerationAction
}

// UserModerationProfile is everything a moderator sees about one user.
type UserModerationProfile struct {
	UserID           uuid.UUID
	ThrottleStats    ThrottleStats
	SpoofStats       SpoofStats
	FlaggedArtifacts int
	TotalArtifacts   int
	RecentDetections []GeoSpoofDetection
	RecentActions    []ModerationAction
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }

// UUIDPtr returns a pointer to v.
func UUIDPtr(v uuid.UUID) *uuid.UUID { return &v }

// ActionFilter narrows a moderation history listing. Nil fields do not
// constrain the result.
type ActionFilter struct {
	TargetUserID     *uuid.UUID
	TargetArtifactID *uuid.UUID
	Since            *time.Time
}
