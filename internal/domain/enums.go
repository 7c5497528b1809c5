package domain

// ArtifactType identifies the kind of proximity artifact.
type ArtifactType string

const (
	ArtifactTypeChat      ArtifactType = "chat"
	ArtifactTypeBoardPost ArtifactType = "board_post"
	ArtifactTypeAnnounce  ArtifactType = "announce"
)

func (t ArtifactType) String() string { return string(t) }

func (t ArtifactType) IsValid() bool {
	switch t {
	case ArtifactTypeChat, ArtifactTypeBoardPost, ArtifactTypeAnnounce:
		return true
	}
	return false
}

// AllArtifactTypes lists every supported artifact type.
func AllArtifactTypes() []ArtifactType {
	return []ArtifactType{ArtifactTypeChat, ArtifactTypeBoardPost, ArtifactTypeAnnounce}
}

// ArtifactState is the moderation state of an artifact. Active, Flagged and
// Removed are persisted; Expired is derived from ExpiresAt at read time.
type ArtifactState string

const (
	ArtifactStateActive  ArtifactState = "active"
	ArtifactStateFlagged ArtifactState = "flagged"
	ArtifactStateRemoved ArtifactState = "removed"
	ArtifactStateExpired ArtifactState = "expired"
)

func (s ArtifactState) String() string { return string(s) }

func (s ArtifactState) IsValid() bool {
	switch s {
	case ArtifactStateActive, ArtifactStateFlagged, ArtifactStateRemoved, ArtifactStateExpired:
		return true
	}
	return false
}

// IsPersisted reports whether the state can be stored in the state column.
func (s ArtifactState) IsPersisted() bool {
	switch s {
	case ArtifactStateActive, ArtifactStateFlagged, ArtifactStateRemoved:
		return true
	}
	return false
}

// CanTransitionTo reports whether the moderation state machine allows s -> next.
//
//	active  -> flagged | removed
//	flagged -> active  | removed
//	removed -> (terminal)
func (s ArtifactState) CanTransitionTo(next ArtifactState) bool {
	switch s {
	case ArtifactStateActive:
		return next == ArtifactStateFlagged || next == ArtifactStateRemoved
	case ArtifactStateFlagged:
		return next == ArtifactStateActive || next == ArtifactStateRemoved
	}
	return false
}

// ThrottleReason is the category recorded on a shadow throttle.
type ThrottleReason string

const (
	ThrottleReasonSpam           ThrottleReason = "spam"
	ThrottleReasonFlaggedContent ThrottleReason = "flagged_content"
	ThrottleReasonGeoSpoof       ThrottleReason = "geo_spoof"
	ThrottleReasonRapidPosting   ThrottleReason = "rapid_posting"
	ThrottleReasonManual         ThrottleReason = "manual"
)

func (r ThrottleReason) String() string { return string(r) }

func (r ThrottleReason) IsValid() bool {
	switch r {
	case ThrottleReasonSpam, ThrottleReasonFlaggedContent, ThrottleReasonGeoSpoof,
		ThrottleReasonRapidPosting, ThrottleReasonManual:
		return true
	}
	return false
}

// ModerationDecision is a moderator's verdict on an artifact.
type ModerationDecision string

const (
	DecisionApprove      ModerationDecision = "approve"
	DecisionRemove       ModerationDecision = "remove"
	DecisionThrottleUser ModerationDecision = "throttle_user"
	DecisionBanUser      ModerationDecision = "ban_user"
)

func (d ModerationDecision) String() string { return string(d) }

func (d ModerationDecision) IsValid() bool {
	switch d {
	case DecisionApprove, DecisionRemove, DecisionThrottleUser, DecisionBanUser:
		return true
	}
	return false
}

// SpoofReviewAction is a moderator's verdict on a geo-spoof detection.
type SpoofReviewAction string

const (
	SpoofReviewConfirm SpoofReviewAction = "confirm"
	SpoofReviewDismiss SpoofReviewAction = "dismiss"
)

func (a SpoofReviewAction) String() string { return string(a) }

func (a SpoofReviewAction) IsValid() bool {
	return a == SpoofReviewConfirm || a == SpoofReviewDismiss
}

// UserRole represents the authorization level of an actor.
type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

// CanModerate reports whether the role may take moderation decisions.
func (r UserRole) CanModerate() bool {
	return r == UserRoleModerator || r == UserRoleAdmin
}
