package config

import (
	"time"

	"github.com/heartmarshall/proximity-backend/internal/domain"
)

// Config is the root application configuration.
//
// cleanenv fills env-default into any field still zero after the YAML pass,
// so a zero written in YAML reads as "unset". Switches are therefore
// phrased as Disabled flags, and a deliberate zero for a defaulted number
// (a daily cap of 0, statement_timeout 0) must come from the environment.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	Artifact  ArtifactConfig  `yaml:"artifact"`
	Throttle  ThrottleConfig  `yaml:"throttle"`
	Spoof     SpoofConfig     `yaml:"spoof"`
	IPGeo     IPGeoConfig     `yaml:"ipgeo"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Retention RetentionConfig `yaml:"retention"`
}

// ServerConfig holds the ops listener settings (health, readiness, metrics).
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"30s"`
	ApplicationName   string        `yaml:"application_name"    env:"DATABASE_APPLICATION_NAME"   env-default:"proximity"`
	// StatementTimeout bounds every statement server-side; zero keeps the
	// server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"5s"`
}

// RedisConfig holds the shared cache connection. An empty URL selects the
// in-process cache.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ArtifactConfig holds proximity artifact rules.
type ArtifactConfig struct {
	ChatTTL      time.Duration `yaml:"chat_ttl"       env:"ARTIFACT_CHAT_TTL"       env-default:"45m"`
	BoardPostTTL time.Duration `yaml:"board_post_ttl" env:"ARTIFACT_BOARD_POST_TTL" env-default:"48h"`
	AnnounceTTL  time.Duration `yaml:"announce_ttl"   env:"ARTIFACT_ANNOUNCE_TTL"   env-default:"2h"`

	ChatDailyCap      int `yaml:"chat_daily_cap"       env:"ARTIFACT_CHAT_DAILY_CAP"       env-default:"30"`
	BoardPostDailyCap int `yaml:"board_post_daily_cap" env:"ARTIFACT_BOARD_POST_DAILY_CAP" env-default:"10"`
	AnnounceDailyCap  int `yaml:"announce_daily_cap"   env:"ARTIFACT_ANNOUNCE_DAILY_CAP"   env-default:"15"`

	MinRadiusM     int `yaml:"min_radius_m"     env:"ARTIFACT_MIN_RADIUS_M"     env-default:"100"`
	MaxRadiusM     int `yaml:"max_radius_m"     env:"ARTIFACT_MAX_RADIUS_M"     env-default:"10000"`
	DefaultRadiusM int `yaml:"default_radius_m" env:"ARTIFACT_DEFAULT_RADIUS_M" env-default:"1000"`

	FuzzMinOffsetM float64 `yaml:"fuzz_min_offset_m" env:"ARTIFACT_FUZZ_MIN_OFFSET_M" env-default:"50"`
	FuzzMaxOffsetM float64 `yaml:"fuzz_max_offset_m" env:"ARTIFACT_FUZZ_MAX_OFFSET_M" env-default:"200"`

	MaxContentLength int `yaml:"max_content_length"    env:"ARTIFACT_MAX_CONTENT_LENGTH"    env-default:"500"`
	FlagThreshold    int `yaml:"flag_threshold"        env:"ARTIFACT_FLAG_THRESHOLD"        env-default:"3"`
	QueryLimit       int `yaml:"query_limit"           env:"ARTIFACT_QUERY_LIMIT"           env-default:"100"`
	FeedLimit        int `yaml:"feed_limit"            env:"ARTIFACT_FEED_LIMIT"            env-default:"20"`
	// AutoThrottleDisabled turns off progressive throttling on flags. The
	// switch is negative because cleanenv replaces a zero value with
	// env-default, so a YAML false could never override a true default.
	AutoThrottleDisabled bool `yaml:"auto_throttle_disabled" env:"ARTIFACT_AUTO_THROTTLE_DISABLED"`
}

// TTL returns the lifetime of an artifact of type t.
func (c ArtifactConfig) TTL(t domain.ArtifactType) time.Duration {
	switch t {
	case domain.ArtifactTypeChat:
		return c.ChatTTL
	case domain.ArtifactTypeBoardPost:
		return c.BoardPostTTL
	case domain.ArtifactTypeAnnounce:
		return c.AnnounceTTL
	}
	return 0
}

// DailyCap returns how many artifacts of type t a user may create per UTC day.
func (c ArtifactConfig) DailyCap(t domain.ArtifactType) int {
	switch t {
	case domain.ArtifactTypeChat:
		return c.ChatDailyCap
	case domain.ArtifactTypeBoardPost:
		return c.BoardPostDailyCap
	case domain.ArtifactTypeAnnounce:
		return c.AnnounceDailyCap
	}
	return 0
}

// ThrottleConfig holds shadow throttle defaults and the auto-throttle schedule.
type ThrottleConfig struct {
	DefaultSeverity  int           `yaml:"default_severity"  env:"THROTTLE_DEFAULT_SEVERITY"  env-default:"2"`
	DefaultDuration  time.Duration `yaml:"default_duration"  env:"THROTTLE_DEFAULT_DURATION"  env-default:"24h"`
	BanSeverity      int           `yaml:"ban_severity"      env:"THROTTLE_BAN_SEVERITY"      env-default:"5"`
	SpoofSeverity    int           `yaml:"spoof_severity"    env:"THROTTLE_SPOOF_SEVERITY"    env-default:"3"`
	SpoofDuration    time.Duration `yaml:"spoof_duration"    env:"THROTTLE_SPOOF_DURATION"    env-default:"72h"`
	AutoScheduleRaw  string        `yaml:"auto_schedule"     env:"THROTTLE_AUTO_SCHEDULE"     env-default:"3:2:24h,5:3:72h,10:4:168h"`
	ActiveQueueLimit int           `yaml:"active_queue_limit" env:"THROTTLE_ACTIVE_QUEUE_LIMIT" env-default:"50"`

	// AutoSchedule is parsed from AutoScheduleRaw during validation.
	AutoSchedule []AutoThrottleTier `yaml:"-" env:"-"`
}

// AutoThrottleTier applies Severity for Duration once a user has MinFlagged
// flagged artifacts.
type AutoThrottleTier struct {
	MinFlagged int
	Severity   int
	Duration   time.Duration
}

// SpoofConfig holds geo-spoof rule thresholds and weights.
type SpoofConfig struct {
	IPMismatchKm     float64 `yaml:"ip_mismatch_km"     env:"SPOOF_IP_MISMATCH_KM"     env-default:"500"`
	IPMismatchWeight int     `yaml:"ip_mismatch_weight" env:"SPOOF_IP_MISMATCH_WEIGHT" env-default:"40"`
	IPHighKm         float64 `yaml:"ip_high_km"         env:"SPOOF_IP_HIGH_KM"         env-default:"200"`
	IPHighWeight     int     `yaml:"ip_high_weight"     env:"SPOOF_IP_HIGH_WEIGHT"     env-default:"25"`
	IPModerateKm     float64 `yaml:"ip_moderate_km"     env:"SPOOF_IP_MODERATE_KM"     env-default:"100"`
	IPModerateWeight int     `yaml:"ip_moderate_weight" env:"SPOOF_IP_MODERATE_WEIGHT" env-default:"15"`

	ImpossibleSpeedKmh    float64 `yaml:"impossible_speed_kmh"    env:"SPOOF_IMPOSSIBLE_SPEED_KMH"    env-default:"900"`
	ImpossibleSpeedWeight int     `yaml:"impossible_speed_weight" env:"SPOOF_IMPOSSIBLE_SPEED_WEIGHT" env-default:"50"`
	HighSpeedKmh          float64 `yaml:"high_speed_kmh"          env:"SPOOF_HIGH_SPEED_KMH"          env-default:"500"`
	HighSpeedWeight       int     `yaml:"high_speed_weight"       env:"SPOOF_HIGH_SPEED_WEIGHT"       env-default:"25"`

	FlipJumpKm  float64       `yaml:"flip_jump_km" env:"SPOOF_FLIP_JUMP_KM" env-default:"500"`
	FlipWindow  time.Duration `yaml:"flip_window"  env:"SPOOF_FLIP_WINDOW"  env-default:"24h"`
	FlipWeight  int           `yaml:"flip_weight"  env:"SPOOF_FLIP_WEIGHT"  env-default:"30"`
	FlipHistory int           `yaml:"flip_history" env:"SPOOF_FLIP_HISTORY" env-default:"10"`

	FrequentChanges int           `yaml:"frequent_changes" env:"SPOOF_FREQUENT_CHANGES" env-default:"10"`
	FrequentWindow  time.Duration `yaml:"frequent_window"  env:"SPOOF_FREQUENT_WINDOW"  env-default:"168h"`
	FrequentWeight  int           `yaml:"frequent_weight"  env:"SPOOF_FREQUENT_WEIGHT"  env-default:"10"`

	ProxyWeight      int `yaml:"proxy_weight"      env:"SPOOF_PROXY_WEIGHT"      env-default:"20"`
	DatacenterWeight int `yaml:"datacenter_weight" env:"SPOOF_DATACENTER_WEIGHT" env-default:"15"`

	HighRiskThreshold int           `yaml:"high_risk_threshold" env:"SPOOF_HIGH_RISK_THRESHOLD" env-default:"50"`
	MinObservationGap time.Duration `yaml:"min_observation_gap" env:"SPOOF_MIN_OBSERVATION_GAP" env-default:"5m"`
}

// IPGeoConfig holds the IP geolocation provider settings.
type IPGeoConfig struct {
	Disabled  bool          `yaml:"disabled"   env:"IPGEO_DISABLED"`
	BaseURL   string        `yaml:"base_url"   env:"IPGEO_BASE_URL"   env-default:"http://ip-api.com/json"`
	Timeout   time.Duration `yaml:"timeout"    env:"IPGEO_TIMEOUT"    env-default:"10s"`
	CacheTTL  time.Duration `yaml:"cache_ttl"  env:"IPGEO_CACHE_TTL"  env-default:"1h"`
	CacheSize int           `yaml:"cache_size" env:"IPGEO_CACHE_SIZE" env-default:"10000"`
}

// MetricsConfig controls the /metrics endpoint on the ops server.
type MetricsConfig struct {
	Disabled bool `yaml:"disabled" env:"METRICS_DISABLED"`
}

// Enabled reports whether /metrics is served.
func (c MetricsConfig) Enabled() bool { return !c.Disabled }

// Enabled reports whether IP addresses are resolved for spoof detection.
func (c IPGeoConfig) Enabled() bool { return !c.Disabled }

// AutoThrottle reports whether flag escalations throttle repeat offenders.
func (c ArtifactConfig) AutoThrottle() bool { return !c.AutoThrottleDisabled }

// RetentionConfig controls how long expired rows are kept before the cleanup
// command deletes them.
type RetentionConfig struct {
	ExpiredArtifacts time.Duration `yaml:"expired_artifacts" env:"RETENTION_EXPIRED_ARTIFACTS" env-default:"720h"`
	ExpiredThrottles time.Duration `yaml:"expired_throttles" env:"RETENTION_EXPIRED_THROTTLES" env-default:"2160h"`
}
