package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	NSQ          NSQConfig
	JWT          JWTConfig
	Tracking     TrackingConfig
	Safety       SafetyConfig
	Notification NotificationConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ producer/consumer configuration
type NSQConfig struct {
	NSQDAddress    string
	LookupdAddress string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret            string
	Issuer            string
	ExpirationMinutes int
}

// TrackingConfig contains location tracking configuration
type TrackingConfig struct {
	CacheTTLSeconds      int     // driver location record TTL
	StaleAfterSeconds    int     // age after which a cached record is flagged stale
	FlushIntervalSeconds int     // batch buffer periodic flush interval
	FlushThreshold       int     // batch buffer size triggering an immediate flush
	HistoryLimitPerTrip  int     // bounded per-trip history entries
	ProximityRadiusM     float64 // distance that triggers a trip:proximity event
	SessionWindowSeconds int     // how long a disconnect record stays recoverable
}

// SafetyConfig contains stationary detection and escalation configuration
type SafetyConfig struct {
	StationaryRadiusM      float64 // movement threshold from the stationary baseline
	StationaryAfterMinutes int     // stillness duration before a safety check
	EscalationDelayMinutes int     // unanswered safety check escalation delay
	SOSTrackIntervalSec    int     // continuous tracking tick while an SOS is open
	StopMinDurationSec     int     // minimum dwell time for an identified journey stop
}

// NotificationConfig contains the notification collaborator configuration
type NotificationConfig struct {
	ServiceURL string // voice callback collaborator
	APIKey     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
