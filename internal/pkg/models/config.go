package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	Services ServicesConfig
	Timeouts TimeoutsConfig
	Probe    ProbeConfig
	Geocode  GeocodeConfig
	Device   DeviceConfig
	Files    FilesConfig
	Cache    CacheConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains the serve-mode HTTP listener configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration. An empty Host disables caching.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// ServicesConfig contains base URLs for the third-party services
type ServicesConfig struct {
	IPAPIURL     string
	NominatimURL string
	OSRMURL      string
	UserAgent    string
}

// TimeoutsConfig bounds every outbound call
type TimeoutsConfig struct {
	Probe          time.Duration
	IPLookup       time.Duration
	Geocode        time.Duration
	Route          time.Duration
	DeviceLocation time.Duration
}

// ProbeConfig contains the connectivity probe target
type ProbeConfig struct {
	Address string
}

// GeocodeConfig contains the geocoding retry policy
type GeocodeConfig struct {
	Attempts int
	Backoff  time.Duration
}

// DeviceConfig contains the device-location handoff tuning
type DeviceConfig struct {
	PollInterval  time.Duration
	HelperTimeout time.Duration
	MaxFixAge     time.Duration
}

// FilesConfig contains the fixed file locations
type FilesConfig struct {
	MapFile     string
	FixFile     string
	LastFixFile string
}

// CacheConfig contains the TTL of the redis-backed route cache
type CacheConfig struct {
	RouteTTL time.Duration
}

// LoggerConfig contains log output configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
