package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/routefinder/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil && !os.IsNotExist(err) {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "routefinder")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "development")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "127.0.0.1")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8765)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 4)

	// Third-party services
	configs.Services.IPAPIURL = GetEnv("IP_API_URL", "http://ip-api.com")
	configs.Services.NominatimURL = GetEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	configs.Services.OSRMURL = GetEnv("OSRM_URL", "https://router.project-osrm.org")
	configs.Services.UserAgent = GetEnv("HTTP_USER_AGENT", "routefinder/1.0")

	// Timeouts
	configs.Timeouts.Probe = GetEnvAsDuration("PROBE_TIMEOUT", 2*time.Second)
	configs.Timeouts.IPLookup = GetEnvAsDuration("IP_LOOKUP_TIMEOUT", 4*time.Second)
	configs.Timeouts.Geocode = GetEnvAsDuration("GEOCODE_TIMEOUT", 6*time.Second)
	configs.Timeouts.Route = GetEnvAsDuration("ROUTE_TIMEOUT", 8*time.Second)
	configs.Timeouts.DeviceLocation = GetEnvAsDuration("DEVICE_LOCATION_TIMEOUT", 10*time.Second)

	// Connectivity probe
	configs.Probe.Address = GetEnv("PROBE_ADDRESS", "8.8.8.8:53")

	// Geocoding retry policy
	configs.Geocode.Attempts = GetEnvAsInt("GEOCODE_ATTEMPTS", 3)
	configs.Geocode.Backoff = GetEnvAsDuration("GEOCODE_BACKOFF", 2*time.Second)

	// Device location handoff
	configs.Device.PollInterval = GetEnvAsDuration("DEVICE_POLL_INTERVAL", 250*time.Millisecond)
	configs.Device.HelperTimeout = GetEnvAsDuration("DEVICE_HELPER_TIMEOUT", 10*time.Second)
	configs.Device.MaxFixAge = GetEnvAsDuration("DEVICE_MAX_FIX_AGE", 0)

	// Files
	configs.Files.MapFile = absPath(GetEnv("MAP_FILE", "map.html"))
	configs.Files.FixFile = GetEnv("FIX_FILE", filepath.Join(os.TempDir(), "routefinder_user_loc.json"))
	configs.Files.LastFixFile = GetEnv("LAST_FIX_FILE", filepath.Join(os.TempDir(), "routefinder_last_fix.json"))

	// Cache TTLs
	configs.Cache.RouteTTL = GetEnvAsDuration("ROUTE_CACHE_TTL", time.Hour)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/routefinder.log")

	return configs
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("250ms", "2s") or a bare number of seconds
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	if secs := GetEnvAsFloat(key, -1); secs >= 0 {
		return time.Duration(secs * float64(time.Second))
	}

	log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
	return defaultValue
}
