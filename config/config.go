package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"lightmap/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultMergeRadiusMeters = 20.0
	defaultMaxMergeAttempts  = 3
	defaultLockZoom          = 18
	defaultLockTTL           = 5 * time.Second
	defaultAccessTokenTTL    = 15 * time.Minute

	// Lock cell keys pack x and y into 28 bits each.
	maxLockZoom = 28

	defaultGeocoderBaseURL          = "https://nominatim.openstreetmap.org"
	defaultGeocoderRequestsPerSec   = 1.0
	defaultGeocoderTimeout          = 10 * time.Second
	defaultGeocoderFailureThreshold = 5
	defaultGeocoderOpenTimeout      = 30 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Storage selects the persistence backend
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	// Marker configuration for merging observations
	Marker *MarkerConfig `json:"marker" yaml:"marker"`

	// Redis configuration for cluster-wide region locks
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Importer configuration for the CSV importer
	Importer *ImporterConfig `json:"importer" yaml:"importer"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Tracing configuration for OpenTelemetry export
	Tracing *TracingConfig `json:"tracing" yaml:"tracing"`
}

// SecretKeyConfig holds the token signing secrets.
type SecretKeyConfig struct {
	Access         string        `json:"access" yaml:"access"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the persistence backend
type StorageConfig struct {
	// Driver is one of "postgres", "sqlite" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is the database file for the sqlite driver; empty means in-memory
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	// AutoMigrate creates or updates tables on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// MarkerConfig defines how observations are merged
type MarkerConfig struct {
	// Observations closer than this distance merge into one marker
	MergeRadiusMeters float64 `json:"mergeRadiusMeters" yaml:"mergeRadiusMeters"`

	// Attempts of the whole submit before a concurrent-write conflict is surfaced
	MaxMergeAttempts int `json:"maxMergeAttempts" yaml:"maxMergeAttempts"`

	// Web-mercator zoom of the cells used as lock regions
	LockZoom int `json:"lockZoom" yaml:"lockZoom"`

	// Lock provider: "local" (single instance) or "redis" (cluster)
	LockProvider string `json:"lockProvider" yaml:"lockProvider"`

	// Expiry of a redis region lock if its holder dies
	LockTTL time.Duration `json:"lockTtl" yaml:"lockTtl"`
}

// RedisConfig defines the redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// ImporterConfig defines the CSV importer
type ImporterConfig struct {
	// Bucket holding the CSV file, e.g. "file:///data" or "gs://bucket"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Object key of the CSV file inside the bucket
	Key string `json:"key" yaml:"key"`

	Geocoder GeocoderConfig `json:"geocoder" yaml:"geocoder"`
}

// GeocoderConfig defines the Nominatim-compatible geocoder
type GeocoderConfig struct {
	BaseURL           string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent         string        `json:"userAgent" yaml:"userAgent"`
	CountryCodes      string        `json:"countryCodes" yaml:"countryCodes"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`

	// Consecutive failures before the circuit opens
	FailureThreshold uint32 `json:"failureThreshold" yaml:"failureThreshold"`

	// How long the circuit stays open
	OpenTimeout time.Duration `json:"openTimeout" yaml:"openTimeout"`
}

// TracingConfig defines OpenTelemetry span export
type TracingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// OTLP/HTTP collector endpoint, host:port
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Insecure disables TLS towards the collector
	Insecure bool `json:"insecure" yaml:"insecure"`

	// SamplingRate is the fraction of traces kept, 0 to 1
	SamplingRate float64 `json:"samplingRate" yaml:"samplingRate"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never nil-check.
// It rejects values that no default can repair.
func applyDefaults(cfg *Config) error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.SecretKey.AccessTokenTTL <= 0 {
		cfg.SecretKey.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = constants.StorageDriverPostgres
	}

	if cfg.Marker == nil {
		cfg.Marker = &MarkerConfig{}
	}
	if cfg.Marker.MergeRadiusMeters <= 0 {
		cfg.Marker.MergeRadiusMeters = defaultMergeRadiusMeters
	}
	if cfg.Marker.MaxMergeAttempts <= 0 {
		cfg.Marker.MaxMergeAttempts = defaultMaxMergeAttempts
	}
	if cfg.Marker.LockZoom <= 0 {
		cfg.Marker.LockZoom = defaultLockZoom
	}
	if cfg.Marker.LockZoom > maxLockZoom {
		return errors.Errorf("marker.lockZoom %d exceeds the maximum of %d", cfg.Marker.LockZoom, maxLockZoom)
	}
	if cfg.Marker.LockProvider == "" {
		cfg.Marker.LockProvider = constants.LockProviderLocal
	}
	if cfg.Marker.LockTTL <= 0 {
		cfg.Marker.LockTTL = defaultLockTTL
	}

	if cfg.Importer == nil {
		cfg.Importer = &ImporterConfig{}
	}
	geocoder := &cfg.Importer.Geocoder
	if geocoder.BaseURL == "" {
		geocoder.BaseURL = defaultGeocoderBaseURL
	}
	if geocoder.UserAgent == "" {
		geocoder.UserAgent = cfg.Env.ServiceName
	}
	if geocoder.RequestsPerSecond <= 0 {
		geocoder.RequestsPerSecond = defaultGeocoderRequestsPerSec
	}
	if geocoder.Timeout <= 0 {
		geocoder.Timeout = defaultGeocoderTimeout
	}
	if geocoder.FailureThreshold == 0 {
		geocoder.FailureThreshold = defaultGeocoderFailureThreshold
	}
	if geocoder.OpenTimeout <= 0 {
		geocoder.OpenTimeout = defaultGeocoderOpenTimeout
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Tracing == nil {
		cfg.Tracing = &TracingConfig{}
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
