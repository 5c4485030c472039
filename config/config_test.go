package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lightmap/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "lightmap"

	require.NoError(t, applyDefaults(cfg))

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAccessTokenTTL, cfg.SecretKey.AccessTokenTTL)
	assert.Equal(t, constants.StorageDriverPostgres, cfg.Storage.Driver)

	require.NotNil(t, cfg.Marker)
	assert.InDelta(t, 20.0, cfg.Marker.MergeRadiusMeters, 0)
	assert.Equal(t, 3, cfg.Marker.MaxMergeAttempts)
	assert.Equal(t, 18, cfg.Marker.LockZoom)
	assert.Equal(t, constants.LockProviderLocal, cfg.Marker.LockProvider)
	assert.Equal(t, defaultLockTTL, cfg.Marker.LockTTL)

	require.NotNil(t, cfg.Importer)
	assert.Equal(t, defaultGeocoderBaseURL, cfg.Importer.Geocoder.BaseURL)
	assert.Equal(t, "lightmap", cfg.Importer.Geocoder.UserAgent)
	assert.Equal(t, uint32(defaultGeocoderFailureThreshold), cfg.Importer.Geocoder.FailureThreshold)

	require.NotNil(t, cfg.Metrics)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	require.NotNil(t, cfg.Tracing)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage: &StorageConfig{Driver: constants.StorageDriverMemory},
		Marker: &MarkerConfig{
			MergeRadiusMeters: 35,
			MaxMergeAttempts:  5,
			LockZoom:          16,
			LockProvider:      constants.LockProviderRedis,
			LockTTL:           time.Second,
		},
		Metrics: &MetricsConfig{Enabled: false, Path: "/internal/metrics"},
	}

	require.NoError(t, applyDefaults(cfg))

	assert.Equal(t, constants.StorageDriverMemory, cfg.Storage.Driver)
	assert.InDelta(t, 35.0, cfg.Marker.MergeRadiusMeters, 0)
	assert.Equal(t, 5, cfg.Marker.MaxMergeAttempts)
	assert.Equal(t, 16, cfg.Marker.LockZoom)
	assert.Equal(t, constants.LockProviderRedis, cfg.Marker.LockProvider)
	assert.Equal(t, time.Second, cfg.Marker.LockTTL)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_LockZoomBounds(t *testing.T) {
	tests := []struct {
		name     string
		lockZoom int
		wantErr  bool
	}{
		{name: "deepest packable zoom", lockZoom: 28},
		{name: "x and y overflow their key bits", lockZoom: 29, wantErr: true},
		{name: "zoom 32", lockZoom: 32, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Marker: &MarkerConfig{LockZoom: tt.lockZoom}}

			err := applyDefaults(cfg)
			if tt.wantErr {
				assert.ErrorContains(t, err, "marker.lockZoom")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.lockZoom, cfg.Marker.LockZoom)
		})
	}
}

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
env:
  serviceName: lightmap-test
http:
  port: 9090
marker:
  mergeRadiusMeters: 20
  lockTtl: 2s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlContent), 0o600))
	t.Chdir(dir)
	t.Setenv("MARKER_MERGERADIUSMETERS", "25")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "lightmap-test", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Marker)
	assert.InDelta(t, 25.0, cfg.Marker.MergeRadiusMeters, 0)
	assert.Equal(t, 2*time.Second, cfg.Marker.LockTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.ErrorContains(t, err, "absent.yaml not found")
}
