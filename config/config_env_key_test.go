package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoding": map[string]any{
			"reverseBaseUrl": "",
			"apiKey":         "",
		},
		"search": map[string]any{
			"maxRadius": 5000,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOCODING_APIKEY", want: "geocoding.apiKey"},
		{envKey: "GEOCODING_REVERSEBASEURL", want: "geocoding.reverseBaseUrl"},
		{envKey: "SEARCH_MAXRADIUS", want: "search.maxRadius"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_YAMLWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: test
  serviceName: storeradar
http:
  port: 8080
search:
  defaultRadius: 200
  maxRadius: 5000
geocoding:
  timeout: 3s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.yaml"), []byte(yamlBody), 0o600))

	t.Setenv("SEARCH_MAXRADIUS", "750")
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("sample")
	require.NoError(t, err)

	assert.Equal(t, "storeradar", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Search)
	assert.InDelta(t, 200.0, cfg.Search.DefaultRadius, 1e-9)
	assert.InDelta(t, 750.0, cfg.Search.MaxRadius, 1e-9)
	require.NotNil(t, cfg.Geocoding)
	assert.Equal(t, 3*time.Second, cfg.Geocoding.Timeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
