package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_FollowsYAMLCasing(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"carbon": map[string]any{
			"ecoDiscount":  "0.7",
			"maxEcoPoints": 100,
		},
		"dashboard": map[string]any{
			"activityLimit": 10,
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
		{envKey: "CARBON_ECODISCOUNT", want: "carbon.ecoDiscount"},
		{envKey: "CARBON_MAXECOPOINTS", want: "carbon.maxEcoPoints"},
		{envKey: "DASHBOARD_ACTIVITYLIMIT", want: "dashboard.activityLimit"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SEED__ENABLED", want: "seed.enabled"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAccessTTL, cfg.SecretKey.AccessTTL)
	require.NotNil(t, cfg.Carbon)
	assert.Empty(t, cfg.Carbon.EcoDiscount)
	require.NotNil(t, cfg.Dashboard)
	assert.Equal(t, defaultActivityLimit, cfg.Dashboard.ActivityLimit)
	assert.Equal(t, defaultQueryTimeout, cfg.Dashboard.QueryTimeout)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.Seed)
}

func TestLoadWithEnv_OverridesYAMLFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := `
http:
  port: 8080
carbon:
  emissionFactor: "0.1"
  ecoDiscount: "0.7"
dashboard:
  activityLimit: 10
  queryTimeout: 3s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Chdir(dir)
	t.Setenv("CARBON_ECODISCOUNT", "0.5")
	t.Setenv("DASHBOARD_ACTIVITYLIMIT", "25")

	cfg, err := LoadWithEnv[Config]("config")

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.1", cfg.Carbon.EmissionFactor)
	assert.Equal(t, "0.5", cfg.Carbon.EcoDiscount)
	assert.Equal(t, 25, cfg.Dashboard.ActivityLimit)
	assert.Equal(t, 3*time.Second, cfg.Dashboard.QueryTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}
