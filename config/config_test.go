package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: console
  log:
    level: debug
http:
  port: 3003
upstream:
  baseURL: http://marketplace.local/api/
  subscriptionTimeout: 2s
storage:
  url: mem://
`

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "3002")
	t.Setenv("UPSTREAM_BASEURL", "http://override.local/")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	cfg.applyDefaults()

	assert.Equal(t, 3002, cfg.HTTP.Port)
	assert.Equal(t, "http://override.local", cfg.Upstream.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Upstream.SubscriptionTimeout)
	assert.Equal(t, defaultUpstreamTimeout, cfg.Upstream.Timeout)
	assert.Equal(t, "console", cfg.Env.ServiceName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.NotNil(t, cfg.Upstream)
	require.NotNil(t, cfg.Storage)
	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, defaultStorageURL, cfg.Storage.URL)
	assert.Equal(t, defaultSubscriptionTimeout, cfg.Upstream.SubscriptionTimeout)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.False(t, cfg.Metrics.Enabled)
	require.NotNil(t, cfg.Audit)
	assert.Equal(t, defaultAuditPrefix, cfg.Audit.Prefix)
}

func TestApplyDefaults_TrimsAuditPrefix(t *testing.T) {
	cfg := &Config{Audit: &AuditConfig{Prefix: "/events/sessions/"}}
	cfg.applyDefaults()

	assert.Equal(t, "events/sessions", cfg.Audit.Prefix)
}
