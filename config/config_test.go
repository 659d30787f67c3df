/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DYNAMICS_LOG_LEVEL", "DYNAMICS_MANIFEST", "DYNAMICS_AWS_REGION", "DYNAMICS_AWS_ACCESS_KEY",
		"DYNAMICS_AWS_SECRET_KEY", "DYNAMICS_AWS_TABLE", "AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Empty(t, cfg.Manifest)
	assert.Empty(t, cfg.AWS.Table)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := `
log_level: debug
manifest: annotations.yaml
aws:
  region: eu-west-1
  table: countries
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dynamics.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "annotations.yaml", cfg.Manifest)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "countries", cfg.AWS.Table)

	t.Setenv("DYNAMICS_AWS_TABLE", "override")
	cfg, err = Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.AWS.Table)
}

func TestLoadEnvFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("AWS_ACCESS_KEY_ID=AKID\nAWS_SECRET_ACCESS_KEY=SECRET\nDYNAMICS_MANIFEST=from-env.yaml\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("AWS_ACCESS_KEY_ID")
		os.Unsetenv("AWS_SECRET_ACCESS_KEY")
		os.Unsetenv("DYNAMICS_MANIFEST")
	})

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "AKID", cfg.AWS.AccessKey)
	assert.Equal(t, "SECRET", cfg.AWS.SecretKey)
	assert.Equal(t, "from-env.yaml", cfg.Manifest)
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)

	t.Setenv("DYNAMICS_LOG_LEVEL", "loud")
	_, err := Load(t.TempDir())
	assert.Error(t, err)

	t.Setenv("DYNAMICS_LOG_LEVEL", "warn")
	t.Setenv("DYNAMICS_AWS_ACCESS_KEY", "AKID")
	_, err = Load(t.TempDir())
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dynamics.yaml"), []byte("aws: [unclosed"), 0o644))
	os.Unsetenv("DYNAMICS_AWS_ACCESS_KEY")
	_, err = Load(dir)
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "error"} {
		cfg := &Config{LogLevel: level}
		logger, err := cfg.Logger()
		require.NoError(t, err, level)
		assert.NotNil(t, logger)
	}

	_, err := (&Config{LogLevel: "nope"}).Logger()
	assert.Error(t, err)
}
