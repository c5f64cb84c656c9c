package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))
	return tmpFile
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	tmpFile := writeConfig(t, `{
		"heading_max_len": 60,
		"skill_limit": 20,
		"log_level": "debug",
		"verbose": true,
		"validate_output": true
	}`)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 60, cfg.HeadingMaxLen)
	assert.Equal(t, 20, cfg.SkillLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.ValidateOutput)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := writeConfig(t, `{ invalid json }`)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Defaults(), ""},
		{"empty", Config{}, ""},
		{"negative skill limit", Config{SkillLimit: -1}, "SkillLimit"},
		{"negative heading length", Config{HeadingMaxLen: -5}, "HeadingMaxLen"},
		{"too many workers", Config{Workers: 1000}, "Workers"},
		{"unknown log level", Config{LogLevel: "trace"}, "LogLevel"},
		{"unknown log format", Config{LogFormat: "xml"}, "LogFormat"},
		{"missing vocabulary", Config{Vocabulary: "/nonexistent/vocab.yaml"}, "vocabulary file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		SkillLimit: 5,
		LogFormat:  "json",
		Verbose:    true,
	}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 5, merged.SkillLimit)
	assert.Equal(t, "json", merged.LogFormat)
	assert.Equal(t, 50, merged.HeadingMaxLen)
	assert.Equal(t, 4, merged.Workers)
	assert.Equal(t, "info", merged.LogLevel)
	assert.True(t, merged.Verbose)

	// original untouched
	assert.Equal(t, 0, cfg.HeadingMaxLen)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{SkillLimit: 3}
	merged := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, Config{SkillLimit: 3}, merged)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RESUME_PARSER_SKILL_LIMIT", "7")
	t.Setenv("RESUME_PARSER_LOG_FORMAT", "json")
	t.Setenv("RESUME_PARSER_VALIDATE_OUTPUT", "true")

	cfg := &Config{SkillLimit: 20, HeadingMaxLen: 40}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, 7, cfg.SkillLimit)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.ValidateOutput)
	assert.Equal(t, 40, cfg.HeadingMaxLen, "unset variables keep file values")
}

func TestApplyEnv_BadValue(t *testing.T) {
	t.Setenv("RESUME_PARSER_WORKERS", "many")

	cfg := &Config{}
	err := cfg.ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}

func TestLoad(t *testing.T) {
	tmpFile := writeConfig(t, `{"skill_limit": 10, "log_level": "warn"}`)
	t.Setenv("RESUME_PARSER_LOG_LEVEL", "debug")

	cfg, err := Load(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.SkillLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50, cfg.HeadingMaxLen)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tmpFile := writeConfig(t, `{"log_format": "yaml"}`)

	_, err := Load(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}
