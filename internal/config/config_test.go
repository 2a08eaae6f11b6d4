package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-matcher/internal/scoring"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `{
		"cache_entries": 128,
		"cache_ttl_minutes": 10,
		"verbose": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.CacheEntries)
	assert.Equal(t, 10, cfg.CacheTTLMinutes)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.JSONLogs)
	assert.Nil(t, cfg.Profiles)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_WithProfiles(t *testing.T) {
	path := writeConfig(t, `{
		"profiles": {
			"default": {
				"technical_skills_weight": 0.5,
				"soft_skills_weight": 0.2,
				"experience_weight": 0.3,
				"qualifications_weight": 0.0,
				"responsibilities_weight": 0.0
			}
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	profile := cfg.Profiles.For(scoring.DefaultProfile)
	assert.Equal(t, 0.5, profile.TechnicalSkills)
	assert.Equal(t, 0.3, profile.Experience)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"cache_entries": `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_BadProfileSums(t *testing.T) {
	path := writeConfig(t, `{
		"profiles": {
			"default": {
				"technical_skills_weight": 0.9,
				"soft_skills_weight": 0.9
			}
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidate_MissingDefaultProfile(t *testing.T) {
	cfg := &Config{
		Profiles: scoring.Profiles{
			"sales": {TechnicalSkills: 1.0},
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default")
}

func TestValidate_NegativeCacheValues(t *testing.T) {
	cfg := &Config{CacheEntries: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{CacheTTLMinutes: -5}
	assert.Error(t, cfg.Validate())
}
