package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"company": "Acme",
		"research_urls": ["https://acme.example/about"],
		"question_count": 12,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Acme", cfg.Company)
	assert.Equal(t, []string{"https://acme.example/about"}, cfg.ResearchURLs)
	assert.Equal(t, 12, cfg.QuestionCount)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

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

func TestValidate_NegativeQuestionCount(t *testing.T) {
	cfg := &Config{QuestionCount: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "question_count")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.txt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	bank := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(resume, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(bank, []byte("{}"), 0644))

	cfg := &Config{Resume: resume, Bank: bank, QuestionCount: 10}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Company: "Acme", QuestionCount: 5}
	defaults := Config{
		Company:       "Ignored",
		Resume:        "resume.txt",
		ResearchURLs:  []string{"https://acme.example"},
		QuestionCount: 10,
		APIKey:        "key-from-file",
		StorageDir:    "artifacts",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "Acme", merged.Company, "explicit value wins")
	assert.Equal(t, 5, merged.QuestionCount, "explicit value wins")
	assert.Equal(t, "resume.txt", merged.Resume)
	assert.Equal(t, []string{"https://acme.example"}, merged.ResearchURLs)
	assert.Equal(t, "key-from-file", merged.APIKey)
	assert.Equal(t, "artifacts", merged.StorageDir)
}
