package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "student_portal", cfg.Database.Name)
	assert.Equal(t, "./uploads", cfg.Storage.UploadDir)
	assert.Equal(t, []string{"pdf", "png", "jpg", "jpeg", "doc", "docx"}, cfg.Storage.AllowedExtensions)
	assert.False(t, cfg.InitSchema)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("UPLOAD_DIR", "/srv/uploads")
	t.Setenv("ALLOWED_EXTENSIONS", "pdf, png")
	t.Setenv("DB_INIT_SCHEMA", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/srv/uploads", cfg.Storage.UploadDir)
	assert.Equal(t, []string{"pdf", "png"}, cfg.Storage.AllowedExtensions)
	assert.True(t, cfg.InitSchema)
}
