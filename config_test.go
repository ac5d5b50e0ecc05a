package techquiry_test

import (
	"testing"

	"github.com/aggelowe/techquiry"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Blank out any ambient values; empty env vars read as unset.
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_FILE", "")
	t.Setenv("DEBUG", "")

	cfg := techquiry.LoadConfig()

	assert.Equal(t, techquiry.DefaultPort, cfg.Port)
	assert.Equal(t, techquiry.DefaultDatabaseFile, cfg.DatabaseFile)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_FILE", "override.db")
	t.Setenv("DEBUG", "true")

	cfg := techquiry.LoadConfig()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "override.db", cfg.DatabaseFile)
	assert.True(t, cfg.Debug)
}
