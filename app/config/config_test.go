package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Setenv("BLOG_WEBAPP_ORIGIN", "https://app.example.com")
	t.Setenv("BLOG_GATEWAY_DOMAIN", "gateway.example.com")
	t.Setenv("BLOG_SHARED_SECRET", "s3cret")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "data/badger", cfg.DataDir)
		assert.Equal(t, "dev", cfg.ProjectID)
		assert.Equal(t, "test-blog", cfg.CollectionName)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PORT", "9090")
		t.Setenv("BLOG_PROJECT_ID", "double-willow")
		t.Setenv("BLOG_COLLECTION", "blog")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "double-willow", cfg.ProjectID)
		assert.Equal(t, "blog", cfg.CollectionName)
	})

	t.Run("missing secret fails", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BLOG_SHARED_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad port fails", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PORT", "not-a-port")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("allowed origins include local dev", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://app.example.com", LocalDevOrigin}, cfg.AllowedOrigins())
	})
}
