package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsjj10002/dataventure/internal/config"
)

func newHealthApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	handler := NewHealthHandler(cfg)
	app.Get("/", handler.HandleRoot)
	app.Get("/health", handler.HandleHealth)
	return app
}

func TestHandleRoot(t *testing.T) {
	app := newHealthApp(&config.Config{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "AI Interview Engine", body["service"])
}

func TestHandleHealth_ReportsGeminiConfiguration(t *testing.T) {
	cfg := &config.Config{}
	cfg.Gemini.APIKey = "test-key"
	cfg.Embedding.Model = "text-embedding-004"

	app := newHealthApp(cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, true, body["gemini_configured"])
	assert.Equal(t, "text-embedding-004", body["embedding_model"])
}

func TestHandleHealth_UnconfiguredGemini(t *testing.T) {
	app := newHealthApp(&config.Config{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, false, body["gemini_configured"])
}
