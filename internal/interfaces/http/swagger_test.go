package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/unitedfins/inventory-api/internal/interfaces/http"
)

const specMinimo = `{"swagger":"2.0","info":{"title":"t","version":"1.0"},"paths":{}}`

// ──────────────────────────────────────────────────────────────────────────────
// MountSwagger
// ──────────────────────────────────────────────────────────────────────────────

func TestMountSwagger_ArchivoAusenteNoDerribaElServidor(t *testing.T) {
	app := fiber.New()
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	var mounted bool
	assert.NotPanics(t, func() {
		mounted = apphttp.MountSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), "Inventory API")
	})
	assert.False(t, mounted)

	// El resto de la app sigue respondiendo con normalidad.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMountSwagger_ArchivoPresenteMontaLaUI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swagger.json")
	require.NoError(t, os.WriteFile(path, []byte(specMinimo), 0o600))

	app := fiber.New()
	assert.True(t, apphttp.MountSwagger(app, path, "Inventory API"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
