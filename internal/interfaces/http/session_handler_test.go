package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/session"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	apphttp "github.com/sreeramsuresh/steelapp-fe-sub017/internal/interfaces/http"
	"github.com/sreeramsuresh/steelapp-fe-sub017/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la API de sesiones con app.Test de Fiber: ciclo de vida completo
// de una sesión de edición (crear, mutar, consultar, cerrar) y los motores
// sin estado.
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Sessions: session.NewStore(logger.Nop(), document.DefaultOptions()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	}
	return resp, parsed
}

func TestSesion_CicloDeVida(t *testing.T) {
	app := buildTestApp()

	// Crear una sesión vacía de factura.
	resp, created := doJSON(t, app, http.MethodPost, "/api/sessions/", map[string]any{
		"documentType": "invoice",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, false, created["isDirty"])

	// Seleccionar contraparte y agregar una línea.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/sessions/"+id+"/party", map[string]any{
		"id": 42, "name": "Acme Steel",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/sessions/"+id+"/lines", map[string]any{
		"productName": "Tubo", "quantity": "3", "rate": "100.00",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["isDirty"])

	// Totales derivados: 300 + 5% IVA.
	resp, totals := doJSON(t, app, http.MethodGet, "/api/sessions/"+id+"/totals", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "300", totals["subtotal"])
	assert.Equal(t, "315", totals["total"])

	// Validación vigente.
	resp, validation := doJSON(t, app, http.MethodGet, "/api/sessions/"+id+"/validation", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, validation["isValid"])

	// Cerrar la sesión.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/sessions/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSesion_TipoDesconocido(t *testing.T) {
	app := buildTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/sessions/", map[string]any{
		"documentType": "waybill",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_TYPE", body["code"])
}

func TestSesion_CargoDesconocido(t *testing.T) {
	app := buildTestApp()

	_, created := doJSON(t, app, http.MethodPost, "/api/sessions/", map[string]any{
		"documentType": "invoice",
	})
	id := created["id"].(string)

	resp, body := doJSON(t, app, http.MethodPut, "/api/sessions/"+id+"/charges/propina", map[string]any{
		"amount": "10",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_CHARGE", body["code"])
}

func TestSesion_DocumentoBloqueadoRechazaMutaciones(t *testing.T) {
	app := buildTestApp()

	_, created := doJSON(t, app, http.MethodPost, "/api/sessions/", map[string]any{
		"documentType": "invoice",
		"document": map[string]any{
			"invoiceNumber": "INV-1",
			"invoiceDate":   "2026-03-15",
			"status":        "issued",
			"isLocked":      true,
			"items": []any{
				map[string]any{"productName": "Tubo", "quantity": 1, "unitPrice": 100},
			},
		},
	})
	id := created["id"].(string)

	resp, body := doJSON(t, app, http.MethodPut, "/api/sessions/"+id+"/header", map[string]any{
		"reference": "X",
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DOCUMENT_LOCKED", body["code"])
}

func TestDocumentos_CalculoSinEstado(t *testing.T) {
	app := buildTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/documents/invoice/calculate", map[string]any{
		"invoiceDate": "2026-03-15",
		"items": []any{
			map[string]any{"productName": "Tubo", "quantity": 3, "unitPrice": 100},
			map[string]any{"productName": "Lamina", "quantity": 2, "unitPrice": 300},
		},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "900", body["subtotal"])
	assert.Equal(t, "945", body["total"])
}

func TestDocumentos_ValidacionSinEstado(t *testing.T) {
	app := buildTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/documents/quotation/validate", map[string]any{
		"quotationDate": "2026-03-15",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["isValid"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/documents/waybill/validate", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_TYPE", body["code"])
}
