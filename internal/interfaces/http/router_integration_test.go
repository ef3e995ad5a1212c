package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"entregas/internal/infrastructure/config"
	"entregas/internal/infrastructure/persistence/models"
	sharedConfig "entregas/internal/shared/config"
	"entregas/internal/shared/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.BenefitModel{},
		&models.PeriodModel{},
		&models.WorkerModel{},
		&models.DeliveryModel{},
		&models.AuditEntryModel{},
	)
	require.NoError(t, err)

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := NewRouter(database, log)
	router.SetupRoutes(&config.Config{
		Server: sharedConfig.ServerConfig{AllowedOrigins: []string{"*"}},
	})
	return router.Engine()
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoints(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Todo Bien, API funcionando", decodeBody(t, w)["ok"])

	w = doJSON(t, engine, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "API de Gestión de Entregas", decodeBody(t, w)["ok"])
}

// TestDeliveryLifecycleScenario walks the full flow: catalog setup, delivery
// creation, duplicate rejection, status patch and the aggregated report.
func TestDeliveryLifecycleScenario(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/periodos", gin.H{
		"codigo":         "2024-A",
		"nombre_periodo": "2024 A",
		"fecha_inicio":   "2024-01-01",
		"fecha_final":    "2024-06-30",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodPost, "/beneficios", gin.H{
		"codigo":           "BECA1",
		"nombre_beneficio": "Beca Alimentación",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	createBody := gin.H{
		"rut":           "12345678-5",
		"nombre":        "Ana",
		"apellido":      "Pérez",
		"beneficio_cod": "BECA1",
		"periodo_cod":   "2024-A",
	}
	w = doJSON(t, engine, http.MethodPost, "/entregas", createBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["id"].(float64)
	require.NotZero(t, id)

	// Repeating the same POST conflicts.
	w = doJSON(t, engine, http.MethodPost, "/entregas", createBody)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "La persona ya tiene registrada una entrega de ese beneficio en el periodo indicado", decodeBody(t, w)["error"])

	// New delivery starts PENDIENTE and carries the worker names.
	path := fmt.Sprintf("/entregas/%.0f", id)
	w = doJSON(t, engine, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody(t, w)
	assert.Equal(t, "PENDIENTE", detail["estado"])
	assert.Equal(t, "Ana", detail["nombre"])
	assert.Equal(t, "Pérez", detail["apellido"])

	// Listing resolves the same names per item.
	w = doJSON(t, engine, http.MethodGet, "/entregas?periodo=2024-A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listBody := decodeBody(t, w)
	items := listBody["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Ana", item["nombre"])
	assert.Equal(t, "Pérez", item["apellido"])
	assert.Equal(t, false, item["tiene_firma"])

	// Lowercase status is normalized.
	w = doJSON(t, engine, http.MethodPatch, path, gin.H{"estado": "entregado"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decodeBody(t, w)["ok"])

	w = doJSON(t, engine, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ENTREGADO", body["estado"])
	assert.Nil(t, body["firma_base64"])

	w = doJSON(t, engine, http.MethodGet, "/reportes/entregas-por-beneficio?periodo=2024-A", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var report []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Len(t, report, 1)
	assert.Equal(t, "BECA1", report[0]["beneficio_cod"])
	assert.Equal(t, float64(1), report[0]["total"])
	assert.Equal(t, float64(1), report[0]["entregados"])
	assert.Equal(t, float64(0), report[0]["pendientes"])
	assert.Equal(t, float64(0), report[0]["rechazados"])
}

func TestCreateDeliveryValidationErrors(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/entregas", gin.H{
		"rut":           "12345678-5",
		"nombre":        "Ana",
		"beneficio_cod": "BECA1",
		"periodo_cod":   "2024-A",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "rut, nombre, apellido, beneficio_cod y periodo_cod son obligatorios", decodeBody(t, w)["error"])

	w = doJSON(t, engine, http.MethodPost, "/entregas", gin.H{
		"rut":           "12345678-9",
		"nombre":        "Ana",
		"apellido":      "Pérez",
		"beneficio_cod": "BECA1",
		"periodo_cod":   "2024-A",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "RUT con formato inválido", decodeBody(t, w)["error"])

	w = doJSON(t, engine, http.MethodPost, "/entregas", gin.H{
		"rut":           "12345678-5",
		"nombre":        "Ana",
		"apellido":      "Pérez",
		"beneficio_cod": "NOPE",
		"periodo_cod":   "2024-A",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "beneficio_cod no existe", decodeBody(t, w)["error"])
}

func TestPeriodValidationOverHTTP(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/periodos", gin.H{
		"codigo":         "2024-X",
		"nombre_periodo": "Al revés",
		"fecha_inicio":   "2024-06-30",
		"fecha_final":    "2024-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "fecha_final no puede ser anterior a fecha_inicio", decodeBody(t, w)["error"])

	w = doJSON(t, engine, http.MethodGet, "/periodos/NOPE", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Periodo no encontrado", decodeBody(t, w)["error"])
}

func TestListDeliveriesPaginationClampOverHTTP(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/entregas?page=0&size=500", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(200), body["size"])
	assert.Equal(t, float64(0), body["total"])

	// An explicit size=0 clamps to 1; only a missing size defaults to 20.
	w = doJSON(t, engine, http.MethodGet, "/entregas?size=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["size"])

	w = doJSON(t, engine, http.MethodGet, "/entregas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(20), decodeBody(t, w)["size"])
}

func TestBenefitListShape(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/beneficios", gin.H{
		"codigo":           "BECA1",
		"nombre_beneficio": "Beca",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Benefit and period listings are bare arrays.
	w = doJSON(t, engine, http.MethodGet, "/beneficios", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "BECA1", list[0]["codigo"])
	assert.Equal(t, "Beca", list[0]["nombre_beneficio"])
}
