package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/internal/utils"
	locationuc "github.com/piresc/routefinder/services/location/usecase"
	"github.com/piresc/routefinder/services/routing/mocks"
	routinguc "github.com/piresc/routefinder/services/routing/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDestinations = []models.Destination{
	{Name: "Hospital Teste", Address: "Rua Teste, 123"},
	{Name: "Catedral", Address: "Praça Tiradentes, Curitiba"},
}

func setupHandler(t *testing.T, mapPath string) (*RouteHandler, *mocks.MockPlannerUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockPlanner := mocks.NewMockPlannerUC(ctrl)
	return NewRouteHandler(mockPlanner, testDestinations, mapPath), mockPlanner
}

func postRoute(t *testing.T, h *RouteHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/routes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.PlanRoute(c))
	return rec
}

func TestRouteHandler_PlanRoute_Success(t *testing.T) {
	h, mockPlanner := setupHandler(t, "")
	km, min := 5.0, 10.0

	mockPlanner.EXPECT().
		Plan(gomock.Any(), models.RouteRequest{Destination: "Catedral", UseDeviceLocation: true, Mode: "foot"}).
		Return(&models.RouteSummary{
			RequestID:    "req-1",
			ArtifactPath: "/tmp/map.html",
			Mode:         models.TravelModeFoot,
			DistanceKm:   &km,
			DurationMin:  &min,
		}, nil).
		Times(1)

	rec := postRoute(t, h, `{"destination":"Catedral","use_device_location":true,"mode":"foot"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    models.RouteSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "req-1", resp.Data.RequestID)
	require.NotNil(t, resp.Data.DistanceKm)
	assert.Equal(t, 5.0, *resp.Data.DistanceKm)
}

func TestRouteHandler_PlanRoute_InvalidBody(t *testing.T) {
	h, _ := setupHandler(t, "")

	rec := postRoute(t, h, `{"destination":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouteHandler_PlanRoute_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"empty destination", routinguc.ErrEmptyDestination, http.StatusBadRequest},
		{"destination not geocoded", routinguc.ErrDestinationNotGeocoded, http.StatusUnprocessableEntity},
		{"origin not geocoded", locationuc.ErrOriginNotGeocoded, http.StatusUnprocessableEntity},
		{"location unavailable", locationuc.ErrLocationUnavailable, http.StatusServiceUnavailable},
		{"no origin", locationuc.ErrNoOrigin, http.StatusServiceUnavailable},
		{"map failure", routinguc.ErrMapArtifact, http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockPlanner := setupHandler(t, "")
			mockPlanner.EXPECT().Plan(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := postRoute(t, h, `{"destination":"x"}`)

			assert.Equal(t, tt.expected, rec.Code)

			var resp utils.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expected, resp.Code)
		})
	}
}

func TestRouteHandler_FormPage(t *testing.T) {
	h, _ := setupHandler(t, "")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.FormPage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `<option value="Catedral">`)
	assert.Contains(t, body, `<option value="Hospital Teste">`)
	assert.Contains(t, body, `<option value="bike">bike</option>`)
}

func TestRouteHandler_Map(t *testing.T) {
	mapPath := filepath.Join(t.TempDir(), "map.html")
	h, _ := setupHandler(t, mapPath)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/map", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Map(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, os.WriteFile(mapPath, []byte("<html>route</html>"), 0o644))

	req = httptest.NewRequest(http.MethodGet, "/map", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.Map(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>route</html>", rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestRouteHandler_ListDestinations(t *testing.T) {
	h, _ := setupHandler(t, "")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListDestinations(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []models.Destination `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testDestinations, resp.Data)
}
