package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"granite_estimator/internal/adapter/http/handlers"
	"granite_estimator/internal/adapter/http/handlers/mocks"
	"granite_estimator/internal/adapter/persistence/repository"
	"granite_estimator/internal/config"
	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/infrastructure/pricesheet"
	"granite_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIEstimateUseCase, *mocks.MockIAssistantUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	estimates := mocks.NewMockIEstimateUseCase(ctrl)
	deposits := mocks.NewMockIDepositPaymentUseCase(ctrl)
	assistant := mocks.NewMockIAssistantUseCase(ctrl)

	cfg := config.Config{AllowedOrigins: []string{"https://www.surprisegranite.com"}}
	router := gin.New()
	setMiddlewares(router, cfg)
	registerRoutes(router, appHandlers{
		estimate:  handlers.NewEstimateHandler(estimates, cfg.Business),
		payment:   handlers.NewDepositPaymentHandler(deposits, true),
		assistant: handlers.NewAssistantHandler(assistant),
	})
	return router, estimates, assistant
}

func TestRegisterRoutes_Ping(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"pong"`, w.Body.String())
}

func TestRegisterRoutes_ExportPathsResolveEstimateID(t *testing.T) {
	router, estimates, _ := newTestRouter(t)
	estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1/export.pdf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterRoutes_LegacyBusinessInfo(t *testing.T) {
	router, _, assistant := newTestRouter(t)
	assistant.EXPECT().BusinessInfo().Return(config.BusinessInfo{Name: "Surprise Granite"})

	req := httptest.NewRequest(http.MethodGet, "/api/get-business-info", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Surprise Granite")
}

func TestSetMiddlewares_CORSPreflight(t *testing.T) {
	router, _, _ := newTestRouter(t)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/estimates", nil)
		req.Header.Set("Origin", "https://www.surprisegranite.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://www.surprisegranite.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/estimates", nil)
		req.Header.Set("Origin", "https://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPriceSource(t *testing.T) {
	_, isFile := priceSource(config.PriceSheetConfig{File: "prices.yaml"}).(*pricesheet.FileSource)
	assert.True(t, isFile)

	_, isHTTP := priceSource(config.PriceSheetConfig{URL: "https://example.com/prices.csv"}).(*pricesheet.HTTPSource)
	assert.True(t, isHTTP)
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := config.Config{Store: config.StoreConfig{Driver: config.StoreSQLite, SQLitePath: t.TempDir() + "/estimates.db"}}

	estimates, deposits, closeStore, err := openStore(cfg)

	assert.NoError(t, err)
	assert.IsType(t, &repository.EstimateSQLiteRepository{}, estimates)
	assert.IsType(t, &repository.DepositPaymentSQLiteRepository{}, deposits)
	closeStore()
}
