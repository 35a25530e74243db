package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"esg_backend/internal/app/router"
	"esg_backend/internal/feature/esg/adapters"
	"esg_backend/internal/feature/esg/domain/reference"
	esghandler "esg_backend/internal/feature/esg/transport/handler"
	"esg_backend/internal/feature/esg/usecase"
	"esg_backend/internal/platform/metrics"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubNarrator はGeminiの代わりに固定の要約を返します。
type stubNarrator struct{}

func (stubNarrator) Narrate(ctx context.Context, prompt string) (string, error) {
	return "- solid governance", nil
}

type noWait struct{}

func (noWait) WaitIfNeeded(context.Context) error { return nil }

// setupRouter は実際のusecaseとインメモリSQLiteでルーターを構築します。
func setupRouter(t *testing.T, withStore bool) *gin.Engine {
	t.Helper()

	table := reference.Default()
	esgUC := usecase.NewESGUsecase(table,
		usecase.WithDelay(usecase.NoDelay, 0),
		usecase.WithRandomSource(usecase.NewSeededSource(1)),
		usecase.WithClock(func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }),
	)

	deps := router.Deps{
		ESG:            esghandler.NewESGHandler(esgUC, nil),
		Insight:        esghandler.NewInsightHandler(usecase.NewInsightUsecase(table, stubNarrator{}, noWait{})),
		Metrics:        metrics.New(),
		AllowedOrigins: []string{"*"},
	}

	if withStore {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = sqlDB.Close() })
		require.NoError(t, db.AutoMigrate(&adapters.CompanyModel{}))

		repo := adapters.NewCompanyRepository(db)
		_, err = usecase.NewPopulateUsecase(repo, table).Populate(context.Background())
		require.NoError(t, err)
		deps.Companies = esghandler.NewCompanyHandler(usecase.NewCompanyUsecase(repo))
	}

	return router.NewRouter(deps)
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Analyze(t *testing.T) {
	r := setupRouter(t, false)

	w := do(r, http.MethodPost, "/api/esg/analyze", `{"symbol":"tsla"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var body struct {
		Symbol string `json:"symbol"`
		Scores struct {
			Environmental int `json:"environmental"`
			Social        int `json:"social"`
			Governance    int `json:"governance"`
			Overall       int `json:"overall"`
		} `json:"scores"`
		Recommendation    string `json:"recommendation"`
		AnalysisTimestamp string `json:"analysis_timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "TSLA", body.Symbol)
	assert.InDelta(t, 92, body.Scores.Environmental, 3)
	assert.InDelta(t, 78, body.Scores.Social, 3)
	assert.InDelta(t, 85, body.Scores.Governance, 3)
	assert.Equal(t, (body.Scores.Environmental+body.Scores.Social+body.Scores.Governance)/3, body.Scores.Overall)
	assert.Equal(t, "2026-10-17T12:00:00Z", body.AnalysisTimestamp)

	w = do(r, http.MethodPost, "/api/esg/analyze", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Company symbol is required"}`, w.Body.String())
}

func TestRouter_ReadEndpoints(t *testing.T) {
	r := setupRouter(t, false)

	tests := []struct {
		path    string
		wantLen int
	}{
		{path: "/api/esg/rankings", wantLen: 7},
		{path: "/api/esg/rankings?sector=Technology&limit=2", wantLen: 2},
		{path: "/api/esg/trends", wantLen: 6},
		{path: "/api/esg/sectors", wantLen: 5},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(r, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, w.Code)

			var items []map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
			assert.Len(t, items, tt.wantLen)
		})
	}

	w := do(r, http.MethodGet, "/api/esg/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, 2847.0, m["total_companies"])
	assert.Equal(t, 78.4, m["average_esg_score"])
}

func TestRouter_Companies(t *testing.T) {
	t.Run("registered with a store", func(t *testing.T) {
		r := setupRouter(t, true)

		w := do(r, http.MethodGet, "/api/esg/companies", "")
		require.Equal(t, http.StatusOK, w.Code)
		var items []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		assert.Len(t, items, 7)
		assert.Equal(t, "TSLA", items[0]["symbol"])

		w = do(r, http.MethodGet, "/api/esg/companies/amzn", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Amazon.com Inc."`)

		w = do(r, http.MethodGet, "/api/esg/companies/ZZZ", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"company not found"}`, w.Body.String())
	})

	t.Run("absent without a store", func(t *testing.T) {
		r := setupRouter(t, false)

		w := do(r, http.MethodGet, "/api/esg/companies", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
	})
}

func TestRouter_Insight(t *testing.T) {
	r := setupRouter(t, false)

	w := do(r, http.MethodPost, "/api/esg/insight", `{"symbol":"msft"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"symbol":"MSFT","name":"Microsoft Corporation","summary":"- solid governance"}`, w.Body.String())
}

func TestRouter_Platform(t *testing.T) {
	r := setupRouter(t, false)

	w := do(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	do(r, http.MethodGet, "/api/esg/trends", "")
	w = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `esg_http_requests_total{method="GET",route="/api/esg/trends",status="200"} 1`)

	w = do(r, http.MethodGet, "/api/esg/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := setupRouter(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/esg/analyze", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_PanicBecomes500(t *testing.T) {
	r := setupRouter(t, false)
	r.GET("/api/esg/boom", func(c *gin.Context) { panic("unexpected state") })

	w := do(r, http.MethodGet, "/api/esg/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"unexpected state"}`, w.Body.String())

	w = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `esg_http_requests_total{method="GET",route="/api/esg/boom",status="500"} 1`)
}
