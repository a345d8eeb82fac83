package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"food-api/db"
)

// setupRouter builds the real route table with the given querier injected
// in place of the pool middleware.
func setupRouter(q db.Querier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r, NewHandler(zap.NewNop()), func(c *gin.Context) {
		c.Set(connKey, q)
		c.Next()
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

// noCallQuerier fails the test on any store access. Used where validation
// must short-circuit before a statement runs.
type noCallQuerier struct {
	t *testing.T
}

func (q *noCallQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.t.Fatalf("store touched: %s", sql)
	return pgconn.CommandTag{}, nil
}

func (q *noCallQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.t.Fatalf("store touched: %s", sql)
	return nil, nil
}

func (q *noCallQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.t.Fatalf("store touched: %s", sql)
	return nil
}

func TestRouteNotFound(t *testing.T) {
	r := setupRouter(&noCallQuerier{t: t})
	w := doJSON(t, r, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
