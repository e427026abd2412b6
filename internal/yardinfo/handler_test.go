package yardinfo

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(st store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newServiceWithStore(st))
	return r
}

func TestHandlerGet_MissingDate(t *testing.T) {
	r := newTestRouter(newFakeStore())

	for _, path := range []string{"/daily-yard-info", "/remarks"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

// 未入力日のGETはワイヤ上でも最小のデフォルトオブジェクトになる
func TestHandlerGet_DefaultBody(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/daily-yard-info?date=2099-01-01", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loadingPerson":""}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/remarks?date=2099-01-01", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"content":""}`, w.Body.String())
}

func TestHandlerUpsertThenGet(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/remarks",
		strings.NewReader(`{"date":"2025-06-01","content":"本日クレーン点検"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/remarks?date=2025-06-01", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "本日クレーン点検")
}
