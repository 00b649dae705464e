package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AlexeyAndrrr/konoramenidk/internal/branch"
	"github.com/AlexeyAndrrr/konoramenidk/internal/menu"
	"github.com/AlexeyAndrrr/konoramenidk/internal/order"
	"github.com/AlexeyAndrrr/konoramenidk/internal/review"
	"github.com/AlexeyAndrrr/konoramenidk/internal/tips"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	for name, body := range map[string]string{
		"index.html":   "<h1>KONO</h1>",
		"menu.html":    "<h1>Меню</h1>",
		"reviews.html": "<h1>Отзывы</h1>",
		"404.html":     "<h1>404</h1>",
		"css/site.css": "body{}",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}

	log := zap.NewNop()
	now := time.Now()

	menuSvc, err := menu.NewService(context.Background(), menu.StaticSource{
		menu.NewItem(1, "Тонкоцу", menu.CategoryRamen, menu.SpiceMild, "450₽", true),
	}, log)
	require.NoError(t, err)

	branchSvc := branch.NewService(
		branch.NewInMemoryRepository(branch.DefaultBranches()),
		branch.NewInMemoryPreferenceStore(),
		log,
	)

	r := NewRouter(Deps{
		Log:       log,
		PublicDir: dir,
		Menu:      menu.NewHandler(menuSvc),
		Orders:    order.NewHandler(order.NewService(menuSvc, 0, log)),
		Branch:    branch.NewHandler(branchSvc),
		Reviews:   review.NewHandler(review.NewService(review.NewInMemoryRepository(review.SeedReviews(now)), branchSvc, log)),
		Tips:      tips.NewHandler(tips.NewService(tips.NewSeededRepository(now), branchSvc)),
	})

	return r, dir
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(r, "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestAPIRoutesMounted(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/api/menu", "/api/branches", "/api/reviews/1", "/api/tips/stats"} {
		w := get(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestPages(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(r, "/menu")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Меню")

	w = get(r, "/css/site.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
}

func TestNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(r, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())

	w = get(r, "/no-such-page")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>404</h1>")

	w = get(r, "/../../etc/passwd")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVisitorBranchRoutes(t *testing.T) {
	r, _ := newTestRouter(t)
	path := "/api/visitors/" + uuid.NewString() + "/branch"

	w := get(r, path)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(`{"branch_id":3}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, path)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)
}

func TestShippedHomePageUsesSavedBranch(t *testing.T) {
	body, err := os.ReadFile(filepath.Join("..", "..", "web", "public", "index.html"))
	require.NoError(t, err)

	page := string(body)
	assert.Contains(t, page, "/api/visitors/")
	assert.Contains(t, page, "method: 'PUT'")
	assert.Contains(t, page, "localStorage")
}
