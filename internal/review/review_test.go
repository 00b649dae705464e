package review

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlexeyAndrrr/konoramenidk/internal/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --------------------------------------------------
// Mock branch reader
// --------------------------------------------------

type mockBranches map[int]string

func (m mockBranches) BranchName(ctx context.Context, id int) (string, error) {
	name, ok := m[id]
	if !ok {
		return "", core.ErrBranchNotFound
	}
	return name, nil
}

func (m mockBranches) CountBranches(ctx context.Context) (int, error) {
	return len(m), nil
}

var testBranches = mockBranches{
	1: "KONO Центр",
	2: "KONO Север",
	3: "KONO Юг",
	4: "KONO Запад",
	5: "KONO Восток",
}

func newTestService(now time.Time) *Service {
	svc := NewService(NewInMemoryRepository(SeedReviews(now)), testBranches, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func setupReviewTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(svc)
	r.GET("/api/reviews/:branchId", handler.ListForBranch)
	r.POST("/api/reviews", handler.Submit)

	return r
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestListForBranch_SeededNewestFirst(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	reviews, err := svc.ListForBranch(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Елена", reviews[0].Name)
	assert.Equal(t, "Сергей", reviews[1].Name)

	empty, err := svc.ListForBranch(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSubmit_Validation(t *testing.T) {
	svc := newTestService(time.Now())

	cases := []struct {
		name string
		sub  Submission
		want error
	}{
		{"missing name", Submission{Rating: 5, Text: "ok", BranchID: 1}, ErrMissingFields},
		{"blank text", Submission{Name: "Ира", Rating: 5, Text: "   ", BranchID: 1}, ErrMissingFields},
		{"missing rating", Submission{Name: "Ира", Text: "ok", BranchID: 1}, ErrMissingFields},
		{"missing branch", Submission{Name: "Ира", Rating: 5, Text: "ok"}, ErrMissingFields},
		{"rating too high", Submission{Name: "Ира", Rating: 6, Text: "ok", BranchID: 1}, ErrInvalidRating},
		{"rating negative", Submission{Name: "Ира", Rating: -1, Text: "ok", BranchID: 1}, ErrInvalidRating},
		{"unknown branch", Submission{Name: "Ира", Rating: 4, Text: "ok", BranchID: 9}, ErrUnknownBranch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.sub)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSubmit_AppearsFirst(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	rv, err := svc.Submit(context.Background(), Submission{
		Name:     " Ольга ",
		Rating:   5,
		Text:     "Лучший мисо-рамен",
		BranchID: 1,
	})
	require.NoError(t, err)
	assert.NotZero(t, rv.ID)
	assert.Equal(t, "Ольга", rv.Name)
	assert.Equal(t, "KONO Центр", rv.BranchName)

	reviews, err := svc.ListForBranch(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, rv.ID, reviews[0].ID)
}

func TestReviewHandlers(t *testing.T) {
	r := setupReviewTestRouter(newTestService(time.Now()))

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 2)

	for _, raw := range []string{"abc", "2abc"} {
		req = httptest.NewRequest(http.MethodGet, "/api/reviews/"+raw, nil)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, raw)
	}

	body, _ := json.Marshal(Submission{Name: "Ира", Rating: 3, Text: "Нормально", BranchID: 5})
	req = httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Review  Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "KONO Восток", resp.Review.BranchName)

	body, _ = json.Marshal(Submission{Name: "Ира", Rating: 7, Text: "!", BranchID: 5})
	req = httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
