package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/readinglist/internal/model"
	"github.com/snnyvrz/readinglist/internal/repository"
	"gorm.io/gorm"
)

type fakeBookRepo struct {
	ListFn         func(ctx context.Context) ([]model.Book, error)
	CreateFn       func(ctx context.Context, b *model.Book) error
	UpdateStatusFn func(ctx context.Context, id int64, status model.Status) (*model.Book, error)
	DeleteFn       func(ctx context.Context, id int64) error
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return []model.Book{}, nil
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Book, error) {
	if f.UpdateStatusFn != nil {
		return f.UpdateStatusFn(ctx, id, status)
	}
	return nil, &repository.Error{Kind: repository.KindNotFound, Op: "update book status", Err: repository.ErrNotFound}
}

func (f *fakeBookRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func setupBookRouterWithRepo(bookRepo repository.BookRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBookHandler(bookRepo)
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	return setupBookRouterWithRepo(repository.NewGormBookRepository(db))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return v
}
