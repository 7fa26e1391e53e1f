package book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Hudesid/Only-Book/internal/author"
	"github.com/Hudesid/Only-Book/internal/testutil"
)

type mockBookRepo struct {
	mock.Mock
}

func (m *mockBookRepo) List(ctx context.Context) ([]Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Book), args.Error(1)
}

func (m *mockBookRepo) GetByID(ctx context.Context, id string) (Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Book), args.Error(1)
}

func (m *mockBookRepo) Create(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type mockAuthorResolver struct {
	mock.Mock
}

func (m *mockAuthorResolver) GetByName(ctx context.Context, name string) (author.Author, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(author.Author), args.Error(1)
}

func newTestHandler(repo *mockBookRepo, authors *mockAuthorResolver) *HTTPHandler {
	return NewHTTPHandler(NewService(repo, authors))
}

func validPayload() map[string]any {
	return map[string]any{
		"title":  "Dune",
		"author": "Frank Herbert",
		"isbn":   "1234567890123",
		"price":  20.00,
		"stock":  5,
	}
}

func postBook(t *testing.T, h *HTTPHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := testutil.NewRequest(http.MethodPost, "/book/list/", body)
	h.Create(w, r)
	return w
}

func TestHTTPHandler_Create_Success(t *testing.T) {
	repo := new(mockBookRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*book.Book")).
		Run(func(args mock.Arguments) {
			b := args.Get(1).(*Book)
			b.ID = "book-1"
			b.Author.BooksCount = 1
		}).
		Return(nil)

	authors := new(mockAuthorResolver)
	authors.On("GetByName", mock.Anything, "Frank Herbert").
		Return(author.Author{ID: "a1", Name: "Frank Herbert"}, nil)

	h := newTestHandler(repo, authors)
	w := postBook(t, h, validPayload())

	assert.Equal(t, http.StatusCreated, w.Code)
	body := testutil.DecodeBody(w)
	assert.Equal(t, "Dune", body["title"])
	assert.Equal(t, true, body["is_in_stock"])
	a, ok := body["author"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Frank Herbert", a["name"])
	assert.Equal(t, float64(1), a["books_count"])
}

func TestHTTPHandler_Create_ISBNValidation(t *testing.T) {
	tests := []struct {
		name       string
		isbn       string
		wantStatus int
	}{
		{"13 digits accepted", "1234567890123", http.StatusCreated},
		{"too short rejected", "12345", http.StatusBadRequest},
		{"14 digits rejected", "12345678901234", http.StatusBadRequest},
		{"letters rejected", "123456789012X", http.StatusBadRequest},
		{"dashes rejected", "123-456789012", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockBookRepo)
			repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			authors := new(mockAuthorResolver)
			authors.On("GetByName", mock.Anything, mock.Anything).
				Return(author.Author{ID: "a1", Name: "Frank Herbert"}, nil)

			payload := validPayload()
			payload["isbn"] = tt.isbn

			h := newTestHandler(repo, authors)
			w := postBook(t, h, payload)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusBadRequest {
				body := testutil.DecodeBody(w)
				fieldErrors, ok := body["errors"].(map[string]interface{})
				require.True(t, ok)
				assert.Contains(t, fieldErrors, "isbn")
				repo.AssertNotCalled(t, "Create")
			}
		})
	}
}

func TestHTTPHandler_Create_MissingPriceRejected(t *testing.T) {
	payload := validPayload()
	delete(payload, "price")

	h := newTestHandler(new(mockBookRepo), new(mockAuthorResolver))
	w := postBook(t, h, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := testutil.DecodeBody(w)
	fieldErrors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "price")
}

func TestHTTPHandler_Create_NegativePriceRejected(t *testing.T) {
	payload := validPayload()
	payload["price"] = -1.50

	h := newTestHandler(new(mockBookRepo), new(mockAuthorResolver))
	w := postBook(t, h, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := testutil.DecodeBody(w)
	fieldErrors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "price")
}

func TestHTTPHandler_Create_UnknownAuthor(t *testing.T) {
	repo := new(mockBookRepo)
	authors := new(mockAuthorResolver)
	authors.On("GetByName", mock.Anything, "Nobody").
		Return(author.Author{}, author.ErrNotFound)

	payload := validPayload()
	payload["author"] = "Nobody"

	h := newTestHandler(repo, authors)
	w := postBook(t, h, payload)

	assert.Equal(t, http.StatusNotFound, w.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestHTTPHandler_List(t *testing.T) {
	repo := new(mockBookRepo)
	repo.On("List", mock.Anything).Return([]Book{
		{Title: "Dune", Price: decimal.RequireFromString("20.00"), Stock: 5},
	}, nil)

	h := newTestHandler(repo, new(mockAuthorResolver))
	w := httptest.NewRecorder()
	r := testutil.NewRequest(http.MethodGet, "/book/list/", nil)
	h.List(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
