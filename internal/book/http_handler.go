package book

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Hudesid/Only-Book/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createRequest struct {
	Title  string           `json:"title" validate:"required,max=300"`
	Author string           `json:"author" validate:"required"`
	ISBN   string           `json:"isbn" validate:"required,isbn13"`
	Price  *decimal.Decimal `json:"price" validate:"required"`
	Stock  int              `json:"stock" validate:"gte=0"`
}

// List handles GET /book/list/
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Create handles POST /book/list/
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fieldErrors := httpx.ValidateStruct(req)
	if req.Price != nil && req.Price.IsNegative() {
		if fieldErrors == nil {
			fieldErrors = make(map[string]string)
		}
		fieldErrors["price"] = "price must not be negative"
	}
	if fieldErrors != nil {
		httpx.JSONFieldErrors(w, fieldErrors)
		return
	}

	b := Book{
		Title: req.Title,
		ISBN:  req.ISBN,
		Price: *req.Price,
		Stock: req.Stock,
	}
	if err := h.service.Create(r.Context(), &b, req.Author); err != nil {
		if errors.Is(err, ErrAuthorNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "author not found")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSONCreated(w, b)
}
