package author

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Hudesid/Only-Book/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Biography string `json:"biography"`
}

type patchRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Biography *string `json:"biography"`
}

// List handles GET /author/create/
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if authors == nil {
		authors = []Author{}
	}
	httpx.JSON(w, http.StatusOK, authors)
}

// Create handles POST /author/create/
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := httpx.ValidateStruct(req); fieldErrors != nil {
		httpx.JSONFieldErrors(w, fieldErrors)
		return
	}

	a := Author{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		Biography: req.Biography,
	}
	if err := h.service.Create(r.Context(), &a); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSONCreated(w, a)
}

// Detail handles GET /author/detail/{id}/
func (h *HTTPHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.JSONError(w, http.StatusNotFound, "author not found")
		return
	}

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "author not found")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, a)
}

// Update handles POST /author/detail/{id}/ with a partial payload.
// Absent fields are left untouched.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.JSONError(w, http.StatusNotFound, "author not found")
		return
	}

	var req patchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := httpx.ValidateStruct(req); fieldErrors != nil {
		httpx.JSONFieldErrors(w, fieldErrors)
		return
	}

	a, err := h.service.Update(r.Context(), id, Patch{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		Biography: req.Biography,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "author not found")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, a)
}
