package order

import (
	"encoding/json"
	"errors"
	"fmt"
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
	Books []lineRequest `json:"books"`
}

type lineRequest struct {
	// BookID defaults to the book in the request path when omitted.
	BookID   string `json:"book_id"`
	Quantity *int   `json:"quantity"`
}

// List handles GET /order/create/{bookID}/
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	httpx.JSON(w, http.StatusOK, orders)
}

// Create handles POST /order/create/{bookID}/
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	pathBookID := r.PathValue("bookID")

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lines := make([]Line, 0, len(req.Books))
	for _, lr := range req.Books {
		if lr.Quantity == nil {
			httpx.JSONError(w, http.StatusBadRequest, "Book ID and quantity are required.")
			return
		}
		bookID := lr.BookID
		if bookID == "" {
			bookID = pathBookID
		}
		// Ids that cannot be uuids cannot name a book; reject them here
		// instead of letting the database choke on them.
		if _, err := uuid.Parse(bookID); err != nil {
			h.writePlacementError(w, &BookNotFoundError{BookID: bookID})
			return
		}
		lines = append(lines, Line{BookID: bookID, Quantity: *lr.Quantity})
	}

	userID := httpx.UserIDFrom(r)
	username := httpx.UsernameFrom(r)

	o, err := h.service.Place(r.Context(), userID, username, lines)
	if err != nil {
		h.writePlacementError(w, err)
		return
	}

	httpx.JSONCreated(w, o)
}

func (h *HTTPHandler) writePlacementError(w http.ResponseWriter, err error) {
	var notFound *BookNotFoundError
	var insufficient *InsufficientStockError

	switch {
	case errors.Is(err, ErrEmptyOrder):
		httpx.JSONError(w, http.StatusBadRequest, "No books specified for the order.")
	case errors.Is(err, ErrInvalidQuantity):
		httpx.JSONError(w, http.StatusBadRequest, "Quantity must be greater than zero.")
	case errors.As(err, &notFound):
		httpx.JSONError(w, http.StatusNotFound, fmt.Sprintf("Book with ID %s not found.", notFound.BookID))
	case errors.As(err, &insufficient):
		httpx.JSONError(w, http.StatusBadRequest,
			fmt.Sprintf("Not enough stock for %s. Only %d available.", insufficient.Title, insufficient.Available))
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
	}
}
