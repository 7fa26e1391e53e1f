package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Hudesid/Only-Book/internal/auth"
	"github.com/Hudesid/Only-Book/internal/httpx"
)

type HTTPHandler struct {
	service  *Service
	secret   string
	tokenTTL time.Duration
}

func NewHTTPHandler(service *Service, secret string) *HTTPHandler {
	return &HTTPHandler{
		service:  service,
		secret:   secret,
		tokenTTL: 24 * time.Hour,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /auth/register
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := httpx.ValidateStruct(req); fieldErrors != nil {
		httpx.JSONFieldErrors(w, fieldErrors)
		return
	}
	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		httpx.JSONFieldErrors(w, map[string]string{"password": err.Error()})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	u, err := h.service.Register(r.Context(), req.Username, req.Email, hashed)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, http.StatusConflict, "user already exists")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSONCreated(w, u)
}

// Login handles POST /auth/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := httpx.ValidateStruct(req); fieldErrors != nil {
		httpx.JSONFieldErrors(w, fieldErrors)
		return
	}

	u, err := h.service.GetByEmail(r.Context(), req.Email)
	if err != nil || !auth.VerifyPassword(u.Password, req.Password) {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.secret, u.ID, u.Username, h.tokenTTL)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_in": int(h.tokenTTL.Seconds()),
	})
}
