// handlers/auth.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/worksite/onsite_backend/internal/middleware"
	"github.com/worksite/onsite_backend/internal/pkg/response"
	"github.com/worksite/onsite_backend/internal/repositories"
	services "github.com/worksite/onsite_backend/internal/services/auth"
)

type AuthHandler struct {
	creds *services.CredentialService
}

func NewAuthHandler(creds *services.CredentialService) *AuthHandler {
	return &AuthHandler{creds: creds}
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var regData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&regData); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	if regData.Email == "" || regData.Password == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	user, err := h.creds.Register(r.Context(), regData.Email, regData.Password, regData.Role)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.RespondWithError(w, http.StatusConflict, "Email already registered")
			return
		}
		response.RespondWithStoreError(w, err)
		return
	}

	response.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":   true,
		"user": user,
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var loginData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&loginData); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	if loginData.Email == "" || loginData.Password == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	token, user, err := h.creds.Login(r.Context(), loginData.Email, loginData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.RespondWithStoreError(w, err)
		return
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"token": token,
		"user":  user,
	})
}

// MeHandler returns the public record of the bearer-token user.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.RespondWithError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := h.creds.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		response.RespondWithStoreError(w, err)
		return
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"user": user,
	})
}
