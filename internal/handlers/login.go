package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
	"github.com/sbilibin2017/gw-user-identity/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, req models.LoginRequest, remoteAddr string) (*models.LoginResponse, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by username or email and return a JWT token, plus a REMEMBER access token when requested
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Failure 403 {object} models.ErrorResponse "User is not active"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := svc.Login(r.Context(), req, r.RemoteAddr)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
			case errors.Is(err, services.ErrUserInactive):
				writeError(w, http.StatusForbidden, "User is not active")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
