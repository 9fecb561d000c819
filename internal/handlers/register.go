package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
	"github.com/sbilibin2017/gw-user-identity/internal/services"
	"github.com/sbilibin2017/gw-user-identity/internal/validation"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (*models.User, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Ensures unique username and email. Password is validated and hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.UserPublic "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Invalid request or credentials"
// @Failure 409 {object} models.ErrorResponse "Username or email already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.RegisterUser(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, validation.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username or email already exists")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, user.ToPublic())
	}
}
