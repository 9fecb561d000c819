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

// UserFinder looks users up by id.
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// PasswordChanger changes a user's password.
type PasswordChanger interface {
	UserFinder
	ChangePassword(ctx context.Context, user *models.User, newPassword string) error
}

// UserDeleter removes a user and everything that references it.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userID int64) error
}

// NewGetMeHandler returns an HTTP handler describing the authenticated user.
// @Summary Current user
// @Description Returns the public profile of the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserPublic
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/me [get]
func NewGetMeHandler(svc UserFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		user, err := svc.FindByID(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, user.ToPublic())
	}
}

// NewChangePasswordHandler returns an HTTP handler that changes the
// authenticated user's password.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChangePasswordRequest true "New password"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid password"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/me/password [put]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req models.ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.FindByID(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		if err := svc.ChangePassword(r.Context(), user, req.Password); err != nil {
			switch {
			case errors.Is(err, validation.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Password changed successfully"})
	}
}

// NewDeleteMeHandler returns an HTTP handler that deletes the authenticated
// user together with its tokens and network history.
// @Summary Delete account
// @Tags users
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/me [delete]
func NewDeleteMeHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteUser(r.Context(), userID); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
