package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/middlewares"
	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// currentUserID returns the authenticated user id, answering 401 when the
// request went around AuthMiddleware.
func currentUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return userID, ok
}
