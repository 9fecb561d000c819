package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

// NetworkLister lists the networks a user connected from.
type NetworkLister interface {
	NetworksForUser(ctx context.Context, userID int64) ([]models.Network, error)
}

// NewListNetworksHandler returns an HTTP handler listing the user's networks.
// @Summary List login networks
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Network
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/me/networks [get]
func NewListNetworksHandler(svc NetworkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		networks, err := svc.NetworksForUser(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if networks == nil {
			networks = []models.Network{}
		}
		writeJSON(w, http.StatusOK, networks)
	}
}
