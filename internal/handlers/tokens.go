package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
	"github.com/sbilibin2017/gw-user-identity/internal/services"
)

// TokenLister lists a user's access tokens.
type TokenLister interface {
	TokensForUser(ctx context.Context, userID int64) ([]models.AccessToken, error)
}

// TokenIssuer issues access tokens.
type TokenIssuer interface {
	IssueToken(ctx context.Context, userID int64, typeCode string) (*models.AccessToken, error)
}

// TokenExpirer revokes access tokens.
type TokenExpirer interface {
	ExpireTokenCode(ctx context.Context, userID int64, typeCode string) (*models.AccessToken, error)
}

// tokenTypeParam returns the upper-cased {type} path parameter.
func tokenTypeParam(r *http.Request) string {
	return strings.ToUpper(chi.URLParam(r, "type"))
}

// NewListTokensHandler returns an HTTP handler listing the user's access tokens.
// @Summary List access tokens
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TokenResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/me/tokens [get]
func NewListTokensHandler(svc TokenLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		tokens, err := svc.TokensForUser(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		resp := make([]models.TokenResponse, 0, len(tokens))
		for _, t := range tokens {
			resp = append(resp, models.NewTokenResponse(t))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewIssueTokenHandler returns an HTTP handler issuing an access token of the
// requested type. An existing valid token is returned as is.
// @Summary Issue access token
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param type path string true "Token type (API, REMEMBER, RESET)"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.ErrorResponse "Unknown token type"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/me/tokens/{type} [post]
func NewIssueTokenHandler(svc TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		token, err := svc.IssueToken(r.Context(), userID, tokenTypeParam(r))
		if err != nil {
			if errors.Is(err, services.ErrUnknownTokenType) {
				writeError(w, http.StatusBadRequest, "Unknown token type")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewTokenResponse(*token))
	}
}

// NewExpireTokenHandler returns an HTTP handler revoking the user's access
// token of the requested type.
// @Summary Expire access token
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param type path string true "Token type (API, REMEMBER, RESET)"
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Token not found"
// @Router /users/me/tokens/{type} [delete]
func NewExpireTokenHandler(svc TokenExpirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		token, err := svc.ExpireTokenCode(r.Context(), userID, tokenTypeParam(r))
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if token == nil {
			writeError(w, http.StatusNotFound, "Token not found")
			return
		}

		writeJSON(w, http.StatusOK, models.NewTokenResponse(*token))
	}
}
