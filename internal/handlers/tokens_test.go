package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
	"github.com/sbilibin2017/gw-user-identity/internal/services"
)

// serveWithType routes the request through chi so {type} is populated.
func serveWithType(h http.HandlerFunc, method string, r *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, "/users/me/tokens/{type}", h)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, r)
	return rr
}

func TestListTokensHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockTokenLister(ctrl)
	handler := NewListTokensHandler(svc)
	future := time.Now().Add(time.Hour)

	svc.EXPECT().TokensForUser(gomock.Any(), int64(1)).Return([]models.AccessToken{
		{TypeCode: "API", Token: "a", ExpiresAt: &future},
		{TypeCode: "REMEMBER", Token: "b"},
	}, nil)

	rr := httptest.NewRecorder()
	handler(rr, authed(httptest.NewRequest(http.MethodGet, "/users/me/tokens", nil), 1))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "API", resp[0].Type)
	assert.False(t, resp[0].Expired)

	svc.EXPECT().TokensForUser(gomock.Any(), int64(2)).Return(nil, nil)
	rr = httptest.NewRecorder()
	handler(rr, authed(httptest.NewRequest(http.MethodGet, "/users/me/tokens", nil), 2))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	svc.EXPECT().TokensForUser(gomock.Any(), int64(3)).Return(nil, errors.New("db error"))
	rr = httptest.NewRecorder()
	handler(rr, authed(httptest.NewRequest(http.MethodGet, "/users/me/tokens", nil), 3))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestIssueTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockTokenIssuer(ctrl)
	handler := NewIssueTokenHandler(svc)
	future := time.Now().Add(time.Hour)

	t.Run("Issued", func(t *testing.T) {
		svc.EXPECT().IssueToken(gomock.Any(), int64(1), "API").
			Return(&models.AccessToken{TypeCode: "API", Token: "tok", ExpiresAt: &future}, nil)

		r := authed(httptest.NewRequest(http.MethodPost, "/users/me/tokens/api", nil), 1)
		rr := serveWithType(handler, http.MethodPost, r)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp models.TokenResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "tok", resp.Token)
	})

	t.Run("UnknownType", func(t *testing.T) {
		svc.EXPECT().IssueToken(gomock.Any(), int64(1), "BOGUS").
			Return(nil, fmt.Errorf("%w: BOGUS", services.ErrUnknownTokenType))

		r := authed(httptest.NewRequest(http.MethodPost, "/users/me/tokens/BOGUS", nil), 1)
		rr := serveWithType(handler, http.MethodPost, r)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Unknown token type", decodeError(t, rr))
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		rr := serveWithType(handler, http.MethodPost, httptest.NewRequest(http.MethodPost, "/users/me/tokens/API", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestExpireTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockTokenExpirer(ctrl)
	handler := NewExpireTokenHandler(svc)

	t.Run("Expired", func(t *testing.T) {
		token := &models.AccessToken{TypeCode: "REMEMBER", Token: "tok"}
		token.SetExpired(true)
		svc.EXPECT().ExpireTokenCode(gomock.Any(), int64(1), "REMEMBER").Return(token, nil)

		r := authed(httptest.NewRequest(http.MethodDelete, "/users/me/tokens/remember", nil), 1)
		rr := serveWithType(handler, http.MethodDelete, r)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp models.TokenResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Expired)
	})

	t.Run("NoToken", func(t *testing.T) {
		svc.EXPECT().ExpireTokenCode(gomock.Any(), int64(1), "RESET").Return(nil, nil)

		r := authed(httptest.NewRequest(http.MethodDelete, "/users/me/tokens/RESET", nil), 1)
		rr := serveWithType(handler, http.MethodDelete, r)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Error", func(t *testing.T) {
		svc.EXPECT().ExpireTokenCode(gomock.Any(), int64(1), "API").Return(nil, errors.New("db error"))

		r := authed(httptest.NewRequest(http.MethodDelete, "/users/me/tokens/API", nil), 1)
		rr := serveWithType(handler, http.MethodDelete, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
