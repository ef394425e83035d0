package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"credit-engine/internal/api/handler"
	"credit-engine/internal/config"
)

func TestGenerateBearerToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	cfg := config.Config{}
	cfg.Server.Auth.JWTSecret = "testsecret"
	h := handler.NewAuthHandler(cfg, logger)

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":"camila"}`))
		rec := httptest.NewRecorder()

		h.GenerateBearerToken(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, strings.HasPrefix(resp["token"], "Bearer "))

		tokenString := strings.TrimPrefix(resp["token"], "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("testsecret"), nil
		})
		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(jwt.MapClaims)
		assert.True(t, ok)
		assert.Equal(t, "camila", claims["username"])
	})

	t.Run("missing username", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		h.GenerateBearerToken(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`not-json`))
		rec := httptest.NewRecorder()

		h.GenerateBearerToken(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
