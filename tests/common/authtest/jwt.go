//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"smart-parking/internal/pkg/config"
	"smart-parking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service() *jwt.Service {
	return jwt.NewService(h.cfg.Secret, h.cfg.TokenDuration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string, role jwt.Role) string {
	t.Helper()
	token, err := h.Service().GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string, role jwt.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Minute)
	token, err := service.GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

// CreateForeignToken signs with a different secret so validation must fail.
func (h *JWTHelper) CreateForeignToken(t *testing.T, subject string, role jwt.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-other", h.cfg.TokenDuration)
	token, err := service.GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}
