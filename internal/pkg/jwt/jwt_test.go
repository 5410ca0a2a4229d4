//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"smart-parking/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps subject and role", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)

		token, err := svc.GenerateToken("ops-1", jwt.RoleOperator)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "ops-1", claims.Subject)
		assert.Equal(t, jwt.RoleOperator, claims.Role)
		assert.True(t, claims.Role.CanOperate())
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)

		token, err := svc.GenerateToken("ops-1", jwt.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken("ops-1", jwt.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unknown role cannot operate", func(t *testing.T) {
		assert.False(t, jwt.Role("viewer").CanOperate())
	})
}
