package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	log.SetupTestLogger()
}

const testPassword = "S3nha!Forte"

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(config.Auth{
		Secret:            "test-secret",
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: string(hash),
		TokenTTL:          time.Hour,
	}).(*Service)
}

func assertAuthCode(t *testing.T, err error, code string) {
	t.Helper()

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperado AuthError, recebido %v", err)
	assert.Equal(t, code, authErr.Code)
}

func TestService_LoginUser(t *testing.T) {
	t.Run("credenciais corretas geram token válido", func(t *testing.T) {
		service := newTestService(t)

		token, err := service.LoginUser(" Admin@Example.com ", testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.UserEmail)
		assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		service := newTestService(t)

		_, err := service.LoginUser("admin@example.com", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assertAuthCode(t, err, apiErrors.ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("email desconhecido", func(t *testing.T) {
		service := newTestService(t)

		_, err := service.LoginUser("outro@example.com", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("campos obrigatórios", func(t *testing.T) {
		service := newTestService(t)

		_, err := service.LoginUser("", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
		assertAuthCode(t, err, apiErrors.ErrMissingRequiredData)
	})

	t.Run("login desabilitado sem hash configurado", func(t *testing.T) {
		service := NewService(config.Auth{Secret: "s", AdminEmail: "admin@example.com"})

		_, err := service.LoginUser("admin@example.com", testPassword)
		assert.ErrorIs(t, err, ErrAuthNotConfigured)
		assertAuthCode(t, err, apiErrors.ErrServiceDisabled)
	})
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("token expirado", func(t *testing.T) {
		service := newTestService(t)
		issuedAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return issuedAt }

		token, err := service.LoginUser("admin@example.com", testPassword)
		require.NoError(t, err)

		service.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assertAuthCode(t, err, apiErrors.ErrExpiredToken)
	})

	t.Run("assinatura com outro segredo", func(t *testing.T) {
		service := newTestService(t)

		other := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{UserEmail: "x", UserRoleID: domain.RoleAdmin})
		signed, err := other.SignedString([]byte("outro-segredo"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token malformado", func(t *testing.T) {
		service := newTestService(t)

		_, err := service.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assertAuthCode(t, err, apiErrors.ErrInvalidToken)
	})
}
