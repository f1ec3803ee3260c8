package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica o operador configurado em AUTH_ADMIN_EMAIL / AUTH_ADMIN_PASSWORD_HASH
type Service struct {
	cfg config.Auth
	now func() time.Time
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	if s.cfg.AdminPasswordHash == "" {
		logrus.Warn("authenticating: AUTH_ADMIN_PASSWORD_HASH não configurado, login desabilitado")
		return "", NewAuthError(ErrAuthNotConfigured, apiErrors.ErrServiceDisabled, "")
	}

	if handleEmail(email) != handleEmail(s.cfg.AdminEmail) {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	token, err := s.generateJWT(handleEmail(email), domain.RoleAdmin)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) generateJWT(email string, roleID int) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserEmail:  email,
		UserRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}
