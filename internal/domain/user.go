package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin   = 1
	RoleAnalyst = 2
)

type Claims struct {
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
