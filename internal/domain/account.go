package domain

import (
	"errors"
	"time"
)

// Account representa uma loja/negócio cujos registros diários são analisados
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrAccountNotFound indica que a conta informada não existe
var ErrAccountNotFound = errors.New("conta não encontrada")
