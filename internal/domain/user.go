package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um sócio autorizado a operar o workspace compartilhado. O cadastro
// só é aceito para emails presentes na whitelist configurada.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Claims são os dados do usuário embutidos no token JWT de sessão
type Claims struct {
	UserID    int
	UserName  string
	UserEmail string
	jwt.RegisteredClaims
}
