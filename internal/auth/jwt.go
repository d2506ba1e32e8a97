package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token (inclui RBAC simples: IsAdmin) e o nome de exibição
// usado nos registros de histórico.
type Claims struct {
	UserID  uint   `json:"userId"`
	Nome    string `json:"nome"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

func segredo() ([]byte, error) {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return nil, errors.New("JWT_SECRET não definida")
	}
	return []byte(s), nil
}

// GerarToken gera um JWT HS256 com validade de 24h.
func GerarToken(userID uint, nome string, isAdmin bool) (string, error) {
	key, err := segredo()
	if err != nil {
		return "", err
	}
	claims := &Claims{
		UserID:  userID,
		Nome:    nome,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidarToken valida o token e retorna as claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	key, err := segredo()
	if err != nil {
		return nil, err
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("não foi possível extrair claims")
	}
	return claims, nil
}
