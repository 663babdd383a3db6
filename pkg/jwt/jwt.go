package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de token emitidos por la aplicación.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role permite que el middleware RBAC tome decisiones sin consultar la DB;
// TokenType distingue access de refresh para que uno no sirva en lugar del otro.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"` // "access" | "refresh"
}

// GenerateAccess genera un access token firmado con userID y role.
func GenerateAccess(secret, userID, role, issuer string, expMinutes int) (string, error) {
	token, _, err := generate(secret, userID, role, issuer, TypeAccess, expMinutes)
	return token, err
}

// GenerateRefresh genera un refresh token firmado y devuelve también su JTI,
// que es la clave usada por la blacklist en logout.
func GenerateRefresh(secret, userID, role, issuer string, expMinutes int) (token, jti string, err error) {
	return generate(secret, userID, role, issuer, TypeRefresh, expMinutes)
}

func generate(secret, userID, role, issuer, tokenType string, expMinutes int) (string, string, error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	jti := uuid.New().String()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return signed, jti, nil
}

// Parse valida el token y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ParseAccess valida el token y exige que sea de tipo access.
func ParseAccess(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeAccess {
		return nil, fmt.Errorf("se esperaba un access token")
	}
	return claims, nil
}

// ParseRefresh valida el token y exige que sea de tipo refresh.
func ParseRefresh(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeRefresh {
		return nil, fmt.Errorf("se esperaba un refresh token")
	}
	return claims, nil
}
