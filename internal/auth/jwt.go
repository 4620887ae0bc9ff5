package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims son los claims que viajan en el token de sesión.
// La emisión de tokens es responsabilidad del servicio de autenticación;
// aquí solo se firman (para pruebas y herramientas) y se validan.
type Claims struct {
	UsuarioID string `json:"uid"`
	jwt.RegisteredClaims
}

// FirmarToken firma un token HS256 con el secreto compartido
func FirmarToken(secreto, usuarioID string, duracion time.Duration) (string, error) {
	ahora := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UsuarioID: usuarioID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(ahora),
			ExpiresAt: jwt.NewNumericDate(ahora.Add(duracion)),
		},
	}).SignedString([]byte(secreto))
}

// ValidarToken valida un token firmado con el secreto compartido
func ValidarToken(secreto, token string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secreto), nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
