package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceName es la etiqueta constante que va en cada fila Auth.
const ServiceName = "MiVet"

// sessionTTL es la ventana fija de vigencia del token: 1440 minutos.
const sessionTTL = 1440 * time.Minute

// Claims replica el payload {user_id, rol, exp} del token de sesión.
// exp es la única claim registrada que se emite.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"rol"`
}

// TokenCodec firma tokens de sesión con HMAC-SHA256 y una clave
// simétrica única por proceso.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue emite un token de sesión para el usuario y rol dados,
// con expiración en now + 1440 minutos.
func (c *TokenCodec) Issue(userID, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(c.now().Add(sessionTTL)),
		},
		UserID: userID,
		Role:   role,
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse valida firma y expiración y devuelve las claims.
// Ninguna ruta HTTP de este servicio verifica tokens (la verificación
// vive en un servicio aparte, no inventamos ese endpoint acá); Parse
// existe para consumidores embebidos y para los tests.
func (c *TokenCodec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("session token is invalid")
	}
	return claims, nil
}
