package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la
// aplicación. Rol y LocalID viajan en el token para que el middleware pueda
// armar el alcance de la sesión sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64  `json:"user_id"`
	LocalID *int64 `json:"local_id,omitempty"`
	Rol     string `json:"rol"` // "admin" | "gerente" | "empleado"
}

// Generate genera un token JWT firmado con userID, localID y rol.
func Generate(secret string, userID int64, localID *int64, rol, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:  userID,
		LocalID: localID,
		Rol:     rol,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve userID, localID y rol.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (userID int64, localID *int64, rol string, err error) {
	if secret == "" {
		return 0, nil, "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, nil, "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, nil, "", fmt.Errorf("claims inválidos")
	}
	return claims.UserID, claims.LocalID, claims.Rol, nil
}
