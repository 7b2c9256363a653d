package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/pkg/jwt"
)

// Clave de c.Locals donde queda el alcance de la sesión. "scope" a secas
// chocaría con los locales (sedes) del dominio.
const localsScope = "session_scope"

// AuthMiddleware valida el Bearer Token JWT y deja el Scope de la sesión en
// c.Locals para los handlers protegidos.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, localID, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(localsScope, domain.Scope{UserID: userID, Rol: rol, LocalID: localID})
		return c.Next()
	}
}

// OptionalAuthMiddleware intenta cargar el Scope si viene un Bearer válido,
// pero nunca rechaza: la ruta sigue siendo pública. Lo usa el registro
// directo de movimientos, que firma al autor cuando hay sesión.
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString := strings.TrimSpace(parts[1])
			if userID, localID, rol, err := jwt.Parse(jwtSecret, tokenString); err == nil {
				c.Locals(localsScope, domain.Scope{UserID: userID, Rol: rol, LocalID: localID})
			}
		}
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de
// AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope, ok := GetScope(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión no establecida"})
		}
		if scope.Rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no trae rol"})
		}
		for _, rol := range roles {
			if scope.Rol == rol {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta ruta"})
	}
}

// GetScope devuelve el alcance de la sesión (después del middleware de auth).
func GetScope(c *fiber.Ctx) (domain.Scope, bool) {
	v := c.Locals(localsScope)
	if v == nil {
		return domain.Scope{}, false
	}
	scope, ok := v.(domain.Scope)
	return scope, ok
}
