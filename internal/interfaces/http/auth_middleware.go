package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cvergaraq/bodega-api/internal/application/auth"
	"github.com/cvergaraq/bodega-api/internal/application/dto"
	"github.com/cvergaraq/bodega-api/pkg/jwt"
)

// Locals keys para identidad y permisos en Fiber.
const (
	LocalUserID       = "user_id"
	LocalRole         = "role"
	LocalCapabilities = "capabilities"
)

// AuthMiddleware valida el Bearer Token JWT y deja en c.Locals el UserID, el
// rol y su conjunto de capacidades. La política rol→capacidades se evalúa una
// sola vez por request; los handlers solo declaran qué capacidad exigen.
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
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalCapabilities, auth.CapabilitiesFor(role))
		return c.Next()
	}
}

// RequireCapability corta con 403 si el rol autenticado no tiene la capacidad.
func RequireCapability(required auth.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caps, ok := c.Locals(LocalCapabilities).(auth.CapabilitySet)
		if !ok || !caps.Has(required) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
