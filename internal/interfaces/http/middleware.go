package http

import (
	"strings"

	"github.com/alessia-23/AsistenciaV1/internal/application"
	"github.com/alessia-23/AsistenciaV1/internal/auth"
	"github.com/gofiber/fiber/v2"
)

// ProtegerRuta exige un token Bearer válido antes de llegar a cualquier
// handler. La emisión de tokens corre por cuenta del servicio de
// autenticación; aquí solo se verifica la firma y la vigencia.
func ProtegerRuta(secreto string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cabecera := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(cabecera, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "No autorizado, falta el token",
			})
		}

		token := strings.TrimPrefix(cabecera, "Bearer ")
		claims, err := auth.ValidarToken(secreto, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "No autorizado, token inválido o expirado",
			})
		}

		c.Locals("usuarioID", claims.UsuarioID)
		return c.Next()
	}
}

// LimitarBusquedas aplica el rate limiter por IP a los endpoints de búsqueda
func LimitarBusquedas(limiter *application.RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		permitido, err := limiter.Allow(c.IP())
		if !permitido {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"msg": err.Error(),
			})
		}
		return c.Next()
	}
}
