package http

import (
	"errors"
	"log"

	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// responderError traduce un error de negocio a la respuesta JSON del API.
// Los errores fuera de la taxonomía de dominio se registran y producen un
// 500 con el mensaje genérico de la operación.
func responderError(c *fiber.Ctx, err error, msgServidor string) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return c.Status(estadoPorTipo(de.Tipo)).JSON(fiber.Map{
			"msg": de.Mensaje,
		})
	}

	log.Printf("%s: %v", msgServidor, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"msg": msgServidor,
	})
}

func estadoPorTipo(tipo domain.TipoError) int {
	switch tipo {
	case domain.ErrorNoEncontrado:
		return fiber.StatusNotFound
	case domain.ErrorValidacion, domain.ErrorReferencia, domain.ErrorConflicto:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
