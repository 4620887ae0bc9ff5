package http

import (
	"github.com/alessia-23/AsistenciaV1/internal/application"
	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type TecnicoHandler struct {
	service *application.TecnicoService
}

// NewTecnicoHandler crea una nueva instancia del handler de técnicos
func NewTecnicoHandler(service *application.TecnicoService) *TecnicoHandler {
	return &TecnicoHandler{
		service: service,
	}
}

// Crear crea un nuevo técnico
func (h *TecnicoHandler) Crear(c *fiber.Ctx) error {
	var req CrearPersonaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Formato de solicitud inválido",
		})
	}

	tecnico, err := h.service.Crear(c.Context(), &domain.Tecnico{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Cedula:    req.Cedula,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	})
	if err != nil {
		return responderError(c, err, "Error del servidor al crear técnico")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":     "Técnico creado correctamente",
		"tecnico": tecnico,
	})
}

// Obtener obtiene todos los técnicos
func (h *TecnicoHandler) Obtener(c *fiber.Ctx) error {
	tecnicos, err := h.service.Obtener(c.Context())
	if err != nil {
		return responderError(c, err, "Error del servidor al obtener técnicos")
	}

	return c.JSON(tecnicos)
}

// Buscar busca técnicos por nombre, apellido o cédula
func (h *TecnicoHandler) Buscar(c *fiber.Ctx) error {
	tecnicos, err := h.service.Buscar(c.Context(), c.Query("busqueda"))
	if err != nil {
		return responderError(c, err, "Error del servidor al buscar técnicos")
	}

	return c.JSON(fiber.Map{
		"tecnicos": tecnicos,
	})
}

// Actualizar modifica los campos suministrados de un técnico
func (h *TecnicoHandler) Actualizar(c *fiber.Ctx) error {
	var campos application.ActualizarPersona
	if err := c.BodyParser(&campos); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Formato de solicitud inválido",
		})
	}

	tecnico, err := h.service.Actualizar(c.Context(), c.Params("id"), campos)
	if err != nil {
		return responderError(c, err, "Error del servidor al actualizar técnico")
	}

	return c.JSON(fiber.Map{
		"msg":     "Técnico actualizado correctamente",
		"tecnico": tecnico,
	})
}

// Eliminar elimina un técnico por su ID
func (h *TecnicoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.service.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err, "Error del servidor")
	}

	return c.JSON(fiber.Map{
		"msg": "Técnico eliminado correctamente",
	})
}
