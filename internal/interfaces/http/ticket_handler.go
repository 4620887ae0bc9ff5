package http

import (
	"github.com/alessia-23/AsistenciaV1/internal/application"
	"github.com/gofiber/fiber/v2"
)

type TicketHandler struct {
	service *application.TicketService
}

// NewTicketHandler crea una nueva instancia del handler de tickets
func NewTicketHandler(service *application.TicketService) *TicketHandler {
	return &TicketHandler{
		service: service,
	}
}

// CrearTicketRequest representa la petición para crear un ticket
type CrearTicketRequest struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Cliente     string `json:"cliente"`
	Tecnico     string `json:"tecnico"`
}

// Crear crea un nuevo ticket
func (h *TicketHandler) Crear(c *fiber.Ctx) error {
	var req CrearTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Formato de solicitud inválido",
		})
	}

	ticket, err := h.service.Crear(c.Context(), req.Codigo, req.Descripcion, req.Cliente, req.Tecnico)
	if err != nil {
		return responderError(c, err, "Error del servidor al crear ticket")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":    "Ticket creado correctamente",
		"ticket": ticket,
	})
}

// Obtener obtiene todos los tickets con sus referencias expandidas
func (h *TicketHandler) Obtener(c *fiber.Ctx) error {
	tickets, err := h.service.Obtener(c.Context())
	if err != nil {
		return responderError(c, err, "Error del servidor al obtener tickets")
	}

	return c.JSON(tickets)
}

// Buscar busca tickets por código, cliente o técnico
func (h *TicketHandler) Buscar(c *fiber.Ctx) error {
	tickets, err := h.service.Buscar(
		c.Context(),
		c.Query("codigo"),
		c.Query("cliente"),
		c.Query("tecnico"),
	)
	if err != nil {
		return responderError(c, err, "Error del servidor al buscar tickets")
	}

	return c.JSON(fiber.Map{
		"tickets": tickets,
	})
}

// Actualizar modifica los campos suministrados de un ticket
func (h *TicketHandler) Actualizar(c *fiber.Ctx) error {
	var campos application.ActualizarTicket
	if err := c.BodyParser(&campos); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Formato de solicitud inválido",
		})
	}

	ticket, err := h.service.Actualizar(c.Context(), c.Params("id"), campos)
	if err != nil {
		return responderError(c, err, "Error del servidor al actualizar ticket")
	}

	return c.JSON(fiber.Map{
		"msg":    "Ticket actualizado correctamente",
		"ticket": ticket,
	})
}

// Eliminar elimina un ticket por su ID
func (h *TicketHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.service.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err, "Error del servidor")
	}

	return c.JSON(fiber.Map{
		"msg": "Ticket eliminado correctamente",
	})
}
