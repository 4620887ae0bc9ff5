package http

import (
	"github.com/alessia-23/AsistenciaV1/internal/application"
	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type ClienteHandler struct {
	service *application.ClienteService
}

// NewClienteHandler crea una nueva instancia del handler de clientes
func NewClienteHandler(service *application.ClienteService) *ClienteHandler {
	return &ClienteHandler{
		service: service,
	}
}

// CrearPersonaRequest representa la petición para crear un cliente o técnico
type CrearPersonaRequest struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Cedula    string `json:"cedula"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// Crear crea un nuevo cliente
func (h *ClienteHandler) Crear(c *fiber.Ctx) error {
	var req CrearPersonaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Formato de solicitud inválido",
		})
	}

	cliente, err := h.service.Crear(c.Context(), &domain.Cliente{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Cedula:    req.Cedula,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	})
	if err != nil {
		return responderError(c, err, "Error del servidor al crear cliente")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":     "Cliente creado correctamente",
		"cliente": cliente,
	})
}

// Obtener obtiene todos los clientes
func (h *ClienteHandler) Obtener(c *fiber.Ctx) error {
	clientes, err := h.service.Obtener(c.Context())
	if err != nil {
		return responderError(c, err, "Error del servidor al obtener clientes")
	}

	return c.JSON(clientes)
}

// Buscar busca clientes por nombre, apellido o cédula
func (h *ClienteHandler) Buscar(c *fiber.Ctx) error {
	clientes, err := h.service.Buscar(c.Context(), c.Query("busqueda"))
	if err != nil {
		return responderError(c, err, "Error del servidor al buscar clientes")
	}

	return c.JSON(fiber.Map{
		"clientes": clientes,
	})
}

// Actualizar modifica los campos suministrados de un cliente
func (h *ClienteHandler) Actualizar(c *fiber.Ctx) error {
	var campos application.ActualizarPersona
	if err := c.BodyParser(&campos); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Formato de solicitud inválido",
		})
	}

	cliente, err := h.service.Actualizar(c.Context(), c.Params("id"), campos)
	if err != nil {
		return responderError(c, err, "Error del servidor al actualizar cliente")
	}

	return c.JSON(fiber.Map{
		"msg":     "Cliente actualizado correctamente",
		"cliente": cliente,
	})
}

// Eliminar elimina un cliente por su ID
func (h *ClienteHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.service.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err, "Error del servidor")
	}

	return c.JSON(fiber.Map{
		"msg": "Cliente eliminado correctamente",
	})
}
