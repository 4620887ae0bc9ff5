package http

import (
	"fmt"
	"log"

	services "github.com/alessia-23/AsistenciaV1/internal/service"
	"github.com/gofiber/fiber/v2"
)

type AdjuntoHandler struct {
	service *services.S3Service
}

// NewAdjuntoHandler crea una nueva instancia del handler de adjuntos
func NewAdjuntoHandler(service *services.S3Service) *AdjuntoHandler {
	return &AdjuntoHandler{
		service: service,
	}
}

// Subir sube un adjunto de ticket y devuelve su URL
func (h *AdjuntoHandler) Subir(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Debe enviar un archivo en el campo 'archivo'",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Failed to open file %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": fmt.Sprintf("Error al abrir el archivo: %v", err),
		})
	}
	defer file.Close()

	url, err := h.service.UploadAdjunto(file, fileHeader)
	if err != nil {
		log.Printf("Failed to upload file %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Error al subir el archivo",
		})
	}

	return c.JSON(fiber.Map{
		"msg": "Adjunto subido correctamente",
		"url": url,
	})
}
