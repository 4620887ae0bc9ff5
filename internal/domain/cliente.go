package domain

import (
	"context"
	"time"
)

// Cliente representa un cliente que reporta incidencias
type Cliente struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Cedula        string    `json:"cedula"`
	Email         string    `json:"email,omitempty"`
	Telefono      string    `json:"telefono,omitempty"`
	Direccion     string    `json:"direccion,omitempty"`
	CreadoEn      time.Time `json:"creadoEn"`
	ActualizadoEn time.Time `json:"actualizadoEn"`
}

// ClienteRepository define las operaciones con clientes
type ClienteRepository interface {
	// Create crea un nuevo cliente asignándole un ID
	Create(ctx context.Context, cliente *Cliente) error
	// GetByID obtiene un cliente por su ID; devuelve nil sin error si no existe
	GetByID(ctx context.Context, id string) (*Cliente, error)
	// GetByCedula busca un cliente por su cédula; devuelve nil sin error si no existe
	GetByCedula(ctx context.Context, cedula string) (*Cliente, error)
	// List obtiene todos los clientes
	List(ctx context.Context) ([]Cliente, error)
	// Search busca clientes cuyo nombre, apellido o cédula contenga el texto
	Search(ctx context.Context, texto string) ([]Cliente, error)
	// SearchIDs devuelve los IDs de los clientes que coinciden con el texto
	SearchIDs(ctx context.Context, texto string) ([]string, error)
	// Update actualiza los datos de un cliente existente
	Update(ctx context.Context, cliente *Cliente) error
	// Delete elimina un cliente por su ID
	Delete(ctx context.Context, id string) error
}
