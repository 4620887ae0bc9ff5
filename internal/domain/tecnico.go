package domain

import (
	"context"
	"time"
)

// Tecnico representa un técnico que atiende tickets
type Tecnico struct {
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

// TecnicoRepository define las operaciones con técnicos
type TecnicoRepository interface {
	// Create crea un nuevo técnico asignándole un ID
	Create(ctx context.Context, tecnico *Tecnico) error
	// GetByID obtiene un técnico por su ID; devuelve nil sin error si no existe
	GetByID(ctx context.Context, id string) (*Tecnico, error)
	// GetByCedula busca un técnico por su cédula; devuelve nil sin error si no existe
	GetByCedula(ctx context.Context, cedula string) (*Tecnico, error)
	// List obtiene todos los técnicos
	List(ctx context.Context) ([]Tecnico, error)
	// Search busca técnicos cuyo nombre, apellido o cédula contenga el texto
	Search(ctx context.Context, texto string) ([]Tecnico, error)
	// SearchIDs devuelve los IDs de los técnicos que coinciden con el texto
	SearchIDs(ctx context.Context, texto string) ([]string, error)
	// Update actualiza los datos de un técnico existente
	Update(ctx context.Context, tecnico *Tecnico) error
	// Delete elimina un técnico por su ID
	Delete(ctx context.Context, id string) error
}
