package domain

import (
	"context"
	"time"
)

// Ticket representa una incidencia asignada a un técnico
type Ticket struct {
	ID            string    `json:"id"`
	Codigo        string    `json:"codigo"`
	Descripcion   string    `json:"descripcion"`
	ClienteID     string    `json:"cliente"`
	TecnicoID     string    `json:"tecnico"`
	CreadoEn      time.Time `json:"creadoEn"`
	ActualizadoEn time.Time `json:"actualizadoEn"`
}

// ResumenPersona es la proyección de cliente o técnico que se expone
// al expandir referencias en listados y búsquedas
type ResumenPersona struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Cedula   string `json:"cedula"`
}

// TicketDetalle es un ticket con sus referencias expandidas.
// Cliente o Tecnico quedan en nil cuando la referencia apunta a un
// registro que ya no existe.
type TicketDetalle struct {
	ID            string          `json:"id"`
	Codigo        string          `json:"codigo"`
	Descripcion   string          `json:"descripcion"`
	Cliente       *ResumenPersona `json:"cliente"`
	Tecnico       *ResumenPersona `json:"tecnico"`
	CreadoEn      time.Time       `json:"creadoEn"`
	ActualizadoEn time.Time       `json:"actualizadoEn"`
}

// TicketFiltro describe los criterios de búsqueda de tickets.
// Los criterios presentes se combinan con AND.
type TicketFiltro struct {
	// Codigo filtra por subcadena del código, sin distinguir mayúsculas
	Codigo string
	// ClienteIDs restringe a tickets de estos clientes cuando PorCliente es true
	ClienteIDs []string
	PorCliente bool
	// TecnicoIDs restringe a tickets de estos técnicos cuando PorTecnico es true
	TecnicoIDs []string
	PorTecnico bool
}

// TicketRepository define las operaciones con tickets
type TicketRepository interface {
	// Create crea un nuevo ticket asignándole un ID
	Create(ctx context.Context, ticket *Ticket) error
	// GetByID obtiene un ticket por su ID; devuelve nil sin error si no existe
	GetByID(ctx context.Context, id string) (*Ticket, error)
	// GetByCodigo busca un ticket por código exacto; devuelve nil sin error si no existe
	GetByCodigo(ctx context.Context, codigo string) (*Ticket, error)
	// ListDetalle obtiene todos los tickets con referencias expandidas
	ListDetalle(ctx context.Context) ([]TicketDetalle, error)
	// SearchDetalle busca tickets según el filtro, con referencias expandidas
	SearchDetalle(ctx context.Context, filtro TicketFiltro) ([]TicketDetalle, error)
	// ListHuerfanos obtiene tickets cuyo cliente o técnico ya no existe
	ListHuerfanos(ctx context.Context) ([]Ticket, error)
	// Update actualiza un ticket existente
	Update(ctx context.Context, ticket *Ticket) error
	// Delete elimina un ticket por su ID
	Delete(ctx context.Context, id string) error
}
