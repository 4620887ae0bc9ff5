// Package testutil provee repositorios en memoria para pruebas.
package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/google/uuid"
)

// Almacen es un almacén en memoria que implementa los repositorios del
// dominio con la misma semántica que la base de datos: unicidad de cédula
// y de código, y referencias sin cascada.
type Almacen struct {
	mu       sync.Mutex
	clientes []domain.Cliente
	tecnicos []domain.Tecnico
	tickets  []domain.Ticket
}

// NuevoAlmacen crea un almacén vacío
func NuevoAlmacen() *Almacen {
	return &Almacen{}
}

// Clientes devuelve el repositorio de clientes respaldado por el almacén
func (a *Almacen) Clientes() domain.ClienteRepository {
	return &clienteRepo{a}
}

// Tecnicos devuelve el repositorio de técnicos respaldado por el almacén
func (a *Almacen) Tecnicos() domain.TecnicoRepository {
	return &tecnicoRepo{a}
}

// Tickets devuelve el repositorio de tickets respaldado por el almacén
func (a *Almacen) Tickets() domain.TicketRepository {
	return &ticketRepo{a}
}

func contiene(campo, texto string) bool {
	return strings.Contains(strings.ToLower(campo), strings.ToLower(texto))
}

func enLista(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// --- clientes ---

type clienteRepo struct {
	a *Almacen
}

func (r *clienteRepo) Create(_ context.Context, cliente *domain.Cliente) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for _, c := range r.a.clientes {
		if c.Cedula == cliente.Cedula {
			return domain.Conflicto("La cédula ya está registrada")
		}
	}

	cliente.ID = uuid.New().String()
	cliente.CreadoEn = time.Now()
	cliente.ActualizadoEn = cliente.CreadoEn
	r.a.clientes = append(r.a.clientes, *cliente)
	return nil
}

func (r *clienteRepo) GetByID(_ context.Context, id string) (*domain.Cliente, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	return r.a.buscarCliente(id), nil
}

func (r *clienteRepo) GetByCedula(_ context.Context, cedula string) (*domain.Cliente, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for i := range r.a.clientes {
		if r.a.clientes[i].Cedula == cedula {
			c := r.a.clientes[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *clienteRepo) List(_ context.Context) ([]domain.Cliente, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	return append([]domain.Cliente(nil), r.a.clientes...), nil
}

func (r *clienteRepo) Search(_ context.Context, texto string) ([]domain.Cliente, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	var encontrados []domain.Cliente
	for _, c := range r.a.clientes {
		if contiene(c.Nombre, texto) || contiene(c.Apellido, texto) || contiene(c.Cedula, texto) {
			encontrados = append(encontrados, c)
		}
	}
	return encontrados, nil
}

func (r *clienteRepo) SearchIDs(ctx context.Context, texto string) ([]string, error) {
	clientes, err := r.Search(ctx, texto)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(clientes))
	for _, c := range clientes {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (r *clienteRepo) Update(_ context.Context, cliente *domain.Cliente) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for i := range r.a.clientes {
		if r.a.clientes[i].ID != cliente.ID && r.a.clientes[i].Cedula == cliente.Cedula {
			return domain.Conflicto("La cédula ya está registrada")
		}
	}

	for i := range r.a.clientes {
		if r.a.clientes[i].ID == cliente.ID {
			cliente.ActualizadoEn = time.Now()
			r.a.clientes[i] = *cliente
			return nil
		}
	}
	return domain.NoEncontrado("Cliente no encontrado")
}

func (r *clienteRepo) Delete(_ context.Context, id string) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for i := range r.a.clientes {
		if r.a.clientes[i].ID == id {
			r.a.clientes = append(r.a.clientes[:i], r.a.clientes[i+1:]...)
			return nil
		}
	}
	return domain.NoEncontrado("Cliente no encontrado")
}

// --- técnicos ---

type tecnicoRepo struct {
	a *Almacen
}

func (r *tecnicoRepo) Create(_ context.Context, tecnico *domain.Tecnico) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for _, t := range r.a.tecnicos {
		if t.Cedula == tecnico.Cedula {
			return domain.Conflicto("La cédula ya está registrada")
		}
	}

	tecnico.ID = uuid.New().String()
	tecnico.CreadoEn = time.Now()
	tecnico.ActualizadoEn = tecnico.CreadoEn
	r.a.tecnicos = append(r.a.tecnicos, *tecnico)
	return nil
}

func (r *tecnicoRepo) GetByID(_ context.Context, id string) (*domain.Tecnico, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	return r.a.buscarTecnico(id), nil
}

func (r *tecnicoRepo) GetByCedula(_ context.Context, cedula string) (*domain.Tecnico, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for i := range r.a.tecnicos {
		if r.a.tecnicos[i].Cedula == cedula {
			t := r.a.tecnicos[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (r *tecnicoRepo) List(_ context.Context) ([]domain.Tecnico, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	return append([]domain.Tecnico(nil), r.a.tecnicos...), nil
}

func (r *tecnicoRepo) Search(_ context.Context, texto string) ([]domain.Tecnico, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	var encontrados []domain.Tecnico
	for _, t := range r.a.tecnicos {
		if contiene(t.Nombre, texto) || contiene(t.Apellido, texto) || contiene(t.Cedula, texto) {
			encontrados = append(encontrados, t)
		}
	}
	return encontrados, nil
}

func (r *tecnicoRepo) SearchIDs(ctx context.Context, texto string) ([]string, error) {
	tecnicos, err := r.Search(ctx, texto)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(tecnicos))
	for _, t := range tecnicos {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func (r *tecnicoRepo) Update(_ context.Context, tecnico *domain.Tecnico) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for i := range r.a.tecnicos {
		if r.a.tecnicos[i].ID != tecnico.ID && r.a.tecnicos[i].Cedula == tecnico.Cedula {
			return domain.Conflicto("La cédula ya está registrada")
		}
	}

	for i := range r.a.tecnicos {
		if r.a.tecnicos[i].ID == tecnico.ID {
			tecnico.ActualizadoEn = time.Now()
			r.a.tecnicos[i] = *tecnico
			return nil
		}
	}
	return domain.NoEncontrado("Técnico no encontrado")
}

func (r *tecnicoRepo) Delete(_ context.Context, id string) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for i := range r.a.tecnicos {
		if r.a.tecnicos[i].ID == id {
			r.a.tecnicos = append(r.a.tecnicos[:i], r.a.tecnicos[i+1:]...)
			return nil
		}
	}
	return domain.NoEncontrado("Técnico no encontrado")
}

// --- tickets ---

type ticketRepo struct {
	a *Almacen
}

func (r *ticketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for _, t := range r.a.tickets {
		if strings.EqualFold(t.Codigo, ticket.Codigo) {
			return domain.Conflicto("El código del ticket ya está en uso")
		}
	}

	ticket.ID = uuid.New().String()
	ticket.CreadoEn = time.Now()
	ticket.ActualizadoEn = ticket.CreadoEn
	r.a.tickets = append(r.a.tickets, *ticket)
	return nil
}

func (r *ticketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for i := range r.a.tickets {
		if r.a.tickets[i].ID == id {
			t := r.a.tickets[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (r *ticketRepo) GetByCodigo(_ context.Context, codigo string) (*domain.Ticket, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for i := range r.a.tickets {
		if strings.EqualFold(r.a.tickets[i].Codigo, codigo) {
			t := r.a.tickets[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (r *ticketRepo) ListDetalle(_ context.Context) ([]domain.TicketDetalle, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	var detalles []domain.TicketDetalle
	for _, t := range r.a.tickets {
		detalles = append(detalles, r.a.expandir(t))
	}
	return detalles, nil
}

func (r *ticketRepo) SearchDetalle(_ context.Context, filtro domain.TicketFiltro) ([]domain.TicketDetalle, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	var detalles []domain.TicketDetalle
	for _, t := range r.a.tickets {
		if filtro.Codigo != "" && !contiene(t.Codigo, filtro.Codigo) {
			continue
		}
		if filtro.PorCliente && !enLista(filtro.ClienteIDs, t.ClienteID) {
			continue
		}
		if filtro.PorTecnico && !enLista(filtro.TecnicoIDs, t.TecnicoID) {
			continue
		}
		detalles = append(detalles, r.a.expandir(t))
	}
	return detalles, nil
}

func (r *ticketRepo) ListHuerfanos(_ context.Context) ([]domain.Ticket, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	var huerfanos []domain.Ticket
	for _, t := range r.a.tickets {
		if r.a.buscarCliente(t.ClienteID) == nil || r.a.buscarTecnico(t.TecnicoID) == nil {
			huerfanos = append(huerfanos, t)
		}
	}
	return huerfanos, nil
}

func (r *ticketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for i := range r.a.tickets {
		if r.a.tickets[i].ID != ticket.ID && strings.EqualFold(r.a.tickets[i].Codigo, ticket.Codigo) {
			return domain.Conflicto("El código ya está en uso")
		}
	}

	for i := range r.a.tickets {
		if r.a.tickets[i].ID == ticket.ID {
			ticket.ActualizadoEn = time.Now()
			r.a.tickets[i] = *ticket
			return nil
		}
	}
	return domain.NoEncontrado("Ticket no encontrado")
}

func (r *ticketRepo) Delete(_ context.Context, id string) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()

	for i := range r.a.tickets {
		if r.a.tickets[i].ID == id {
			r.a.tickets = append(r.a.tickets[:i], r.a.tickets[i+1:]...)
			return nil
		}
	}
	return domain.NoEncontrado("Ticket no encontrado")
}

// --- expansión de referencias ---

func (a *Almacen) buscarCliente(id string) *domain.Cliente {
	for i := range a.clientes {
		if a.clientes[i].ID == id {
			c := a.clientes[i]
			return &c
		}
	}
	return nil
}

func (a *Almacen) buscarTecnico(id string) *domain.Tecnico {
	for i := range a.tecnicos {
		if a.tecnicos[i].ID == id {
			t := a.tecnicos[i]
			return &t
		}
	}
	return nil
}

func (a *Almacen) expandir(t domain.Ticket) domain.TicketDetalle {
	d := domain.TicketDetalle{
		ID:            t.ID,
		Codigo:        t.Codigo,
		Descripcion:   t.Descripcion,
		CreadoEn:      t.CreadoEn,
		ActualizadoEn: t.ActualizadoEn,
	}

	if c := a.buscarCliente(t.ClienteID); c != nil {
		d.Cliente = &domain.ResumenPersona{ID: c.ID, Nombre: c.Nombre, Apellido: c.Apellido, Cedula: c.Cedula}
	}
	if te := a.buscarTecnico(t.TecnicoID); te != nil {
		d.Tecnico = &domain.ResumenPersona{ID: te.ID, Nombre: te.Nombre, Apellido: te.Apellido, Cedula: te.Cedula}
	}

	return d
}
