package application

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/alessia-23/AsistenciaV1/internal/email"
	"github.com/google/uuid"
)

type TicketService struct {
	ticketRepo  domain.TicketRepository
	clienteRepo domain.ClienteRepository
	tecnicoRepo domain.TecnicoRepository
	emailClient *email.Client
}

// NewTicketService crea una nueva instancia del servicio de tickets.
// emailClient puede ser nil; en ese caso no se envían notificaciones.
func NewTicketService(
	ticketRepo domain.TicketRepository,
	clienteRepo domain.ClienteRepository,
	tecnicoRepo domain.TecnicoRepository,
	emailClient *email.Client,
) *TicketService {
	return &TicketService{
		ticketRepo:  ticketRepo,
		clienteRepo: clienteRepo,
		tecnicoRepo: tecnicoRepo,
		emailClient: emailClient,
	}
}

// Crear crea un nuevo ticket validando que el cliente y el técnico existan
// y que el código no esté en uso. El código se guarda en mayúsculas.
func (s *TicketService) Crear(ctx context.Context, codigo, descripcion, clienteID, tecnicoID string) (*domain.Ticket, error) {
	// Validar campos obligatorios
	if codigo == "" || descripcion == "" || clienteID == "" || tecnicoID == "" {
		return nil, domain.Validacion("Campos obligatorios incompletos")
	}

	// Validar formato de los identificadores antes de cualquier consulta
	if _, err := uuid.Parse(clienteID); err != nil {
		return nil, domain.Referencia("ID de cliente o técnico no válido")
	}
	if _, err := uuid.Parse(tecnicoID); err != nil {
		return nil, domain.Referencia("ID de cliente o técnico no válido")
	}

	// Verificar existencia de cliente y técnico; ambas consultas se
	// resuelven antes de decidir el fallo
	cliente, errCliente := s.clienteRepo.GetByID(ctx, clienteID)
	tecnico, errTecnico := s.tecnicoRepo.GetByID(ctx, tecnicoID)
	if errCliente != nil {
		return nil, fmt.Errorf("error al verificar cliente: %w", errCliente)
	}
	if errTecnico != nil {
		return nil, fmt.Errorf("error al verificar técnico: %w", errTecnico)
	}
	if cliente == nil || tecnico == nil {
		return nil, domain.NoEncontrado("Cliente o técnico no encontrados")
	}

	// Validar código único. La restricción de la base de datos es la
	// fuente de verdad; esta consulta solo anticipa el mensaje.
	codigo = strings.ToUpper(codigo)
	existente, err := s.ticketRepo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, fmt.Errorf("error al verificar código: %w", err)
	}
	if existente != nil {
		return nil, domain.Conflicto("El código del ticket ya está en uso")
	}

	ticket := &domain.Ticket{
		Codigo:      codigo,
		Descripcion: descripcion,
		ClienteID:   clienteID,
		TecnicoID:   tecnicoID,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.notificarTecnico(ticket, cliente, tecnico)

	return ticket, nil
}

// notificarTecnico envía el correo de asignación sin bloquear la petición.
// Un fallo de envío solo se registra; el ticket ya quedó creado.
func (s *TicketService) notificarTecnico(ticket *domain.Ticket, cliente *domain.Cliente, tecnico *domain.Tecnico) {
	if s.emailClient == nil || tecnico.Email == "" {
		return
	}

	info := email.TicketInfo{
		Codigo:        ticket.Codigo,
		Descripcion:   ticket.Descripcion,
		TecnicoEmail:  tecnico.Email,
		TecnicoNombre: tecnico.Nombre,
		ClienteNombre: cliente.Nombre + " " + cliente.Apellido,
		ClienteCedula: cliente.Cedula,
		CreadoEn:      ticket.CreadoEn,
	}

	go func() {
		if err := s.emailClient.SendTicketAsignado(info); err != nil {
			log.Printf("Error enviando notificación del ticket %s: %v", info.Codigo, err)
		}
	}()
}

// Obtener obtiene todos los tickets con sus referencias expandidas
func (s *TicketService) Obtener(ctx context.Context) ([]domain.TicketDetalle, error) {
	tickets, err := s.ticketRepo.ListDetalle(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener tickets: %w", err)
	}
	return tickets, nil
}

// Buscar busca tickets por código, cliente o técnico. Los criterios
// presentes se combinan con AND. Debe venir al menos uno.
func (s *TicketService) Buscar(ctx context.Context, codigo, cliente, tecnico string) ([]domain.TicketDetalle, error) {
	codigo = strings.TrimSpace(codigo)
	cliente = strings.TrimSpace(cliente)
	tecnico = strings.TrimSpace(tecnico)

	if codigo == "" && cliente == "" && tecnico == "" {
		return nil, domain.Validacion("Debe enviar al menos un parámetro de búsqueda")
	}

	filtro := domain.TicketFiltro{Codigo: codigo}

	// Buscar por cliente (nombre, apellido o cédula)
	if cliente != "" {
		ids, err := s.clienteRepo.SearchIDs(ctx, cliente)
		if err != nil {
			return nil, fmt.Errorf("error al buscar clientes: %w", err)
		}
		filtro.ClienteIDs = ids
		filtro.PorCliente = true
	}

	// Buscar por técnico (nombre, apellido o cédula)
	if tecnico != "" {
		ids, err := s.tecnicoRepo.SearchIDs(ctx, tecnico)
		if err != nil {
			return nil, fmt.Errorf("error al buscar técnicos: %w", err)
		}
		filtro.TecnicoIDs = ids
		filtro.PorTecnico = true
	}

	tickets, err := s.ticketRepo.SearchDetalle(ctx, filtro)
	if err != nil {
		return nil, fmt.Errorf("error al buscar tickets: %w", err)
	}

	if len(tickets) == 0 {
		return nil, domain.NoEncontrado("No se encontraron tickets")
	}

	return tickets, nil
}

// ActualizarTicket describe los campos modificables de un ticket.
// Descripcion distingue cadena vacía de campo ausente; el resto de los
// campos se ignoran cuando vienen vacíos.
type ActualizarTicket struct {
	Codigo      *string `json:"codigo"`
	Descripcion *string `json:"descripcion"`
	ClienteID   *string `json:"cliente"`
	TecnicoID   *string `json:"tecnico"`
}

// Actualizar modifica los campos suministrados de un ticket existente
func (s *TicketService) Actualizar(ctx context.Context, id string, campos ActualizarTicket) (*domain.Ticket, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.Referencia("ID no válido")
	}

	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener ticket: %w", err)
	}
	if ticket == nil {
		return nil, domain.NoEncontrado("Ticket no encontrado")
	}

	// Validar código único si viene
	if campos.Codigo != nil && *campos.Codigo != "" {
		codigo := strings.ToUpper(*campos.Codigo)
		existente, err := s.ticketRepo.GetByCodigo(ctx, codigo)
		if err != nil {
			return nil, fmt.Errorf("error al verificar código: %w", err)
		}
		if existente != nil && existente.ID != id {
			return nil, domain.Conflicto("El código ya está en uso")
		}
		ticket.Codigo = codigo
	}

	// Validar cliente si viene
	if campos.ClienteID != nil && *campos.ClienteID != "" {
		if _, err := uuid.Parse(*campos.ClienteID); err != nil {
			return nil, domain.Referencia("ID de cliente no válido")
		}
		cliente, err := s.clienteRepo.GetByID(ctx, *campos.ClienteID)
		if err != nil {
			return nil, fmt.Errorf("error al verificar cliente: %w", err)
		}
		if cliente == nil {
			return nil, domain.NoEncontrado("Cliente no encontrado")
		}
		ticket.ClienteID = *campos.ClienteID
	}

	// Validar técnico si viene
	if campos.TecnicoID != nil && *campos.TecnicoID != "" {
		if _, err := uuid.Parse(*campos.TecnicoID); err != nil {
			return nil, domain.Referencia("ID de técnico no válido")
		}
		tecnico, err := s.tecnicoRepo.GetByID(ctx, *campos.TecnicoID)
		if err != nil {
			return nil, fmt.Errorf("error al verificar técnico: %w", err)
		}
		if tecnico == nil {
			return nil, domain.NoEncontrado("Técnico no encontrado")
		}
		ticket.TecnicoID = *campos.TecnicoID
	}

	if campos.Descripcion != nil {
		ticket.Descripcion = *campos.Descripcion
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// Eliminar elimina un ticket por su ID
func (s *TicketService) Eliminar(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Referencia("ID no válido")
	}

	return s.ticketRepo.Delete(ctx, id)
}
