package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ticketRepository struct {
	db *sql.DB
}

// NewTicketRepository crea una nueva instancia del repositorio de tickets
func NewTicketRepository(db *sql.DB) domain.TicketRepository {
	return &ticketRepository{db: db}
}

// Create crea un nuevo ticket asignándole un ID
func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	ticket.ID = uuid.New().String()

	query := `
		INSERT INTO ticket (ticket_id, codigo, descripcion, cliente_id, tecnico_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING creado_en, actualizado_en
	`

	err := r.db.QueryRowContext(ctx, query,
		ticket.ID,
		ticket.Codigo,
		ticket.Descripcion,
		ticket.ClienteID,
		ticket.TecnicoID,
	).Scan(&ticket.CreadoEn, &ticket.ActualizadoEn)

	if esViolacionUnicidad(err) {
		return domain.Conflicto("El código del ticket ya está en uso")
	}

	if err != nil {
		return fmt.Errorf("error al crear ticket: %w", err)
	}

	return nil
}

// GetByID obtiene un ticket por su ID
func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return r.buscarUno(ctx, `WHERE ticket_id = $1`, id)
}

// GetByCodigo busca un ticket por código exacto
func (r *ticketRepository) GetByCodigo(ctx context.Context, codigo string) (*domain.Ticket, error) {
	return r.buscarUno(ctx, `WHERE upper(codigo) = upper($1)`, codigo)
}

func (r *ticketRepository) buscarUno(ctx context.Context, condicion string, arg any) (*domain.Ticket, error) {
	query := `
		SELECT ticket_id, codigo, descripcion, cliente_id, tecnico_id, creado_en, actualizado_en
		FROM ticket
	` + condicion

	ticket := &domain.Ticket{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&ticket.ID,
		&ticket.Codigo,
		&ticket.Descripcion,
		&ticket.ClienteID,
		&ticket.TecnicoID,
		&ticket.CreadoEn,
		&ticket.ActualizadoEn,
	)

	if err == sql.ErrNoRows {
		return nil, nil // No existe, devolver nil sin error
	}

	if err != nil {
		return nil, fmt.Errorf("error al buscar ticket: %w", err)
	}

	return ticket, nil
}

// consultaDetalle es la consulta base de tickets con sus referencias
// expandidas. Los LEFT JOIN permiten listar tickets cuyo cliente o
// técnico ya fue eliminado.
const consultaDetalle = `
	SELECT t.ticket_id, t.codigo, t.descripcion, t.creado_en, t.actualizado_en,
	       c.cliente_id, c.nombre, c.apellido, c.cedula,
	       te.tecnico_id, te.nombre, te.apellido, te.cedula
	FROM ticket t
	LEFT JOIN cliente c ON c.cliente_id = t.cliente_id
	LEFT JOIN tecnico te ON te.tecnico_id = t.tecnico_id
`

// ListDetalle obtiene todos los tickets con referencias expandidas
func (r *ticketRepository) ListDetalle(ctx context.Context) ([]domain.TicketDetalle, error) {
	rows, err := r.db.QueryContext(ctx, consultaDetalle+` ORDER BY t.creado_en`)
	if err != nil {
		return nil, fmt.Errorf("error al listar tickets: %w", err)
	}
	defer rows.Close()

	return recogerDetalles(rows)
}

// SearchDetalle busca tickets según el filtro, con referencias expandidas.
// Los criterios presentes se combinan con AND.
func (r *ticketRepository) SearchDetalle(ctx context.Context, filtro domain.TicketFiltro) ([]domain.TicketDetalle, error) {
	var condiciones []string
	var args []any

	if filtro.Codigo != "" {
		args = append(args, filtro.Codigo)
		condiciones = append(condiciones, fmt.Sprintf(`t.codigo ILIKE '%%' || $%d || '%%'`, len(args)))
	}

	if filtro.PorCliente {
		args = append(args, pq.Array(filtro.ClienteIDs))
		condiciones = append(condiciones, fmt.Sprintf(`t.cliente_id = ANY($%d::uuid[])`, len(args)))
	}

	if filtro.PorTecnico {
		args = append(args, pq.Array(filtro.TecnicoIDs))
		condiciones = append(condiciones, fmt.Sprintf(`t.tecnico_id = ANY($%d::uuid[])`, len(args)))
	}

	query := consultaDetalle
	if len(condiciones) > 0 {
		query += ` WHERE ` + strings.Join(condiciones, " AND ")
	}
	query += ` ORDER BY t.creado_en`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al buscar tickets: %w", err)
	}
	defer rows.Close()

	return recogerDetalles(rows)
}

// ListHuerfanos obtiene tickets cuyo cliente o técnico ya no existe
func (r *ticketRepository) ListHuerfanos(ctx context.Context) ([]domain.Ticket, error) {
	query := `
		SELECT t.ticket_id, t.codigo, t.descripcion, t.cliente_id, t.tecnico_id, t.creado_en, t.actualizado_en
		FROM ticket t
		LEFT JOIN cliente c ON c.cliente_id = t.cliente_id
		LEFT JOIN tecnico te ON te.tecnico_id = t.tecnico_id
		WHERE c.cliente_id IS NULL OR te.tecnico_id IS NULL
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error al listar tickets huérfanos: %w", err)
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(
			&t.ID, &t.Codigo, &t.Descripcion,
			&t.ClienteID, &t.TecnicoID,
			&t.CreadoEn, &t.ActualizadoEn,
		); err != nil {
			return nil, fmt.Errorf("error al leer ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// Update actualiza un ticket existente
func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		UPDATE ticket
		SET codigo = $1,
		    descripcion = $2,
		    cliente_id = $3,
		    tecnico_id = $4,
		    actualizado_en = NOW()
		WHERE ticket_id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		ticket.Codigo,
		ticket.Descripcion,
		ticket.ClienteID,
		ticket.TecnicoID,
		ticket.ID,
	)

	if esViolacionUnicidad(err) {
		return domain.Conflicto("El código ya está en uso")
	}

	if err != nil {
		return fmt.Errorf("error al actualizar ticket: %w", err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}

	if filas == 0 {
		return domain.NoEncontrado("Ticket no encontrado")
	}

	return nil
}

// Delete elimina un ticket por su ID
func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ticket WHERE ticket_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar ticket: %w", err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}

	if filas == 0 {
		return domain.NoEncontrado("Ticket no encontrado")
	}

	return nil
}

func recogerDetalles(rows *sql.Rows) ([]domain.TicketDetalle, error) {
	var detalles []domain.TicketDetalle
	for rows.Next() {
		var d domain.TicketDetalle
		var clienteID, clienteNombre, clienteApellido, clienteCedula sql.NullString
		var tecnicoID, tecnicoNombre, tecnicoApellido, tecnicoCedula sql.NullString

		if err := rows.Scan(
			&d.ID, &d.Codigo, &d.Descripcion, &d.CreadoEn, &d.ActualizadoEn,
			&clienteID, &clienteNombre, &clienteApellido, &clienteCedula,
			&tecnicoID, &tecnicoNombre, &tecnicoApellido, &tecnicoCedula,
		); err != nil {
			return nil, fmt.Errorf("error al leer ticket: %w", err)
		}

		if clienteID.Valid {
			d.Cliente = &domain.ResumenPersona{
				ID:       clienteID.String,
				Nombre:   clienteNombre.String,
				Apellido: clienteApellido.String,
				Cedula:   clienteCedula.String,
			}
		}

		if tecnicoID.Valid {
			d.Tecnico = &domain.ResumenPersona{
				ID:       tecnicoID.String,
				Nombre:   tecnicoNombre.String,
				Apellido: tecnicoApellido.String,
				Cedula:   tecnicoCedula.String,
			}
		}

		detalles = append(detalles, d)
	}
	return detalles, rows.Err()
}
