package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type clienteRepository struct {
	db *sql.DB
}

// NewClienteRepository crea una nueva instancia del repositorio de clientes
func NewClienteRepository(db *sql.DB) domain.ClienteRepository {
	return &clienteRepository{db: db}
}

// esViolacionUnicidad detecta una violación de restricción de unicidad de PostgreSQL.
// La base de datos es la fuente de verdad de la unicidad; las verificaciones
// previas de los servicios solo mejoran el mensaje.
func esViolacionUnicidad(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Create crea un nuevo cliente asignándole un ID
func (r *clienteRepository) Create(ctx context.Context, cliente *domain.Cliente) error {
	cliente.ID = uuid.New().String()

	query := `
		INSERT INTO cliente (cliente_id, nombre, apellido, cedula, email, telefono, direccion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING creado_en, actualizado_en
	`

	err := r.db.QueryRowContext(ctx, query,
		cliente.ID,
		cliente.Nombre,
		cliente.Apellido,
		cliente.Cedula,
		textoNulo(cliente.Email),
		textoNulo(cliente.Telefono),
		textoNulo(cliente.Direccion),
	).Scan(&cliente.CreadoEn, &cliente.ActualizadoEn)

	if esViolacionUnicidad(err) {
		return domain.Conflicto("La cédula ya está registrada")
	}

	if err != nil {
		return fmt.Errorf("error al crear cliente: %w", err)
	}

	return nil
}

// GetByID obtiene un cliente por su ID
func (r *clienteRepository) GetByID(ctx context.Context, id string) (*domain.Cliente, error) {
	return r.buscarUno(ctx, `WHERE cliente_id = $1`, id)
}

// GetByCedula busca un cliente por su cédula
func (r *clienteRepository) GetByCedula(ctx context.Context, cedula string) (*domain.Cliente, error) {
	return r.buscarUno(ctx, `WHERE cedula = $1`, cedula)
}

func (r *clienteRepository) buscarUno(ctx context.Context, condicion string, arg any) (*domain.Cliente, error) {
	query := `
		SELECT cliente_id, nombre, apellido, cedula, email, telefono, direccion, creado_en, actualizado_en
		FROM cliente
	` + condicion

	cliente, err := escanearCliente(r.db.QueryRowContext(ctx, query, arg))

	if err == sql.ErrNoRows {
		return nil, nil // No existe, devolver nil sin error
	}

	if err != nil {
		return nil, fmt.Errorf("error al buscar cliente: %w", err)
	}

	return cliente, nil
}

// List obtiene todos los clientes
func (r *clienteRepository) List(ctx context.Context) ([]domain.Cliente, error) {
	query := `
		SELECT cliente_id, nombre, apellido, cedula, email, telefono, direccion, creado_en, actualizado_en
		FROM cliente
		ORDER BY creado_en
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error al listar clientes: %w", err)
	}
	defer rows.Close()

	return recogerClientes(rows)
}

// Search busca clientes cuyo nombre, apellido o cédula contenga el texto
func (r *clienteRepository) Search(ctx context.Context, texto string) ([]domain.Cliente, error) {
	query := `
		SELECT cliente_id, nombre, apellido, cedula, email, telefono, direccion, creado_en, actualizado_en
		FROM cliente
		WHERE nombre ILIKE '%' || $1 || '%'
		   OR apellido ILIKE '%' || $1 || '%'
		   OR cedula ILIKE '%' || $1 || '%'
		ORDER BY creado_en
	`

	rows, err := r.db.QueryContext(ctx, query, texto)
	if err != nil {
		return nil, fmt.Errorf("error al buscar clientes: %w", err)
	}
	defer rows.Close()

	return recogerClientes(rows)
}

// SearchIDs devuelve los IDs de los clientes que coinciden con el texto
func (r *clienteRepository) SearchIDs(ctx context.Context, texto string) ([]string, error) {
	query := `
		SELECT cliente_id
		FROM cliente
		WHERE nombre ILIKE '%' || $1 || '%'
		   OR apellido ILIKE '%' || $1 || '%'
		   OR cedula ILIKE '%' || $1 || '%'
	`

	rows, err := r.db.QueryContext(ctx, query, texto)
	if err != nil {
		return nil, fmt.Errorf("error al buscar clientes: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error al leer cliente: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update actualiza los datos de un cliente existente
func (r *clienteRepository) Update(ctx context.Context, cliente *domain.Cliente) error {
	query := `
		UPDATE cliente
		SET nombre = $1,
		    apellido = $2,
		    cedula = $3,
		    email = $4,
		    telefono = $5,
		    direccion = $6,
		    actualizado_en = NOW()
		WHERE cliente_id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		cliente.Nombre,
		cliente.Apellido,
		cliente.Cedula,
		textoNulo(cliente.Email),
		textoNulo(cliente.Telefono),
		textoNulo(cliente.Direccion),
		cliente.ID,
	)

	if esViolacionUnicidad(err) {
		return domain.Conflicto("La cédula ya está registrada")
	}

	if err != nil {
		return fmt.Errorf("error al actualizar cliente: %w", err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}

	if filas == 0 {
		return domain.NoEncontrado("Cliente no encontrado")
	}

	return nil
}

// Delete elimina un cliente por su ID
func (r *clienteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cliente WHERE cliente_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar cliente: %w", err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}

	if filas == 0 {
		return domain.NoEncontrado("Cliente no encontrado")
	}

	return nil
}

type escaneador interface {
	Scan(dest ...any) error
}

func escanearCliente(fila escaneador) (*domain.Cliente, error) {
	cliente := &domain.Cliente{}
	var email, telefono, direccion sql.NullString

	err := fila.Scan(
		&cliente.ID,
		&cliente.Nombre,
		&cliente.Apellido,
		&cliente.Cedula,
		&email,
		&telefono,
		&direccion,
		&cliente.CreadoEn,
		&cliente.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}

	cliente.Email = email.String
	cliente.Telefono = telefono.String
	cliente.Direccion = direccion.String

	return cliente, nil
}

func recogerClientes(rows *sql.Rows) ([]domain.Cliente, error) {
	var clientes []domain.Cliente
	for rows.Next() {
		cliente, err := escanearCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer cliente: %w", err)
		}
		clientes = append(clientes, *cliente)
	}
	return clientes, rows.Err()
}

// textoNulo convierte una cadena vacía en NULL
func textoNulo(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
