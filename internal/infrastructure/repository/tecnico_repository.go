package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/google/uuid"
)

type tecnicoRepository struct {
	db *sql.DB
}

// NewTecnicoRepository crea una nueva instancia del repositorio de técnicos
func NewTecnicoRepository(db *sql.DB) domain.TecnicoRepository {
	return &tecnicoRepository{db: db}
}

// Create crea un nuevo técnico asignándole un ID
func (r *tecnicoRepository) Create(ctx context.Context, tecnico *domain.Tecnico) error {
	tecnico.ID = uuid.New().String()

	query := `
		INSERT INTO tecnico (tecnico_id, nombre, apellido, cedula, email, telefono, direccion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING creado_en, actualizado_en
	`

	err := r.db.QueryRowContext(ctx, query,
		tecnico.ID,
		tecnico.Nombre,
		tecnico.Apellido,
		tecnico.Cedula,
		textoNulo(tecnico.Email),
		textoNulo(tecnico.Telefono),
		textoNulo(tecnico.Direccion),
	).Scan(&tecnico.CreadoEn, &tecnico.ActualizadoEn)

	if esViolacionUnicidad(err) {
		return domain.Conflicto("La cédula ya está registrada")
	}

	if err != nil {
		return fmt.Errorf("error al crear técnico: %w", err)
	}

	return nil
}

// GetByID obtiene un técnico por su ID
func (r *tecnicoRepository) GetByID(ctx context.Context, id string) (*domain.Tecnico, error) {
	return r.buscarUno(ctx, `WHERE tecnico_id = $1`, id)
}

// GetByCedula busca un técnico por su cédula
func (r *tecnicoRepository) GetByCedula(ctx context.Context, cedula string) (*domain.Tecnico, error) {
	return r.buscarUno(ctx, `WHERE cedula = $1`, cedula)
}

func (r *tecnicoRepository) buscarUno(ctx context.Context, condicion string, arg any) (*domain.Tecnico, error) {
	query := `
		SELECT tecnico_id, nombre, apellido, cedula, email, telefono, direccion, creado_en, actualizado_en
		FROM tecnico
	` + condicion

	tecnico, err := escanearTecnico(r.db.QueryRowContext(ctx, query, arg))

	if err == sql.ErrNoRows {
		return nil, nil // No existe, devolver nil sin error
	}

	if err != nil {
		return nil, fmt.Errorf("error al buscar técnico: %w", err)
	}

	return tecnico, nil
}

// List obtiene todos los técnicos
func (r *tecnicoRepository) List(ctx context.Context) ([]domain.Tecnico, error) {
	query := `
		SELECT tecnico_id, nombre, apellido, cedula, email, telefono, direccion, creado_en, actualizado_en
		FROM tecnico
		ORDER BY creado_en
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error al listar técnicos: %w", err)
	}
	defer rows.Close()

	return recogerTecnicos(rows)
}

// Search busca técnicos cuyo nombre, apellido o cédula contenga el texto
func (r *tecnicoRepository) Search(ctx context.Context, texto string) ([]domain.Tecnico, error) {
	query := `
		SELECT tecnico_id, nombre, apellido, cedula, email, telefono, direccion, creado_en, actualizado_en
		FROM tecnico
		WHERE nombre ILIKE '%' || $1 || '%'
		   OR apellido ILIKE '%' || $1 || '%'
		   OR cedula ILIKE '%' || $1 || '%'
		ORDER BY creado_en
	`

	rows, err := r.db.QueryContext(ctx, query, texto)
	if err != nil {
		return nil, fmt.Errorf("error al buscar técnicos: %w", err)
	}
	defer rows.Close()

	return recogerTecnicos(rows)
}

// SearchIDs devuelve los IDs de los técnicos que coinciden con el texto
func (r *tecnicoRepository) SearchIDs(ctx context.Context, texto string) ([]string, error) {
	query := `
		SELECT tecnico_id
		FROM tecnico
		WHERE nombre ILIKE '%' || $1 || '%'
		   OR apellido ILIKE '%' || $1 || '%'
		   OR cedula ILIKE '%' || $1 || '%'
	`

	rows, err := r.db.QueryContext(ctx, query, texto)
	if err != nil {
		return nil, fmt.Errorf("error al buscar técnicos: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error al leer técnico: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update actualiza los datos de un técnico existente
func (r *tecnicoRepository) Update(ctx context.Context, tecnico *domain.Tecnico) error {
	query := `
		UPDATE tecnico
		SET nombre = $1,
		    apellido = $2,
		    cedula = $3,
		    email = $4,
		    telefono = $5,
		    direccion = $6,
		    actualizado_en = NOW()
		WHERE tecnico_id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		tecnico.Nombre,
		tecnico.Apellido,
		tecnico.Cedula,
		textoNulo(tecnico.Email),
		textoNulo(tecnico.Telefono),
		textoNulo(tecnico.Direccion),
		tecnico.ID,
	)

	if esViolacionUnicidad(err) {
		return domain.Conflicto("La cédula ya está registrada")
	}

	if err != nil {
		return fmt.Errorf("error al actualizar técnico: %w", err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}

	if filas == 0 {
		return domain.NoEncontrado("Técnico no encontrado")
	}

	return nil
}

// Delete elimina un técnico por su ID
func (r *tecnicoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tecnico WHERE tecnico_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar técnico: %w", err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}

	if filas == 0 {
		return domain.NoEncontrado("Técnico no encontrado")
	}

	return nil
}

func escanearTecnico(fila escaneador) (*domain.Tecnico, error) {
	tecnico := &domain.Tecnico{}
	var email, telefono, direccion sql.NullString

	err := fila.Scan(
		&tecnico.ID,
		&tecnico.Nombre,
		&tecnico.Apellido,
		&tecnico.Cedula,
		&email,
		&telefono,
		&direccion,
		&tecnico.CreadoEn,
		&tecnico.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}

	tecnico.Email = email.String
	tecnico.Telefono = telefono.String
	tecnico.Direccion = direccion.String

	return tecnico, nil
}

func recogerTecnicos(rows *sql.Rows) ([]domain.Tecnico, error) {
	var tecnicos []domain.Tecnico
	for rows.Next() {
		tecnico, err := escanearTecnico(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer técnico: %w", err)
		}
		tecnicos = append(tecnicos, *tecnico)
	}
	return tecnicos, rows.Err()
}
