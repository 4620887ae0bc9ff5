package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/google/uuid"
)

type TecnicoService struct {
	tecnicoRepo domain.TecnicoRepository
	validator   Validator
}

// NewTecnicoService crea una nueva instancia del servicio de técnicos
func NewTecnicoService(tecnicoRepo domain.TecnicoRepository) *TecnicoService {
	return &TecnicoService{
		tecnicoRepo: tecnicoRepo,
	}
}

// Crear crea un nuevo técnico validando sus datos y la unicidad de la cédula
func (s *TecnicoService) Crear(ctx context.Context, tecnico *domain.Tecnico) (*domain.Tecnico, error) {
	if tecnico.Nombre == "" || tecnico.Apellido == "" || tecnico.Cedula == "" {
		return nil, domain.Validacion("Campos obligatorios incompletos")
	}

	if errores := s.validator.ValidateDatosContacto(
		tecnico.Nombre, tecnico.Apellido, tecnico.Cedula, tecnico.Email, tecnico.Telefono,
	); len(errores) > 0 {
		return nil, domain.Validacion("%s", s.validator.FormatErrores(errores))
	}

	existente, err := s.tecnicoRepo.GetByCedula(ctx, tecnico.Cedula)
	if err != nil {
		return nil, fmt.Errorf("error al verificar cédula: %w", err)
	}
	if existente != nil {
		return nil, domain.Conflicto("La cédula ya está registrada")
	}

	if err := s.tecnicoRepo.Create(ctx, tecnico); err != nil {
		return nil, err
	}

	return tecnico, nil
}

// Obtener obtiene todos los técnicos
func (s *TecnicoService) Obtener(ctx context.Context) ([]domain.Tecnico, error) {
	tecnicos, err := s.tecnicoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener técnicos: %w", err)
	}
	return tecnicos, nil
}

// Buscar busca técnicos cuyo nombre, apellido o cédula contenga el texto
func (s *TecnicoService) Buscar(ctx context.Context, busqueda string) ([]domain.Tecnico, error) {
	busqueda = strings.TrimSpace(busqueda)
	if busqueda == "" {
		return nil, domain.Validacion("Debe enviar al menos un parámetro de búsqueda")
	}

	tecnicos, err := s.tecnicoRepo.Search(ctx, busqueda)
	if err != nil {
		return nil, fmt.Errorf("error al buscar técnicos: %w", err)
	}

	if len(tecnicos) == 0 {
		return nil, domain.NoEncontrado("No se encontraron técnicos")
	}

	return tecnicos, nil
}

// Actualizar modifica los campos suministrados de un técnico existente
func (s *TecnicoService) Actualizar(ctx context.Context, id string, campos ActualizarPersona) (*domain.Tecnico, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.Referencia("ID no válido")
	}

	tecnico, err := s.tecnicoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener técnico: %w", err)
	}
	if tecnico == nil {
		return nil, domain.NoEncontrado("Técnico no encontrado")
	}

	if campos.Nombre != nil && *campos.Nombre != "" {
		if err := s.validator.ValidateName(*campos.Nombre, "nombre"); err != nil {
			return nil, domain.Validacion("%s", err.Error())
		}
		tecnico.Nombre = *campos.Nombre
	}

	if campos.Apellido != nil && *campos.Apellido != "" {
		if err := s.validator.ValidateName(*campos.Apellido, "apellido"); err != nil {
			return nil, domain.Validacion("%s", err.Error())
		}
		tecnico.Apellido = *campos.Apellido
	}

	// Validar cédula única si viene
	if campos.Cedula != nil && *campos.Cedula != "" {
		if err := s.validator.ValidateCedula(*campos.Cedula); err != nil {
			return nil, domain.Validacion("%s", err.Error())
		}
		existente, err := s.tecnicoRepo.GetByCedula(ctx, *campos.Cedula)
		if err != nil {
			return nil, fmt.Errorf("error al verificar cédula: %w", err)
		}
		if existente != nil && existente.ID != id {
			return nil, domain.Conflicto("La cédula ya está registrada")
		}
		tecnico.Cedula = *campos.Cedula
	}

	if campos.Email != nil {
		if *campos.Email != "" {
			if err := s.validator.ValidateEmail(*campos.Email); err != nil {
				return nil, domain.Validacion("%s", err.Error())
			}
		}
		tecnico.Email = *campos.Email
	}

	if campos.Telefono != nil {
		if *campos.Telefono != "" {
			if err := s.validator.ValidatePhone(*campos.Telefono); err != nil {
				return nil, domain.Validacion("%s", err.Error())
			}
		}
		tecnico.Telefono = *campos.Telefono
	}

	if campos.Direccion != nil {
		tecnico.Direccion = *campos.Direccion
	}

	if err := s.tecnicoRepo.Update(ctx, tecnico); err != nil {
		return nil, err
	}

	return tecnico, nil
}

// Eliminar elimina un técnico por su ID. Los tickets que lo referencian
// no se tocan; la referencia queda colgante de forma deliberada.
func (s *TecnicoService) Eliminar(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Referencia("ID no válido")
	}

	return s.tecnicoRepo.Delete(ctx, id)
}
