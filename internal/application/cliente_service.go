package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/google/uuid"
)

type ClienteService struct {
	clienteRepo domain.ClienteRepository
	validator   Validator
}

// NewClienteService crea una nueva instancia del servicio de clientes
func NewClienteService(clienteRepo domain.ClienteRepository) *ClienteService {
	return &ClienteService{
		clienteRepo: clienteRepo,
	}
}

// Crear crea un nuevo cliente validando sus datos y la unicidad de la cédula
func (s *ClienteService) Crear(ctx context.Context, cliente *domain.Cliente) (*domain.Cliente, error) {
	if cliente.Nombre == "" || cliente.Apellido == "" || cliente.Cedula == "" {
		return nil, domain.Validacion("Campos obligatorios incompletos")
	}

	if errores := s.validator.ValidateDatosContacto(
		cliente.Nombre, cliente.Apellido, cliente.Cedula, cliente.Email, cliente.Telefono,
	); len(errores) > 0 {
		return nil, domain.Validacion("%s", s.validator.FormatErrores(errores))
	}

	// Validar cédula única. La restricción de la base de datos es la
	// fuente de verdad; esta consulta solo anticipa el mensaje.
	existente, err := s.clienteRepo.GetByCedula(ctx, cliente.Cedula)
	if err != nil {
		return nil, fmt.Errorf("error al verificar cédula: %w", err)
	}
	if existente != nil {
		return nil, domain.Conflicto("La cédula ya está registrada")
	}

	if err := s.clienteRepo.Create(ctx, cliente); err != nil {
		return nil, err
	}

	return cliente, nil
}

// Obtener obtiene todos los clientes
func (s *ClienteService) Obtener(ctx context.Context) ([]domain.Cliente, error) {
	clientes, err := s.clienteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener clientes: %w", err)
	}
	return clientes, nil
}

// Buscar busca clientes cuyo nombre, apellido o cédula contenga el texto
func (s *ClienteService) Buscar(ctx context.Context, busqueda string) ([]domain.Cliente, error) {
	busqueda = strings.TrimSpace(busqueda)
	if busqueda == "" {
		return nil, domain.Validacion("Debe enviar al menos un parámetro de búsqueda")
	}

	clientes, err := s.clienteRepo.Search(ctx, busqueda)
	if err != nil {
		return nil, fmt.Errorf("error al buscar clientes: %w", err)
	}

	if len(clientes) == 0 {
		return nil, domain.NoEncontrado("No se encontraron clientes")
	}

	return clientes, nil
}

// ActualizarPersona describe los campos modificables de un cliente o técnico.
// Los campos ausentes no se tocan; email, teléfono y dirección admiten
// cadena vacía para borrar el dato.
type ActualizarPersona struct {
	Nombre    *string `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Cedula    *string `json:"cedula"`
	Email     *string `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// Actualizar modifica los campos suministrados de un cliente existente
func (s *ClienteService) Actualizar(ctx context.Context, id string, campos ActualizarPersona) (*domain.Cliente, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.Referencia("ID no válido")
	}

	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, domain.NoEncontrado("Cliente no encontrado")
	}

	if campos.Nombre != nil && *campos.Nombre != "" {
		if err := s.validator.ValidateName(*campos.Nombre, "nombre"); err != nil {
			return nil, domain.Validacion("%s", err.Error())
		}
		cliente.Nombre = *campos.Nombre
	}

	if campos.Apellido != nil && *campos.Apellido != "" {
		if err := s.validator.ValidateName(*campos.Apellido, "apellido"); err != nil {
			return nil, domain.Validacion("%s", err.Error())
		}
		cliente.Apellido = *campos.Apellido
	}

	// Validar cédula única si viene
	if campos.Cedula != nil && *campos.Cedula != "" {
		if err := s.validator.ValidateCedula(*campos.Cedula); err != nil {
			return nil, domain.Validacion("%s", err.Error())
		}
		existente, err := s.clienteRepo.GetByCedula(ctx, *campos.Cedula)
		if err != nil {
			return nil, fmt.Errorf("error al verificar cédula: %w", err)
		}
		if existente != nil && existente.ID != id {
			return nil, domain.Conflicto("La cédula ya está registrada")
		}
		cliente.Cedula = *campos.Cedula
	}

	if campos.Email != nil {
		if *campos.Email != "" {
			if err := s.validator.ValidateEmail(*campos.Email); err != nil {
				return nil, domain.Validacion("%s", err.Error())
			}
		}
		cliente.Email = *campos.Email
	}

	if campos.Telefono != nil {
		if *campos.Telefono != "" {
			if err := s.validator.ValidatePhone(*campos.Telefono); err != nil {
				return nil, domain.Validacion("%s", err.Error())
			}
		}
		cliente.Telefono = *campos.Telefono
	}

	if campos.Direccion != nil {
		cliente.Direccion = *campos.Direccion
	}

	if err := s.clienteRepo.Update(ctx, cliente); err != nil {
		return nil, err
	}

	return cliente, nil
}

// Eliminar elimina un cliente por su ID. Los tickets que lo referencian
// no se tocan; la referencia queda colgante de forma deliberada.
func (s *ClienteService) Eliminar(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Referencia("ID no válido")
	}

	return s.clienteRepo.Delete(ctx, id)
}
