package domain

import "fmt"

// TipoError clasifica un error de negocio para que la capa HTTP
// pueda traducirlo a un código de estado
type TipoError string

const (
	// ErrorValidacion indica campos de entrada incompletos o mal formados
	ErrorValidacion TipoError = "validacion"
	// ErrorReferencia indica un identificador mal formado
	ErrorReferencia TipoError = "referencia"
	// ErrorConflicto indica una violación de unicidad
	ErrorConflicto TipoError = "conflicto"
	// ErrorNoEncontrado indica que el registro buscado no existe
	ErrorNoEncontrado TipoError = "no_encontrado"
)

// Error es un error de negocio con mensaje para el usuario
type Error struct {
	Tipo    TipoError
	Mensaje string
}

// Error implementa la interfaz error
func (e *Error) Error() string {
	return e.Mensaje
}

// Validacion crea un error de validación de entrada
func Validacion(formato string, args ...any) *Error {
	return &Error{Tipo: ErrorValidacion, Mensaje: fmt.Sprintf(formato, args...)}
}

// Referencia crea un error de identificador mal formado
func Referencia(formato string, args ...any) *Error {
	return &Error{Tipo: ErrorReferencia, Mensaje: fmt.Sprintf(formato, args...)}
}

// Conflicto crea un error de unicidad
func Conflicto(formato string, args ...any) *Error {
	return &Error{Tipo: ErrorConflicto, Mensaje: fmt.Sprintf(formato, args...)}
}

// NoEncontrado crea un error de registro inexistente
func NoEncontrado(formato string, args ...any) *Error {
	return &Error{Tipo: ErrorNoEncontrado, Mensaje: fmt.Sprintf(formato, args...)}
}
