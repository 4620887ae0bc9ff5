package application

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator contiene funciones de validación de datos
type Validator struct{}

// ValidateEmail valida el formato de un email
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("el email es requerido")
	}

	// Regex básico para email
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("el formato del email '%s' no es válido", email)
	}

	return nil
}

// ValidatePhone valida el formato de un teléfono
func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("el teléfono es requerido")
	}

	// Limpiar espacios y guiones
	cleanPhone := strings.ReplaceAll(phone, " ", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, "-", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, "(", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, ")", "")

	// Verificar que solo contenga dígitos y opcionalmente un +
	phoneRegex := regexp.MustCompile(`^\+?\d{7,15}$`)

	if !phoneRegex.MatchString(cleanPhone) {
		return fmt.Errorf("el teléfono '%s' debe tener entre 7 y 15 dígitos", phone)
	}

	return nil
}

// ValidateCedula valida el número de cédula
func (v *Validator) ValidateCedula(cedula string) error {
	if cedula == "" {
		return fmt.Errorf("la cédula es requerida")
	}

	// Limpiar espacios y guiones
	cleanCedula := strings.ReplaceAll(cedula, " ", "")
	cleanCedula = strings.ReplaceAll(cleanCedula, "-", "")

	// Debe tener entre 3 y 15 caracteres alfanuméricos
	if len(cleanCedula) < 3 || len(cleanCedula) > 15 {
		return fmt.Errorf("la cédula debe tener entre 3 y 15 caracteres")
	}

	// Verificar que solo contenga letras y números
	cedulaRegex := regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	if !cedulaRegex.MatchString(cleanCedula) {
		return fmt.Errorf("la cédula solo puede contener letras y números")
	}

	return nil
}

// ValidateName valida que un nombre no esté vacío y tenga formato válido
func (v *Validator) ValidateName(name, fieldName string) error {
	if name == "" {
		return fmt.Errorf("el %s es requerido", fieldName)
	}

	name = strings.TrimSpace(name)

	if len(name) < 2 {
		return fmt.Errorf("el %s debe tener al menos 2 caracteres", fieldName)
	}

	if len(name) > 50 {
		return fmt.Errorf("el %s no puede tener más de 50 caracteres", fieldName)
	}

	// Solo letras, espacios, acentos y algunos caracteres especiales
	nameRegex := regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s\-']+$`)

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("el %s contiene caracteres no válidos", fieldName)
	}

	return nil
}

// ValidateDatosContacto valida los datos de contacto de un cliente o técnico.
// Email y teléfono son opcionales; solo se validan si vienen.
func (v *Validator) ValidateDatosContacto(nombre, apellido, cedula, email, telefono string) []error {
	var errores []error

	if err := v.ValidateName(nombre, "nombre"); err != nil {
		errores = append(errores, err)
	}

	if err := v.ValidateName(apellido, "apellido"); err != nil {
		errores = append(errores, err)
	}

	if err := v.ValidateCedula(cedula); err != nil {
		errores = append(errores, err)
	}

	if email != "" {
		if err := v.ValidateEmail(email); err != nil {
			errores = append(errores, err)
		}
	}

	if telefono != "" {
		if err := v.ValidatePhone(telefono); err != nil {
			errores = append(errores, err)
		}
	}

	return errores
}

// FormatErrores une una lista de errores en un solo mensaje
func (v *Validator) FormatErrores(errores []error) string {
	if len(errores) == 0 {
		return ""
	}

	mensajes := make([]string, len(errores))
	for i, err := range errores {
		mensajes[i] = err.Error()
	}

	return strings.Join(mensajes, "; ")
}
