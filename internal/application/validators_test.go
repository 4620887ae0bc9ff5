package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	var v Validator

	validos := []string{
		"ana@ejemplo.com",
		"leo.diaz+soporte@mesa-ayuda.ec",
		"A_B%c@dominio.org",
	}
	for _, email := range validos {
		assert.NoError(t, v.ValidateEmail(email), email)
	}

	invalidos := []string{
		"",
		"sin-arroba.com",
		"ana@",
		"@dominio.com",
		"ana@dominio",
	}
	for _, email := range invalidos {
		assert.Error(t, v.ValidateEmail(email), email)
	}
}

func TestValidatePhone(t *testing.T) {
	var v Validator

	assert.NoError(t, v.ValidatePhone("0991234567"))
	assert.NoError(t, v.ValidatePhone("+593 99 123-4567"))
	assert.NoError(t, v.ValidatePhone("(02) 234-5678"))

	assert.Error(t, v.ValidatePhone(""))
	assert.Error(t, v.ValidatePhone("123"))
	assert.Error(t, v.ValidatePhone("telefono"))
	assert.Error(t, v.ValidatePhone("12345678901234567890"))
}

func TestValidateCedula(t *testing.T) {
	var v Validator

	assert.NoError(t, v.ValidateCedula("1712345678"))
	assert.NoError(t, v.ValidateCedula("V-123456"))
	assert.NoError(t, v.ValidateCedula("AB 123"))

	assert.Error(t, v.ValidateCedula(""))
	assert.Error(t, v.ValidateCedula("12"))
	assert.Error(t, v.ValidateCedula("1234567890123456"))
	assert.Error(t, v.ValidateCedula("12*34"))
}

func TestValidateName(t *testing.T) {
	var v Validator

	assert.NoError(t, v.ValidateName("Ana", "nombre"))
	assert.NoError(t, v.ValidateName("María José", "nombre"))
	assert.NoError(t, v.ValidateName("O'Brien-Núñez", "apellido"))

	assert.Error(t, v.ValidateName("", "nombre"))
	assert.Error(t, v.ValidateName("A", "nombre"))
	assert.Error(t, v.ValidateName("Ana123", "nombre"))

	err := v.ValidateName("", "apellido")
	assert.Contains(t, err.Error(), "apellido")
}

func TestValidateDatosContacto(t *testing.T) {
	var v Validator

	t.Run("contacto opcional", func(t *testing.T) {
		errores := v.ValidateDatosContacto("Ana", "Ruiz", "123", "", "")
		assert.Empty(t, errores)
	})

	t.Run("acumula errores", func(t *testing.T) {
		errores := v.ValidateDatosContacto("A", "Ruiz", "12", "no-es-email", "")
		assert.Len(t, errores, 3)
	})
}

func TestFormatErrores(t *testing.T) {
	var v Validator

	assert.Equal(t, "", v.FormatErrores(nil))

	mensaje := v.FormatErrores([]error{
		errors.New("el nombre es requerido"),
		errors.New("la cédula es requerida"),
	})
	assert.Equal(t, "el nombre es requerido; la cédula es requerida", mensaje)
}
