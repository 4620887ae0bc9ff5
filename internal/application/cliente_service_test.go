package application

import (
	"context"
	"testing"

	"github.com/alessia-23/AsistenciaV1/internal/application/testutil"
	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoServicioClientes(t *testing.T) *ClienteService {
	t.Helper()
	return NewClienteService(testutil.NuevoAlmacen().Clientes())
}

func TestClienteCrear(t *testing.T) {
	ctx := context.Background()

	casos := []struct {
		nombre  string
		cliente domain.Cliente
		tipo    domain.TipoError
	}{
		{
			nombre:  "sin nombre",
			cliente: domain.Cliente{Apellido: "Ruiz", Cedula: "123"},
			tipo:    domain.ErrorValidacion,
		},
		{
			nombre:  "sin apellido",
			cliente: domain.Cliente{Nombre: "Ana", Cedula: "123"},
			tipo:    domain.ErrorValidacion,
		},
		{
			nombre:  "sin cedula",
			cliente: domain.Cliente{Nombre: "Ana", Apellido: "Ruiz"},
			tipo:    domain.ErrorValidacion,
		},
		{
			nombre:  "email invalido",
			cliente: domain.Cliente{Nombre: "Ana", Apellido: "Ruiz", Cedula: "123", Email: "no-es-email"},
			tipo:    domain.ErrorValidacion,
		},
		{
			nombre:  "cedula con caracteres invalidos",
			cliente: domain.Cliente{Nombre: "Ana", Apellido: "Ruiz", Cedula: "12*34"},
			tipo:    domain.ErrorValidacion,
		},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			servicio := nuevoServicioClientes(t)
			c := caso.cliente
			_, err := servicio.Crear(ctx, &c)
			esTipoError(t, err, caso.tipo)
		})
	}

	t.Run("creacion exitosa", func(t *testing.T) {
		servicio := nuevoServicioClientes(t)
		cliente, err := servicio.Crear(ctx, &domain.Cliente{
			Nombre:   "Ana",
			Apellido: "Ruiz",
			Cedula:   "123",
			Email:    "ana@ejemplo.com",
			Telefono: "0991234567",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, cliente.ID)
		assert.False(t, cliente.CreadoEn.IsZero())
	})

	t.Run("cedula duplicada", func(t *testing.T) {
		servicio := nuevoServicioClientes(t)
		_, err := servicio.Crear(ctx, &domain.Cliente{Nombre: "Ana", Apellido: "Ruiz", Cedula: "123"})
		require.NoError(t, err)

		_, err = servicio.Crear(ctx, &domain.Cliente{Nombre: "Pedro", Apellido: "Mora", Cedula: "123"})
		esTipoError(t, err, domain.ErrorConflicto)
		assert.Contains(t, err.Error(), "cédula")
	})
}

func TestClienteBuscar(t *testing.T) {
	ctx := context.Background()
	servicio := nuevoServicioClientes(t)

	_, err := servicio.Crear(ctx, &domain.Cliente{Nombre: "Ana", Apellido: "Ruiz", Cedula: "123"})
	require.NoError(t, err)
	_, err = servicio.Crear(ctx, &domain.Cliente{Nombre: "Pedro", Apellido: "Mora", Cedula: "789"})
	require.NoError(t, err)

	t.Run("busqueda vacia", func(t *testing.T) {
		_, err := servicio.Buscar(ctx, "   ")
		esTipoError(t, err, domain.ErrorValidacion)
	})

	t.Run("por nombre sin distinguir mayusculas", func(t *testing.T) {
		clientes, err := servicio.Buscar(ctx, "ANA")
		require.NoError(t, err)
		require.Len(t, clientes, 1)
		assert.Equal(t, "Ana", clientes[0].Nombre)
	})

	t.Run("por apellido parcial", func(t *testing.T) {
		clientes, err := servicio.Buscar(ctx, "mor")
		require.NoError(t, err)
		require.Len(t, clientes, 1)
		assert.Equal(t, "Pedro", clientes[0].Nombre)
	})

	t.Run("por cedula", func(t *testing.T) {
		clientes, err := servicio.Buscar(ctx, "789")
		require.NoError(t, err)
		require.Len(t, clientes, 1)
	})

	t.Run("sin coincidencias", func(t *testing.T) {
		_, err := servicio.Buscar(ctx, "nadie")
		esTipoError(t, err, domain.ErrorNoEncontrado)
	})
}

func TestClienteActualizar(t *testing.T) {
	ctx := context.Background()

	preparar := func(t *testing.T) (*ClienteService, *domain.Cliente) {
		servicio := nuevoServicioClientes(t)
		cliente, err := servicio.Crear(ctx, &domain.Cliente{
			Nombre:   "Ana",
			Apellido: "Ruiz",
			Cedula:   "123",
			Email:    "ana@ejemplo.com",
		})
		require.NoError(t, err)
		return servicio, cliente
	}

	t.Run("id mal formado", func(t *testing.T) {
		servicio, _ := preparar(t)
		_, err := servicio.Actualizar(ctx, "no-es-uuid", ActualizarPersona{})
		esTipoError(t, err, domain.ErrorReferencia)
	})

	t.Run("cliente inexistente", func(t *testing.T) {
		servicio, _ := preparar(t)
		_, err := servicio.Actualizar(ctx, "61a2b3c4-d5e6-47f8-9012-3456789abcde", ActualizarPersona{})
		esTipoError(t, err, domain.ErrorNoEncontrado)
	})

	t.Run("cambio parcial conserva el resto", func(t *testing.T) {
		servicio, original := preparar(t)
		actualizado, err := servicio.Actualizar(ctx, original.ID, ActualizarPersona{
			Nombre: punteroA("Anita"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Anita", actualizado.Nombre)
		assert.Equal(t, "Ruiz", actualizado.Apellido)
		assert.Equal(t, "123", actualizado.Cedula)
	})

	t.Run("email vacio borra el dato", func(t *testing.T) {
		servicio, original := preparar(t)
		actualizado, err := servicio.Actualizar(ctx, original.ID, ActualizarPersona{
			Email: punteroA(""),
		})
		require.NoError(t, err)
		assert.Equal(t, "", actualizado.Email)
	})

	t.Run("cedula ocupada por otro cliente", func(t *testing.T) {
		servicio, original := preparar(t)
		_, err := servicio.Crear(ctx, &domain.Cliente{Nombre: "Pedro", Apellido: "Mora", Cedula: "789"})
		require.NoError(t, err)

		_, err = servicio.Actualizar(ctx, original.ID, ActualizarPersona{
			Cedula: punteroA("789"),
		})
		esTipoError(t, err, domain.ErrorConflicto)
	})

	t.Run("conservar la propia cedula no es conflicto", func(t *testing.T) {
		servicio, original := preparar(t)
		_, err := servicio.Actualizar(ctx, original.ID, ActualizarPersona{
			Cedula: punteroA("123"),
		})
		require.NoError(t, err)
	})
}

func TestClienteEliminar(t *testing.T) {
	ctx := context.Background()
	servicio := nuevoServicioClientes(t)

	cliente, err := servicio.Crear(ctx, &domain.Cliente{Nombre: "Ana", Apellido: "Ruiz", Cedula: "123"})
	require.NoError(t, err)

	err = servicio.Eliminar(ctx, "no-es-uuid")
	esTipoError(t, err, domain.ErrorReferencia)

	require.NoError(t, servicio.Eliminar(ctx, cliente.ID))

	err = servicio.Eliminar(ctx, cliente.ID)
	esTipoError(t, err, domain.ErrorNoEncontrado)

	_, err = servicio.Obtener(ctx)
	require.NoError(t, err)
}
