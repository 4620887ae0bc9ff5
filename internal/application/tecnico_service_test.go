package application

import (
	"context"
	"testing"

	"github.com/alessia-23/AsistenciaV1/internal/application/testutil"
	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTecnicoCicloCompleto(t *testing.T) {
	ctx := context.Background()
	servicio := NewTecnicoService(testutil.NuevoAlmacen().Tecnicos())

	_, err := servicio.Crear(ctx, &domain.Tecnico{Nombre: "Leo", Cedula: "456"})
	esTipoError(t, err, domain.ErrorValidacion)

	tecnico, err := servicio.Crear(ctx, &domain.Tecnico{
		Nombre:   "Leo",
		Apellido: "Diaz",
		Cedula:   "456",
		Email:    "leo@ejemplo.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tecnico.ID)

	_, err = servicio.Crear(ctx, &domain.Tecnico{Nombre: "Otro", Apellido: "Diaz", Cedula: "456"})
	esTipoError(t, err, domain.ErrorConflicto)

	tecnicos, err := servicio.Obtener(ctx)
	require.NoError(t, err)
	assert.Len(t, tecnicos, 1)

	encontrados, err := servicio.Buscar(ctx, "diaz")
	require.NoError(t, err)
	require.Len(t, encontrados, 1)
	assert.Equal(t, "Leo", encontrados[0].Nombre)

	actualizado, err := servicio.Actualizar(ctx, tecnico.ID, ActualizarPersona{
		Telefono: punteroA("0987654321"),
	})
	require.NoError(t, err)
	assert.Equal(t, "0987654321", actualizado.Telefono)
	assert.Equal(t, "Leo", actualizado.Nombre)

	require.NoError(t, servicio.Eliminar(ctx, tecnico.ID))

	err = servicio.Eliminar(ctx, tecnico.ID)
	esTipoError(t, err, domain.ErrorNoEncontrado)
}
