package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/alessia-23/AsistenciaV1/internal/application"
	"github.com/alessia-23/AsistenciaV1/internal/application/testutil"
	"github.com/alessia-23/AsistenciaV1/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entornoHTTP struct {
	app     *fiber.App
	almacen *testutil.Almacen
}

func nuevoEntornoHTTP(t *testing.T) *entornoHTTP {
	t.Helper()

	almacen := testutil.NuevoAlmacen()
	servicio := application.NewTicketService(almacen.Tickets(), almacen.Clientes(), almacen.Tecnicos(), nil)
	handler := NewTicketHandler(servicio)

	app := fiber.New()
	tickets := app.Group("/api/tickets")
	tickets.Post("/crear", handler.Crear)
	tickets.Get("/listar", handler.Obtener)
	tickets.Get("/buscar", handler.Buscar)
	tickets.Put("/actualizar/:id", handler.Actualizar)
	tickets.Delete("/eliminar/:id", handler.Eliminar)

	return &entornoHTTP{app: app, almacen: almacen}
}

func (e *entornoHTTP) sembrarPersonas(t *testing.T) (string, string) {
	t.Helper()
	cliente := &domain.Cliente{Nombre: "Ana", Apellido: "Ruiz", Cedula: "123"}
	require.NoError(t, e.almacen.Clientes().Create(context.Background(), cliente))
	tecnico := &domain.Tecnico{Nombre: "Leo", Apellido: "Diaz", Cedula: "456"}
	require.NoError(t, e.almacen.Tecnicos().Create(context.Background(), tecnico))
	return cliente.ID, tecnico.ID
}

func hacerPeticion(t *testing.T, app *fiber.App, metodo, ruta string, cuerpo any) (int, map[string]any) {
	t.Helper()

	var lector io.Reader
	if cuerpo != nil {
		datos, err := json.Marshal(cuerpo)
		require.NoError(t, err)
		lector = bytes.NewReader(datos)
	}

	req := httptest.NewRequest(metodo, ruta, lector)
	if cuerpo != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	datos, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decodificado map[string]any
	if len(datos) > 0 && datos[0] == '{' {
		require.NoError(t, json.Unmarshal(datos, &decodificado))
	}
	return resp.StatusCode, decodificado
}

func TestTicketHandlerCrear(t *testing.T) {
	t.Run("creacion exitosa", func(t *testing.T) {
		e := nuevoEntornoHTTP(t)
		clienteID, tecnicoID := e.sembrarPersonas(t)

		estado, cuerpo := hacerPeticion(t, e.app, "POST", "/api/tickets/crear", CrearTicketRequest{
			Codigo:      "abc1",
			Descripcion: "no enciende",
			Cliente:     clienteID,
			Tecnico:     tecnicoID,
		})

		assert.Equal(t, fiber.StatusCreated, estado)
		assert.Equal(t, "Ticket creado correctamente", cuerpo["msg"])

		ticket, ok := cuerpo["ticket"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ABC1", ticket["codigo"])
	})

	t.Run("campos incompletos", func(t *testing.T) {
		e := nuevoEntornoHTTP(t)

		estado, cuerpo := hacerPeticion(t, e.app, "POST", "/api/tickets/crear", CrearTicketRequest{
			Codigo: "abc1",
		})

		assert.Equal(t, fiber.StatusBadRequest, estado)
		assert.Equal(t, "Campos obligatorios incompletos", cuerpo["msg"])
	})

	t.Run("referencias mal formadas", func(t *testing.T) {
		e := nuevoEntornoHTTP(t)

		estado, cuerpo := hacerPeticion(t, e.app, "POST", "/api/tickets/crear", CrearTicketRequest{
			Codigo:      "abc1",
			Descripcion: "no enciende",
			Cliente:     "no-es-uuid",
			Tecnico:     "tampoco",
		})

		assert.Equal(t, fiber.StatusBadRequest, estado)
		assert.Contains(t, cuerpo["msg"], "no válido")
	})

	t.Run("codigo duplicado", func(t *testing.T) {
		e := nuevoEntornoHTTP(t)
		clienteID, tecnicoID := e.sembrarPersonas(t)

		peticion := CrearTicketRequest{
			Codigo:      "abc1",
			Descripcion: "no enciende",
			Cliente:     clienteID,
			Tecnico:     tecnicoID,
		}
		estado, _ := hacerPeticion(t, e.app, "POST", "/api/tickets/crear", peticion)
		require.Equal(t, fiber.StatusCreated, estado)

		peticion.Codigo = "ABC1"
		estado, cuerpo := hacerPeticion(t, e.app, "POST", "/api/tickets/crear", peticion)
		assert.Equal(t, fiber.StatusBadRequest, estado)
		assert.Equal(t, "El código del ticket ya está en uso", cuerpo["msg"])
	})

	t.Run("cuerpo ilegible", func(t *testing.T) {
		e := nuevoEntornoHTTP(t)

		req := httptest.NewRequest("POST", "/api/tickets/crear", bytes.NewReader([]byte("{no es json")))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := e.app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestTicketHandlerListar(t *testing.T) {
	e := nuevoEntornoHTTP(t)
	clienteID, tecnicoID := e.sembrarPersonas(t)

	estado, _ := hacerPeticion(t, e.app, "POST", "/api/tickets/crear", CrearTicketRequest{
		Codigo:      "abc1",
		Descripcion: "no enciende",
		Cliente:     clienteID,
		Tecnico:     tecnicoID,
	})
	require.Equal(t, fiber.StatusCreated, estado)

	req := httptest.NewRequest("GET", "/api/tickets/listar", nil)
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tickets []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tickets))
	require.Len(t, tickets, 1)
	assert.Equal(t, "ABC1", tickets[0]["codigo"])

	cliente, ok := tickets[0]["cliente"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", cliente["nombre"])
}

func TestTicketHandlerBuscar(t *testing.T) {
	e := nuevoEntornoHTTP(t)
	clienteID, tecnicoID := e.sembrarPersonas(t)

	estado, _ := hacerPeticion(t, e.app, "POST", "/api/tickets/crear", CrearTicketRequest{
		Codigo:      "abc1",
		Descripcion: "no enciende",
		Cliente:     clienteID,
		Tecnico:     tecnicoID,
	})
	require.Equal(t, fiber.StatusCreated, estado)

	t.Run("sin parametros", func(t *testing.T) {
		estado, cuerpo := hacerPeticion(t, e.app, "GET", "/api/tickets/buscar", nil)
		assert.Equal(t, fiber.StatusBadRequest, estado)
		assert.Equal(t, "Debe enviar al menos un parámetro de búsqueda", cuerpo["msg"])
	})

	t.Run("por cliente", func(t *testing.T) {
		estado, cuerpo := hacerPeticion(t, e.app, "GET", "/api/tickets/buscar?cliente=ana", nil)
		assert.Equal(t, fiber.StatusOK, estado)

		tickets, ok := cuerpo["tickets"].([]any)
		require.True(t, ok)
		assert.Len(t, tickets, 1)
	})

	t.Run("sin coincidencias", func(t *testing.T) {
		estado, cuerpo := hacerPeticion(t, e.app, "GET", "/api/tickets/buscar?codigo=zzz", nil)
		assert.Equal(t, fiber.StatusNotFound, estado)
		assert.Equal(t, "No se encontraron tickets", cuerpo["msg"])
	})
}

func TestTicketHandlerActualizar(t *testing.T) {
	e := nuevoEntornoHTTP(t)
	clienteID, tecnicoID := e.sembrarPersonas(t)

	estado, cuerpo := hacerPeticion(t, e.app, "POST", "/api/tickets/crear", CrearTicketRequest{
		Codigo:      "abc1",
		Descripcion: "no enciende",
		Cliente:     clienteID,
		Tecnico:     tecnicoID,
	})
	require.Equal(t, fiber.StatusCreated, estado)
	id := cuerpo["ticket"].(map[string]any)["id"].(string)

	t.Run("actualizacion exitosa", func(t *testing.T) {
		estado, cuerpo := hacerPeticion(t, e.app, "PUT", "/api/tickets/actualizar/"+id, map[string]any{
			"codigo": "qwe2",
		})
		assert.Equal(t, fiber.StatusOK, estado)
		assert.Equal(t, "Ticket actualizado correctamente", cuerpo["msg"])
		assert.Equal(t, "QWE2", cuerpo["ticket"].(map[string]any)["codigo"])
	})

	t.Run("ticket inexistente", func(t *testing.T) {
		estado, cuerpo := hacerPeticion(t, e.app, "PUT", "/api/tickets/actualizar/61a2b3c4-d5e6-47f8-9012-3456789abcde", map[string]any{
			"descripcion": "otra",
		})
		assert.Equal(t, fiber.StatusNotFound, estado)
		assert.Equal(t, "Ticket no encontrado", cuerpo["msg"])
	})

	t.Run("id mal formado", func(t *testing.T) {
		estado, _ := hacerPeticion(t, e.app, "PUT", "/api/tickets/actualizar/no-es-uuid", map[string]any{})
		assert.Equal(t, fiber.StatusBadRequest, estado)
	})
}

func TestTicketHandlerEliminar(t *testing.T) {
	e := nuevoEntornoHTTP(t)
	clienteID, tecnicoID := e.sembrarPersonas(t)

	estado, cuerpo := hacerPeticion(t, e.app, "POST", "/api/tickets/crear", CrearTicketRequest{
		Codigo:      "abc1",
		Descripcion: "no enciende",
		Cliente:     clienteID,
		Tecnico:     tecnicoID,
	})
	require.Equal(t, fiber.StatusCreated, estado)
	id := cuerpo["ticket"].(map[string]any)["id"].(string)

	estado, cuerpo = hacerPeticion(t, e.app, "DELETE", "/api/tickets/eliminar/"+id, nil)
	assert.Equal(t, fiber.StatusOK, estado)
	assert.Equal(t, "Ticket eliminado correctamente", cuerpo["msg"])

	estado, cuerpo = hacerPeticion(t, e.app, "DELETE", "/api/tickets/eliminar/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, estado)
	assert.Equal(t, "Ticket no encontrado", cuerpo["msg"])
}
