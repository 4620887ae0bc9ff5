package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/alessia-23/AsistenciaV1/internal/application"
	"github.com/alessia-23/AsistenciaV1/internal/config"
	"github.com/alessia-23/AsistenciaV1/internal/email"
	"github.com/alessia-23/AsistenciaV1/internal/infrastructure/repository"
	handlers "github.com/alessia-23/AsistenciaV1/internal/interfaces/http"
	"github.com/alessia-23/AsistenciaV1/internal/scheduler"
	services "github.com/alessia-23/AsistenciaV1/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Email Client
	var emailClient *email.Client
	if cfg.SMTPHost != "" {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.Printf("Warning: Email client initialization failed: %v", err)
			emailClient = nil // Continuar sin notificaciones
		}
	}

	// Clientes
	clienteRepo := repository.NewClienteRepository(db)
	clienteService := application.NewClienteService(clienteRepo)
	clienteHandler := handlers.NewClienteHandler(clienteService)

	// Técnicos
	tecnicoRepo := repository.NewTecnicoRepository(db)
	tecnicoService := application.NewTecnicoService(tecnicoRepo)
	tecnicoHandler := handlers.NewTecnicoHandler(tecnicoService)

	// Tickets
	ticketRepo := repository.NewTicketRepository(db)
	ticketService := application.NewTicketService(ticketRepo, clienteRepo, tecnicoRepo, emailClient)
	ticketHandler := handlers.NewTicketHandler(ticketService)

	// Adjuntos (S3)
	s3Service, err := services.NewS3Service()
	var adjuntoHandler *handlers.AdjuntoHandler
	if err != nil {
		log.Printf("Warning: S3 service initialization failed: %v", err)
	} else {
		adjuntoHandler = handlers.NewAdjuntoHandler(s3Service)
	}

	// Auditoría diaria de referencias colgantes
	ticketScheduler := scheduler.NewTicketScheduler(ticketRepo)
	ticketScheduler.Start()
	defer ticketScheduler.Stop()

	proteger := handlers.ProtegerRuta(cfg.JWTSecret)
	limitarBusquedas := handlers.LimitarBusquedas(application.NewRateLimiter(1*time.Minute, 30))

	api := app.Group("/api")

	// Rutas de clientes
	clientes := api.Group("/clientes")
	clientes.Post("/crear", proteger, clienteHandler.Crear)
	clientes.Get("/listar", proteger, clienteHandler.Obtener)
	clientes.Get("/buscar", proteger, limitarBusquedas, clienteHandler.Buscar)
	clientes.Put("/actualizar/:id", proteger, clienteHandler.Actualizar)
	clientes.Delete("/eliminar/:id", proteger, clienteHandler.Eliminar)

	// Rutas de técnicos
	tecnicos := api.Group("/tecnicos")
	tecnicos.Post("/crear", proteger, tecnicoHandler.Crear)
	tecnicos.Get("/listar", proteger, tecnicoHandler.Obtener)
	tecnicos.Get("/buscar", proteger, limitarBusquedas, tecnicoHandler.Buscar)
	tecnicos.Put("/actualizar/:id", proteger, tecnicoHandler.Actualizar)
	tecnicos.Delete("/eliminar/:id", proteger, tecnicoHandler.Eliminar)

	// Rutas de tickets
	tickets := api.Group("/tickets")
	tickets.Post("/crear", proteger, ticketHandler.Crear)
	tickets.Get("/listar", proteger, ticketHandler.Obtener)
	tickets.Get("/buscar", proteger, limitarBusquedas, ticketHandler.Buscar)
	tickets.Put("/actualizar/:id", proteger, ticketHandler.Actualizar)
	tickets.Delete("/eliminar/:id", proteger, ticketHandler.Eliminar)

	// Rutas de adjuntos
	if adjuntoHandler != nil {
		upload := api.Group("/upload")
		upload.Post("/adjuntos", proteger, adjuntoHandler.Subir)
	}

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
