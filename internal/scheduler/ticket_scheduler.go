package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/alessia-23/AsistenciaV1/internal/domain"
)

// TicketScheduler revisa periódicamente los tickets cuyo cliente o técnico
// fue eliminado. Las referencias colgantes son deliberadas (no hay cascada),
// este job solo las deja registradas para diagnóstico.
type TicketScheduler struct {
	ticketRepo domain.TicketRepository
	ticker     *time.Ticker
}

// NewTicketScheduler crea una nueva instancia del scheduler de tickets
func NewTicketScheduler(ticketRepo domain.TicketRepository) *TicketScheduler {
	return &TicketScheduler{
		ticketRepo: ticketRepo,
	}
}

// Start inicia el scheduler que audita referencias colgantes cada 24 horas
func (s *TicketScheduler) Start() {
	log.Println("Scheduler de tickets iniciado - Se ejecutará cada 24 horas")

	// Ejecutar inmediatamente al iniciar
	s.AuditarReferencias()

	// Programar ejecución diaria a las 00:01
	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())
	durationUntilNextRun := time.Until(nextRun)

	log.Printf("Próxima ejecución programada: %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(durationUntilNextRun, func() {
		s.AuditarReferencias()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.AuditarReferencias()
			}
		}()
	})
}

// Stop detiene el scheduler
func (s *TicketScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("Scheduler de tickets detenido")
	}
}

// AuditarReferencias registra los tickets con referencias colgantes
func (s *TicketScheduler) AuditarReferencias() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	huerfanos, err := s.ticketRepo.ListHuerfanos(ctx)
	if err != nil {
		log.Printf("Error auditando referencias de tickets: %v", err)
		return
	}

	if len(huerfanos) == 0 {
		log.Println("Auditoría de tickets: sin referencias colgantes")
		return
	}

	for _, t := range huerfanos {
		log.Printf("Ticket %s (%s) referencia cliente=%s tecnico=%s y alguno ya no existe",
			t.Codigo, t.ID, t.ClienteID, t.TecnicoID)
	}
}
