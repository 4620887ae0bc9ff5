package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	// Crear mensaje
	m := mail.NewMsg()

	// Configurar remitente
	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}

	// Configurar destinatario
	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	// Configurar asunto
	m.Subject(subject)

	// Configurar cuerpo HTML
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	// Crear cliente SMTP
	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	// Enviar correo
	if err := client.DialAndSend(m); err != nil {
		// Añadir contexto útil al error sin exponer credenciales
		return fmt.Errorf("error al enviar correo (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	return nil
}

// TicketInfo contiene la información del ticket para el correo de asignación
type TicketInfo struct {
	Codigo        string
	Descripcion   string
	TecnicoEmail  string
	TecnicoNombre string
	ClienteNombre string
	ClienteCedula string
	CreadoEn      time.Time
}

// SendTicketAsignado envía un correo al técnico notificando un nuevo ticket
func (c *Client) SendTicketAsignado(ticket TicketInfo) error {
	subject := fmt.Sprintf("Nuevo ticket asignado %s - %s", ticket.Codigo, c.fromName)
	htmlBody := generarHTMLAsignacion(ticket)

	return c.SendEmail(ticket.TecnicoEmail, subject, htmlBody)
}

// generarHTMLAsignacion genera el HTML del correo de asignación
func generarHTMLAsignacion(ticket TicketInfo) string {
	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="es">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Nuevo Ticket Asignado</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">
					<!-- Header -->
					<tr>
						<td style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 40px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 28px;">Nuevo Ticket Asignado</h1>
							<p style="color: #ffffff; margin: 10px 0 0 0; font-size: 16px;">Hola %s, tienes un nuevo ticket pendiente</p>
						</td>
					</tr>

					<!-- Contenido -->
					<tr>
						<td style="padding: 40px 30px;">
							<div style="background-color: #f8f9fa; border-left: 4px solid #667eea; padding: 20px;">
								<h2 style="margin: 0 0 15px 0; color: #333; font-size: 20px;">Detalles del Ticket</h2>
								<table width="100%%" cellpadding="0" cellspacing="0">
									<tr>
										<td style="padding: 8px 0;"><strong>Código:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Cliente:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s (cédula %s)</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Fecha:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
								</table>
							</div>

							<div style="margin-top: 30px; padding: 20px; background-color: #fff3cd; border-radius: 8px; border-left: 4px solid #ffc107;">
								<h4 style="margin: 0 0 10px 0; color: #856404;">Descripción</h4>
								<p style="margin: 0; color: #856404;">%s</p>
							</div>
						</td>
					</tr>

					<!-- Footer -->
					<tr>
						<td style="background-color: #f8f9fa; padding: 30px; text-align: center; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0; color: #999; font-size: 12px;">
								Este es un correo automático, por favor no responder directamente
							</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
	`,
		ticket.TecnicoNombre,
		ticket.Codigo,
		ticket.ClienteNombre,
		ticket.ClienteCedula,
		ticket.CreadoEn.Format("02/01/2006 15:04"),
		ticket.Descripcion,
	)

	return html
}
