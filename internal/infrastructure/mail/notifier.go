// Package mail implementa el notificador de mantenimiento por SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/printworks/stockroom-api/internal/application/maintenance"
	"github.com/printworks/stockroom-api/pkg/config"
	"github.com/printworks/stockroom-api/pkg/logger"
)

var _ maintenance.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía avisos de mantenimiento al contacto configurado.
// Con host vacío queda en modo log-only: registra el aviso y no envía nada,
// útil en desarrollo y en los tests.
type SMTPNotifier struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPNotifier construye el notificador.
func NewSMTPNotifier(cfg config.SMTPConfig, log *logger.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, log: log}
}

// Notify envía el aviso por email. Respeta la cancelación del contexto antes
// de abrir la conexión; net/smtp no la propaga una vez iniciado el envío.
func (n *SMTPNotifier) Notify(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.cfg.Host == "" {
		n.log.Info().
			Str("subject", subject).
			Msg("notificador SMTP desactivado, aviso solo registrado")
		return nil
	}

	msg := buildMessage(n.cfg.From, n.cfg.To, subject, body)
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{n.cfg.To}, msg); err != nil {
		return fmt.Errorf("enviar aviso de mantenimiento: %w", err)
	}
	n.log.Info().Str("to", n.cfg.To).Str("subject", subject).Msg("aviso de mantenimiento enviado")
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
