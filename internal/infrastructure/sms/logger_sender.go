package sms

import (
	"context"

	"github.com/unitedfins/inventory-api/internal/application/ports"
	"github.com/unitedfins/inventory-api/pkg/logger"
)

var _ ports.SMSSender = (*LoggerSender)(nil)

// LoggerSender implementación de SMSSender que escribe al log en lugar de
// enviar. Sirve para desarrollo y staging; en producción se inyecta la
// pasarela real detrás del mismo puerto.
type LoggerSender struct {
	log *logger.Logger
}

// NewLoggerSender construye el sender de desarrollo.
func NewLoggerSender(log *logger.Logger) *LoggerSender {
	return &LoggerSender{log: log}
}

// Send registra el mensaje en el log. El código nunca se imprime completo.
func (s *LoggerSender) Send(ctx context.Context, phoneNumber, message string) error {
	s.log.Info().
		Str("phone", phoneNumber).
		Int("message_len", len(message)).
		Msg("SMS saliente (modo log)")
	return nil
}
