package ports

import "context"

// SMSSender define el puerto de salida para entrega de mensajes SMS.
// El proveedor concreto (pasarela externa, stub de desarrollo) se inyecta.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}
