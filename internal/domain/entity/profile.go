package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile extensión 1:1 de User. Se crea atómicamente con la cuenta y se destruye
// con ella, por lo que nunca hay que comprobar su existencia.
// UUID es el identificador expuesto hacia afuera; el PK interno no sale de la API.
type Profile struct {
	UserID      string
	UUID        string // id de correlación externo, distinto del PK
	Name        string
	PhoneNumber string
	Latitude    *decimal.Decimal
	Longitude   *decimal.Decimal
	Blocked     bool

	// Two-Factor Authentication
	TOTPSecret  string   // secreto compartido (base32); vacío = sin 2FA aprovisionado
	TOTPEnabled bool     // solo se activa tras confirmar un código válido
	LastOTPUsed string   // último TOTP consumido, para rechazar replay
	BackupCodes []string // códigos de respaldo de un solo uso (8 dígitos)

	CreatedAt time.Time
	UpdatedAt time.Time
}
