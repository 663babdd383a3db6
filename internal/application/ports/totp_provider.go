package ports

import "time"

// TOTPProvider define el puerto del algoritmo de códigos basados en tiempo.
// La verificación admite la tolerancia de ±1 paso del esquema TOTP; no se
// almacena ningún código, se derivan del secreto compartido.
type TOTPProvider interface {
	// GenerateSecret crea un secreto nuevo y la URI de aprovisionamiento
	// (código QR) para la cuenta indicada.
	GenerateSecret(accountName string) (secret, provisioningURI string, err error)
	// Verify valida el código de 6 dígitos contra el secreto al instante dado.
	Verify(secret, code string, at time.Time) bool
}
