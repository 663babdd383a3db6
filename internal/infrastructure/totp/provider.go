package totp

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/unitedfins/inventory-api/internal/application/ports"
)

var _ ports.TOTPProvider = (*Provider)(nil)

// Provider implementación de TOTPProvider sobre pquerna/otp.
// Verifica con tolerancia de ±1 paso de 30 segundos para absorber desfase de
// reloj entre servidor y dispositivo.
type Provider struct {
	issuer string
}

// NewProvider construye el proveedor con el issuer que verán las apps
// autenticadoras (Google Authenticator, etc.).
func NewProvider(issuer string) *Provider {
	return &Provider{issuer: issuer}
}

// GenerateSecret crea un secreto base32 nuevo y la URI otpauth:// de
// aprovisionamiento para la cuenta.
func (p *Provider) GenerateSecret(accountName string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      p.issuer,
		AccountName: accountName,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// Verify valida el código contra el secreto en el instante dado.
func (p *Provider) Verify(secret, code string, at time.Time) bool {
	ok, err := totp.ValidateCustom(code, secret, at, totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
