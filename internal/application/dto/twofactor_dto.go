package dto

// Métodos de entrega de OTP.
const (
	OTPMethodSMS           = "sms"
	OTPMethodAuthenticator = "authenticator"
)

// RequestOTPRequest solicitud de OTP para reset de contraseña (público).
type RequestOTPRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Method string `json:"method" validate:"omitempty,oneof=sms authenticator"`
}

// RequestOTPData datos de la respuesta a la solicitud de OTP. La forma es
// idéntica exista o no la cuenta: nada en la respuesta permite enumerar emails.
type RequestOTPData struct {
	Method    string `json:"method"`
	ExpiresIn string `json:"expires_in"`
}

// RequestOTPResponse respuesta uniforme de la solicitud de OTP.
type RequestOTPResponse struct {
	Message string         `json:"message"`
	Data    RequestOTPData `json:"data"`
}

// VerifyOTPRequest verificación de código y reset de contraseña (público).
type VerifyOTPRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Code            string `json:"code" validate:"required,min=6,max=8"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,min=8"`
	IsBackupCode    bool   `json:"is_backup_code"`
}

// VerifyOTPResponse resultado del reset.
type VerifyOTPResponse struct {
	Message string `json:"message"`
	// BackupCodesRemaining solo se informa cuando se consumió un código de respaldo.
	BackupCodesRemaining *int `json:"backup_codes_remaining,omitempty"`
}

// EnableTwoFactorResponse material de la fase uno del alta de 2FA.
// La bandera no queda activa hasta confirmar un código válido.
type EnableTwoFactorResponse struct {
	Secret          string   `json:"secret"`
	ProvisioningURI string   `json:"provisioning_uri"`
	BackupCodes     []string `json:"backup_codes"`
}

// ConfirmTwoFactorRequest fase dos: prueba de posesión del secreto.
type ConfirmTwoFactorRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}
