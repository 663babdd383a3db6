package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/application/ports"
	"github.com/unitedfins/inventory-api/internal/domain"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
	"github.com/unitedfins/inventory-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Parámetros del flujo 2FA.
const (
	otpCodeLength     = 6
	backupCodeLength  = 8
	backupCodeCount   = 10
	totpWindowHint    = "30 seconds (TOTP)"
	otpGenericMessage = "Si el email existe, se enviará un código"
	otpResetOKMessage = "Contraseña restablecida. Inicie sesión con la nueva contraseña."
)

// TwoFactorConfig configuración del flujo OTP/TOTP.
type TwoFactorConfig struct {
	Issuer    string
	OTPExpiry time.Duration
}

// TwoFactorUseCase reset de contraseña por código de un solo uso y alta de 2FA.
// now es inyectable para que los tests controlen la expiración.
type TwoFactorUseCase struct {
	users repository.UserRepository
	codes repository.OneTimeCodeRepository
	audit repository.AuditLogRepository
	totp  ports.TOTPProvider
	sms   ports.SMSSender
	cfg   TwoFactorConfig
	log   *logger.Logger
	now   func() time.Time
}

// NewTwoFactorUseCase construye el caso de uso 2FA.
func NewTwoFactorUseCase(
	users repository.UserRepository,
	codes repository.OneTimeCodeRepository,
	audit repository.AuditLogRepository,
	totp ports.TOTPProvider,
	sms ports.SMSSender,
	cfg TwoFactorConfig,
	log *logger.Logger,
) *TwoFactorUseCase {
	if cfg.OTPExpiry <= 0 {
		cfg.OTPExpiry = 10 * time.Minute
	}
	return &TwoFactorUseCase{
		users: users, codes: codes, audit: audit,
		totp: totp, sms: sms, cfg: cfg, log: log,
		now: time.Now,
	}
}

// WithClock reemplaza la fuente de tiempo (tests).
func (uc *TwoFactorUseCase) WithClock(now func() time.Time) *TwoFactorUseCase {
	uc.now = now
	return uc
}

// RequestOTP solicita un código de reset de contraseña.
//
// Anti-enumeración: si el email no existe la respuesta tiene exactamente la
// misma forma que la de éxito; nada en ella revela si la cuenta está registrada.
func (uc *TwoFactorUseCase) RequestOTP(ctx context.Context, in dto.RequestOTPRequest) (*dto.RequestOTPResponse, error) {
	method := in.Method
	if method == "" {
		method = dto.OTPMethodSMS
	}
	generic := &dto.RequestOTPResponse{
		Message: otpGenericMessage,
		Data: dto.RequestOTPData{
			Method:    method,
			ExpiresIn: uc.expiryLabel(method),
		},
	}

	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return generic, nil
	}
	profile, err := uc.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	switch method {
	case dto.OTPMethodSMS:
		if profile.PhoneNumber == "" {
			return nil, domain.ErrPhoneNotRegistered
		}
		code, err := numericCode(otpCodeLength)
		if err != nil {
			return nil, err
		}
		now := uc.now()
		otp := &entity.OneTimeCode{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Code:      code,
			Purpose:   entity.OTPPurposePasswordReset,
			CreatedAt: now,
			ExpiresAt: now.Add(uc.cfg.OTPExpiry),
		}
		if err := uc.codes.Create(ctx, otp); err != nil {
			return nil, err
		}
		if err := uc.sms.Send(ctx, profile.PhoneNumber, "Su código de recuperación: "+code); err != nil && uc.log != nil {
			uc.log.Warn().Err(err).Msg("fallo de entrega SMS del OTP")
		}
		// Byte a byte la misma respuesta que para un email desconocido: el
		// teléfono (incluso enmascarado) delataría que la cuenta existe.
		return generic, nil

	case dto.OTPMethodAuthenticator:
		if !profile.TOTPEnabled || profile.TOTPSecret == "" {
			return nil, domain.ErrTwoFactorNotEnabled
		}
		// Los códigos TOTP se derivan del secreto: no se persiste nada.
		return generic, nil

	default:
		return nil, domain.ErrInvalidInput
	}
}

// VerifyOTPAndReset verifica el código (SMS, TOTP o respaldo) y restablece la
// contraseña. Cada rama consume el código en un único update condicional.
func (uc *TwoFactorUseCase) VerifyOTPAndReset(ctx context.Context, in dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error) {
	if in.NewPassword != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Misma respuesta que un código incorrecto: no enumerar cuentas.
		return nil, domain.ErrInvalidOrExpiredCode
	}

	if in.IsBackupCode {
		consumed, err := uc.users.ConsumeBackupCode(ctx, user.ID, in.Code)
		if err != nil {
			return nil, err
		}
		if !consumed {
			return nil, domain.ErrInvalidOrExpiredCode
		}
		if err := uc.resetPassword(ctx, user, in.NewPassword); err != nil {
			return nil, err
		}
		profile, err := uc.users.GetProfile(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		remaining := len(profile.BackupCodes)
		return &dto.VerifyOTPResponse{Message: otpResetOKMessage, BackupCodesRemaining: &remaining}, nil
	}

	// 1) Código SMS persistido: match exacto, sin usar y sin expirar.
	consumed, err := uc.codes.Consume(ctx, user.ID, in.Code, entity.OTPPurposePasswordReset, uc.now())
	if err != nil {
		return nil, err
	}
	if consumed {
		if err := uc.resetPassword(ctx, user, in.NewPassword); err != nil {
			return nil, err
		}
		return &dto.VerifyOTPResponse{Message: otpResetOKMessage}, nil
	}

	// 2) TOTP derivado, con rechazo de replay del último código consumido.
	profile, err := uc.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile.TOTPEnabled && profile.TOTPSecret != "" && uc.totp.Verify(profile.TOTPSecret, in.Code, uc.now()) {
		fresh, err := uc.users.RecordTOTPUse(ctx, user.ID, in.Code)
		if err != nil {
			return nil, err
		}
		if !fresh {
			// Código válido en el tiempo pero igual al último usado: replay.
			return nil, domain.ErrInvalidOrExpiredCode
		}
		if err := uc.resetPassword(ctx, user, in.NewPassword); err != nil {
			return nil, err
		}
		return &dto.VerifyOTPResponse{Message: otpResetOKMessage}, nil
	}

	return nil, domain.ErrInvalidOrExpiredCode
}

// Enable fase uno del alta de 2FA: genera secreto y códigos de respaldo y los
// guarda sin activar la bandera. La activación exige probar posesión (Confirm).
func (uc *TwoFactorUseCase) Enable(ctx context.Context, userID string) (*dto.EnableTwoFactorResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	secret, uri, err := uc.totp.GenerateSecret(user.Email)
	if err != nil {
		return nil, err
	}
	backupCodes := make([]string, 0, backupCodeCount)
	for i := 0; i < backupCodeCount; i++ {
		code, err := numericCode(backupCodeLength)
		if err != nil {
			return nil, err
		}
		backupCodes = append(backupCodes, code)
	}
	if err := uc.users.SaveTwoFactorSetup(ctx, userID, secret, backupCodes); err != nil {
		return nil, err
	}
	return &dto.EnableTwoFactorResponse{
		Secret:          secret,
		ProvisioningURI: uri,
		BackupCodes:     backupCodes,
	}, nil
}

// Confirm fase dos: valida el código actual del secreto pendiente y activa 2FA.
// Con código inválido el estado queda intacto.
func (uc *TwoFactorUseCase) Confirm(ctx context.Context, userID string, in dto.ConfirmTwoFactorRequest) error {
	profile, err := uc.users.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile.TOTPSecret == "" {
		return domain.ErrTwoFactorNotEnabled
	}
	if !uc.totp.Verify(profile.TOTPSecret, in.Code, uc.now()) {
		return domain.ErrInvalidVerificationCode
	}
	if err := uc.users.EnableTwoFactor(ctx, userID); err != nil {
		return err
	}
	uc.appendAudit(ctx, userID, entity.AuditEnable2FA, "2FA habilitado")
	return nil
}

func (uc *TwoFactorUseCase) resetPassword(ctx context.Context, user *entity.User, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}
	uc.appendAudit(ctx, user.ID, entity.AuditResetPassword, "reset de contraseña vía OTP para "+user.Email)
	return nil
}

func (uc *TwoFactorUseCase) appendAudit(ctx context.Context, actorID, action, details string) {
	entry := &entity.AuditLog{ActorID: &actorID, Action: action, Details: details, CreatedAt: uc.now()}
	if err := uc.audit.Append(ctx, entry); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("no se pudo registrar auditoría")
	}
}

func (uc *TwoFactorUseCase) expiryLabel(method string) string {
	if method == dto.OTPMethodAuthenticator {
		return totpWindowHint
	}
	return fmt.Sprintf("%d minutes", int(uc.cfg.OTPExpiry.Minutes()))
}

// numericCode genera un código numérico aleatorio de n dígitos (crypto/rand,
// un dígito uniforme por posición: sin sesgo de módulo).
func numericCode(n int) (string, error) {
	ten := big.NewInt(10)
	buf := make([]byte, n)
	for i := range buf {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		buf[i] = '0' + byte(d.Int64())
	}
	return string(buf), nil
}
