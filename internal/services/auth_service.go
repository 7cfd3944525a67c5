package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/karthikc1125/simple-login/domain"
)

// OTPConfig controls password-reset code generation
type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessions    domain.SessionStore
	otps        domain.OTPStore
	passwordSvc domain.PasswordService
	tokens      domain.TokenSource
	mailer      domain.Mailer
	otpCfg      OTPConfig
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessions domain.SessionStore,
	otps domain.OTPStore,
	passwordSvc domain.PasswordService,
	tokens domain.TokenSource,
	mailer domain.Mailer,
	otpCfg OTPConfig,
) domain.AuthService {
	if otpCfg.Length <= 0 {
		otpCfg.Length = 6
	}
	if otpCfg.TTL <= 0 {
		otpCfg.TTL = 10 * time.Minute
	}
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessions:    sessions,
		otps:        otps,
		passwordSvc: passwordSvc,
		tokens:      tokens,
		mailer:      mailer,
		otpCfg:      otpCfg,
	}
}

// Register implements domain.AuthService. On success exactly one user row
// and one session exist; on failure neither is created.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, name, role string) (*domain.AuthResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		// A failed registration must leave no durable state behind, or a
		// retry would hit ErrEmailTaken for an account that never existed.
		if delErr := s.userRepo.Delete(ctx, user.ID); delErr != nil {
			return nil, fmt.Errorf("failed to roll back user %s: %v: %w", user.ID, delErr, err)
		}
		return nil, err
	}
	return result, nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// fail identically so callers cannot probe for registered addresses.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// GetSession implements domain.AuthService. A pure lookup: an unknown
// token yields ErrSessionNotFound, never a panic or partial state.
func (s *AuthServiceImpl) GetSession(ctx context.Context, token string) (*domain.SessionUser, error) {
	return s.sessions.Get(ctx, token)
}

// Logout implements domain.AuthService. Idempotent: logging out an
// already-absent token succeeds.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// RequestPasswordReset implements domain.AuthService. Overwrites any prior
// code for the email. A delivery failure surfaces to the caller but the
// stored code is kept, so a retry goes through the request step again.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	record := &domain.OTPRecord{
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpCfg.TTL),
	}
	if err := s.otps.Put(ctx, email, record); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("failed to deliver otp: %w", err)
	}
	return nil
}

// VerifyOTP implements domain.AuthService. An expired record is purged on
// detection; a wrong code keeps the record so the user can retry until
// expiry.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) error {
	record, err := s.otps.Get(ctx, email)
	if err != nil {
		return err
	}

	if record.Expired(time.Now()) {
		if err := s.otps.Delete(ctx, email); err != nil {
			return fmt.Errorf("failed to purge expired otp: %w", err)
		}
		return domain.ErrOTPExpired
	}

	if record.Code != code {
		return domain.ErrOTPInvalid
	}
	return nil
}

// ResetPassword implements domain.AuthService. Re-verifies the code with
// the same rules as VerifyOTP, then persists the new hash and consumes
// the record. Any verification failure leaves the password untouched.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.VerifyOTP(ctx, email, code); err != nil {
		return err
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.otps.Delete(ctx, email); err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}
	return nil
}

// openSession mints a token and binds the user's public identity to it.
func (s *AuthServiceImpl) openSession(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	token, err := s.tokens.Mint()
	if err != nil {
		return nil, fmt.Errorf("failed to mint session token: %w", err)
	}

	view := user.SessionView()
	if err := s.sessions.Put(ctx, token, view); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &domain.AuthResult{User: view, Token: token}, nil
}

// generateCode produces a uniformly random numeric code.
func (s *AuthServiceImpl) generateCode() (string, error) {
	digits := make([]byte, s.otpCfg.Length)
	for i := range digits {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
