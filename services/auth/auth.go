package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"
	"findmylocal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrOTPExpired         = errors.New("OTP not found or expired")
	ErrOTPMismatch        = errors.New("OTP does not match")
	ErrTooManyAttempts    = errors.New("too many failed attempts")
	ErrOTPDelivery        = errors.New("failed to send OTP")
	ErrInvalidTransition  = errors.New("invalid OTP flow transition")
	ErrInvalidCredentials = errors.New("invalid admin credentials")
)

const (
	otpLength        = 6
	maxOTPAttempts   = 5
	defaultOTPTTL    = 5 * time.Minute
	defaultTokenTTL  = 7 * 24 * time.Hour
	directoryClient  = "_users"
	defaultAdminMail = "admin@findmylocal.com"
)

// SessionStore persists the signed-in identity of a client.
type SessionStore interface {
	SetSession(ctx context.Context, clientID string, session models.UserSession) error
}

type AuthService interface {
	SendOTP(ctx context.Context, req models.SendOTPRequest) error
	VerifyOTP(ctx context.Context, clientID string, req models.VerifyOTPRequest) (*models.VerifyOTPResponse, error)
	AdminLogin(ctx context.Context, clientID string, req models.AdminLoginRequest) (*models.SessionResponse, error)
}

// DefaultAuthService runs the email OTP flow and the admin password login.
type DefaultAuthService struct {
	Cache             OTPCache
	Mailer            Mailer
	Directory         storageRepo.Store
	Sessions          SessionStore
	Logger            *zap.Logger
	OTPTTL            time.Duration
	TokenTTL          time.Duration
	SendTimeout       time.Duration
	AdminEmail        string
	AdminPasswordHash []byte
	Now               func() time.Time
	GenerateCode      func() (string, error)
}

func NewAuthService(cache OTPCache, mailer Mailer, directory storageRepo.Store, sessions SessionStore, logger *zap.Logger) *DefaultAuthService {
	return &DefaultAuthService{
		Cache:        cache,
		Mailer:       mailer,
		Directory:    directory,
		Sessions:     sessions,
		Logger:       logger,
		OTPTTL:       defaultOTPTTL,
		TokenTTL:     defaultTokenTTL,
		SendTimeout:  10 * time.Second,
		AdminEmail:   defaultAdminMail,
		Now:          time.Now,
		GenerateCode: generateNumericOTP,
	}
}

// generateNumericOTP returns a uniformly random 6-digit code.
func generateNumericOTP() (string, error) {
	max := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random OTP: %w", err)
	}
	return fmt.Sprintf("%0*d", otpLength, n.Int64()), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SendOTP issues a fresh code for the email, replacing any earlier one.
func (s *DefaultAuthService) SendOTP(ctx context.Context, req models.SendOTPRequest) error {
	email := normalizeEmail(req.Email)

	entry, err := s.Cache.Load(ctx, email)
	if err != nil {
		return err
	}
	if entry == nil {
		entry = &OTPEntry{State: StateIdle}
	}
	if err := entry.transition(StateSending); err != nil {
		return err
	}

	code, err := s.GenerateCode()
	if err != nil {
		return err
	}
	entry.Code = code
	entry.Name = req.Name
	entry.Attempts = 0
	entry.ExpiresAt = s.Now().Add(s.OTPTTL)

	sendCtx, cancel := context.WithTimeout(ctx, s.SendTimeout)
	defer cancel()
	if err := s.Mailer.SendOTP(sendCtx, email, req.Name, code); err != nil {
		s.Logger.Error("Failed to deliver OTP", zap.String("email", email), zap.Error(err))
		_ = entry.transition(StateFailed)
		entry.Code = ""
		if saveErr := s.Cache.Save(ctx, email, *entry, s.OTPTTL); saveErr != nil {
			s.Logger.Warn("Failed to record OTP failure", zap.Error(saveErr))
		}
		return fmt.Errorf("%w: %v", ErrOTPDelivery, err)
	}

	if err := entry.transition(StateAwaitingVerification); err != nil {
		return err
	}
	if err := s.Cache.Save(ctx, email, *entry, s.OTPTTL); err != nil {
		return err
	}
	s.Logger.Info("OTP sent", zap.String("email", email), zap.Duration("ttl", s.OTPTTL))
	return nil
}

// VerifyOTP checks the entered code. On success the email is registered when
// unseen, the client's session is stored and a token issued.
func (s *DefaultAuthService) VerifyOTP(ctx context.Context, clientID string, req models.VerifyOTPRequest) (*models.VerifyOTPResponse, error) {
	email := normalizeEmail(req.Email)

	entry, err := s.Cache.Load(ctx, email)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	if entry == nil || entry.State != StateAwaitingVerification || !now.Before(entry.ExpiresAt) {
		return nil, ErrOTPExpired
	}

	if subtle.ConstantTimeCompare([]byte(entry.Code), []byte(req.EnteredOTP)) != 1 {
		entry.Attempts++
		if entry.Attempts >= maxOTPAttempts {
			_ = entry.transition(StateFailed)
			entry.Code = ""
		}
		if err := s.Cache.Save(ctx, email, *entry, entry.ExpiresAt.Sub(now)); err != nil {
			return nil, err
		}
		if entry.State == StateFailed {
			return nil, ErrTooManyAttempts
		}
		return nil, ErrOTPMismatch
	}

	if err := entry.transition(StateVerified); err != nil {
		return nil, err
	}
	if err := s.Cache.Delete(ctx, email); err != nil {
		s.Logger.Error("Failed to delete OTP after verification", zap.Error(err))
	}

	record, isNew, err := s.lookupOrRegister(ctx, email, entry.Name, req.Role)
	if err != nil {
		return nil, err
	}
	token, err := s.startSession(ctx, clientID, models.UserSession{Email: email, Role: record.Role})
	if err != nil {
		return nil, err
	}
	return &models.VerifyOTPResponse{Role: record.Role, IsNewUser: isNew, Token: token}, nil
}

func (s *DefaultAuthService) lookupOrRegister(ctx context.Context, email, name, role string) (*models.UserRecord, bool, error) {
	var record models.UserRecord
	found, err := storageRepo.GetJSON(ctx, s.Directory, directoryClient, email, &record)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}
	if found {
		return &record, false, nil
	}

	if role != models.RoleProvider {
		role = models.RoleUser
	}
	record = models.UserRecord{Email: email, Name: name, Role: role}
	if err := storageRepo.SetJSON(ctx, s.Directory, directoryClient, email, record); err != nil {
		return nil, false, fmt.Errorf("failed to register user: %w", err)
	}
	s.Logger.Info("User registered", zap.String("email", email), zap.String("role", role))
	return &record, true, nil
}

// AdminLogin checks the configured admin email and bcrypt password hash.
func (s *DefaultAuthService) AdminLogin(ctx context.Context, clientID string, req models.AdminLoginRequest) (*models.SessionResponse, error) {
	email := normalizeEmail(req.Email)
	if s.AdminEmail != "" && email != normalizeEmail(s.AdminEmail) {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.AdminPasswordHash, []byte(req.Password)); err != nil {
		s.Logger.Warn("Admin login rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	session := models.UserSession{Email: email, Role: models.RoleAdmin}
	token, err := s.startSession(ctx, clientID, session)
	if err != nil {
		return nil, err
	}
	return &models.SessionResponse{UserSession: session, Token: token}, nil
}

func (s *DefaultAuthService) startSession(ctx context.Context, clientID string, session models.UserSession) (string, error) {
	if err := s.Sessions.SetSession(ctx, clientID, session); err != nil {
		return "", err
	}
	token, err := utils.GenerateToken(session.Email, session.Email, session.Role, s.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
