package authn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wishbay/wishbay/pkg/email"
	"github.com/wishbay/wishbay/pkg/jwt"
	"github.com/wishbay/wishbay/pkg/logger"
	"github.com/wishbay/wishbay/pkg/otp"
	"github.com/wishbay/wishbay/pkg/sanitizer"
	"github.com/wishbay/wishbay/pkg/validator"
)

const (
	defaultResetTokenTTL = time.Hour
	googleSessionTTL     = 24 * time.Hour
	defaultResetBaseURL  = "http://localhost:3000"
)

// Service orchestrates registration, verification, login, and password
// lifecycle across both principal kinds.
type Service struct {
	store       PrincipalStore
	codes       otp.Cache
	mailer      email.EmailSender
	sessions    *jwt.Service
	resetSecret string

	log           *slog.Logger
	bcryptCost    int
	resetTTL      time.Duration
	resetBaseURL  string
	passwordRules validator.PasswordStrengthConfig
	now           func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger; a discard logger is the default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithBcryptCost overrides the hashing cost. Values outside the bcrypt range
// are ignored.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithResetTokenTTL bounds password reset links; default is one hour.
func WithResetTokenTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.resetTTL = ttl
		}
	}
}

// WithResetBaseURL sets the frontend origin reset links point at.
func WithResetBaseURL(base string) Option {
	return func(s *Service) {
		if base != "" {
			s.resetBaseURL = base
		}
	}
}

// WithPasswordStrength overrides the password policy.
func WithPasswordStrength(cfg validator.PasswordStrengthConfig) Option {
	return func(s *Service) { s.passwordRules = cfg }
}

// WithClock replaces the time source, used by expiry tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the orchestrator. The reset secret keys password reset
// tokens and must differ from the session signing key.
func NewService(store PrincipalStore, codes otp.Cache, mailer email.EmailSender, sessions *jwt.Service, resetSecret string, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("authn: store is required")
	}
	if codes == nil {
		return nil, errors.New("authn: otp cache is required")
	}
	if mailer == nil {
		return nil, errors.New("authn: mailer is required")
	}
	if sessions == nil {
		return nil, errors.New("authn: session token service is required")
	}
	if resetSecret == "" {
		return nil, errors.New("authn: reset secret is required")
	}

	s := &Service{
		store:         store,
		codes:         codes,
		mailer:        mailer,
		sessions:      sessions,
		resetSecret:   resetSecret,
		log:           logger.NewDiscard(),
		bcryptCost:    bcrypt.DefaultCost,
		resetTTL:      defaultResetTokenTTL,
		resetBaseURL:  defaultResetBaseURL,
		passwordRules: validator.DefaultPasswordStrength(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RegisterUserParams is the signup payload for the buyer side.
type RegisterUserParams struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Username    string
	PhoneNumber string
	Birthday    *time.Time
}

// RegisterVendorParams is the signup payload for the seller side.
type RegisterVendorParams struct {
	Email       string
	Password    string
	BrandName   string
	Description string
	PhoneNumber string
}

// RegisterUser creates an unverified user, issues a verification code, and
// sends the verification letter. The created user and code are returned even
// when the send fails; in that case the error joins ErrDeliveryFailed and the
// caller can recover through ResendCode.
func (s *Service) RegisterUser(ctx context.Context, params RegisterUserParams) (*User, string, error) {
	addr := sanitizer.NormalizeEmail(params.Email)
	if err := validator.Apply(
		validator.Required("email", addr),
		validator.ValidEmail("email", addr),
		validator.Required("password", params.Password),
		validator.StrongPassword("password", params.Password, s.passwordRules),
	); err != nil {
		return nil, "", err
	}

	hash, err := s.hashPassword(params.Password)
	if err != nil {
		return nil, "", err
	}

	user := &User{
		Credentials: Credentials{
			ID:           uuid.New(),
			Email:        addr,
			PasswordHash: hash,
		},
		FirstName:    sanitizer.NormalizeName(params.FirstName),
		LastName:     sanitizer.NormalizeName(params.LastName),
		Username:     sanitizer.Trim(params.Username),
		PhoneNumber:  sanitizer.Trim(params.PhoneNumber),
		Birthday:     params.Birthday,
		ProfileImage: DefaultProfileImage,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	code, err := s.issueAndSendCode(ctx, user)
	if err != nil {
		return user, code, err
	}
	return user, code, nil
}

// RegisterVendor is the seller-side counterpart of RegisterUser.
func (s *Service) RegisterVendor(ctx context.Context, params RegisterVendorParams) (*Vendor, string, error) {
	addr := sanitizer.NormalizeEmail(params.Email)
	if err := validator.Apply(
		validator.Required("email", addr),
		validator.ValidEmail("email", addr),
		validator.Required("password", params.Password),
		validator.StrongPassword("password", params.Password, s.passwordRules),
	); err != nil {
		return nil, "", err
	}

	hash, err := s.hashPassword(params.Password)
	if err != nil {
		return nil, "", err
	}

	vendor := &Vendor{
		Credentials: Credentials{
			ID:           uuid.New(),
			Email:        addr,
			PasswordHash: hash,
		},
		BrandName:   sanitizer.Trim(params.BrandName),
		Description: sanitizer.Trim(params.Description),
		LogoImage:   DefaultProfileImage,
		PhoneNumber: sanitizer.Trim(params.PhoneNumber),
	}
	if err := s.store.CreateVendor(ctx, vendor); err != nil {
		return nil, "", err
	}

	code, err := s.issueAndSendCode(ctx, vendor)
	if err != nil {
		return vendor, code, err
	}
	return vendor, code, nil
}

// VerifyEmail redeems a verification code for whichever principal owns the
// email. The code is consumed only on success, so a typo does not burn it.
func (s *Service) VerifyEmail(ctx context.Context, emailAddr, code string) (Principal, error) {
	addr := sanitizer.NormalizeEmail(emailAddr)

	principal, err := s.store.FindAnyByEmail(ctx, addr)
	if err != nil {
		return nil, err
	}
	if principal.IsEmailVerified() {
		return nil, ErrAlreadyVerified
	}

	ok, err := s.codes.Verify(ctx, addr, code)
	if err != nil {
		return nil, fmt.Errorf("authn: verify code: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCode
	}

	if err := s.store.MarkEmailVerified(ctx, principal.PrincipalKind(), principal.PrincipalID()); err != nil {
		return nil, err
	}
	principal.creds().EmailVerified = true

	s.log.InfoContext(ctx, "email verified",
		logger.Component("authn"),
		logger.PrincipalID(principal.PrincipalID()),
		logger.Email(addr))

	s.sendBestEffort(ctx, addr, email.AccountVerifiedLetter())
	return principal, nil
}

// ResendCode issues a fresh verification code, replacing any earlier one, and
// sends it again.
func (s *Service) ResendCode(ctx context.Context, emailAddr string) (string, error) {
	addr := sanitizer.NormalizeEmail(emailAddr)

	principal, err := s.store.FindAnyByEmail(ctx, addr)
	if err != nil {
		return "", err
	}
	return s.issueAndSendCode(ctx, principal)
}

func (s *Service) issueAndSendCode(ctx context.Context, p Principal) (string, error) {
	code, err := s.codes.Issue(ctx, p.PrincipalEmail())
	if err != nil {
		return "", fmt.Errorf("authn: issue verification code: %w", err)
	}

	letter := email.VerificationCodeLetter(code)
	if err := s.mailer.SendEmail(ctx, letter.Params(p.PrincipalEmail())); err != nil {
		return code, errors.Join(ErrDeliveryFailed, err)
	}
	return code, nil
}

func (s *Service) sendBestEffort(ctx context.Context, to string, letter email.Letter) {
	if err := s.mailer.SendEmail(ctx, letter.Params(to)); err != nil {
		s.log.WarnContext(ctx, "confirmation email not sent",
			logger.Component("authn"),
			logger.Email(to),
			slog.String("tag", letter.Tag),
			logger.Error(err))
	}
}

func (s *Service) hashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("authn: hash password: %w", err)
	}
	return hash, nil
}
