package authn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wishbay/wishbay/pkg/email"
	"github.com/wishbay/wishbay/pkg/sanitizer"
	"github.com/wishbay/wishbay/pkg/token"
	"github.com/wishbay/wishbay/pkg/validator"
)

// PasswordResetRequest is the outcome of a forgot-password call: a signed
// time-boxed token and the link it was delivered under.
type PasswordResetRequest struct {
	Email     string
	Token     string
	Link      string
	ExpiresAt time.Time
}

// ForgotPassword starts a reset for a user account. The reset letter is sent
// to the account email; a send failure joins ErrDeliveryFailed but the
// request is still returned.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) (*PasswordResetRequest, error) {
	return s.forgotPassword(ctx, KindUser, emailAddr)
}

// ForgotPasswordVendor starts a reset for a vendor account.
func (s *Service) ForgotPasswordVendor(ctx context.Context, emailAddr string) (*PasswordResetRequest, error) {
	return s.forgotPassword(ctx, KindVendor, emailAddr)
}

func (s *Service) forgotPassword(ctx context.Context, kind Kind, emailAddr string) (*PasswordResetRequest, error) {
	addr := sanitizer.NormalizeEmail(emailAddr)

	principal, err := s.store.FindByEmail(ctx, kind, addr)
	if err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(s.resetTTL)
	tok, err := token.Generate(ResetTokenPayload{
		ID:       principal.PrincipalID(),
		Kind:     kind,
		Purpose:  subjectPasswordReset,
		ExpireAt: expiresAt,
	}, s.resetSecret)
	if err != nil {
		return nil, fmt.Errorf("authn: sign reset token: %w", err)
	}

	req := &PasswordResetRequest{
		Email:     addr,
		Token:     tok,
		Link:      s.resetLink(kind, tok),
		ExpiresAt: expiresAt,
	}

	letter := email.ResetPasswordLetter(req.Link)
	if err := s.mailer.SendEmail(ctx, letter.Params(addr)); err != nil {
		return req, errors.Join(ErrDeliveryFailed, err)
	}
	return req, nil
}

func (s *Service) resetLink(kind Kind, tok string) string {
	path := "reset-password"
	if kind == KindVendor {
		path = "reset-password-vendor"
	}
	return fmt.Sprintf("%s/%s/%s", s.resetBaseURL, path, tok)
}

// ResetPassword redeems a user reset token. Every token defect, whether
// malformed, forged, expired, or minted for the other kind, reads as
// ErrInvalidResetToken.
func (s *Service) ResetPassword(ctx context.Context, tok, newPassword string) error {
	return s.resetPassword(ctx, KindUser, tok, newPassword)
}

// ResetPasswordVendor redeems a vendor reset token.
func (s *Service) ResetPasswordVendor(ctx context.Context, tok, newPassword string) error {
	return s.resetPassword(ctx, KindVendor, tok, newPassword)
}

func (s *Service) resetPassword(ctx context.Context, kind Kind, tok, newPassword string) error {
	payload, err := token.Parse[ResetTokenPayload](tok, s.resetSecret)
	if err != nil {
		return ErrInvalidResetToken
	}
	if payload.Purpose != subjectPasswordReset || payload.Kind != kind {
		return ErrInvalidResetToken
	}
	if s.now().After(payload.ExpireAt) {
		return ErrInvalidResetToken
	}

	principal, err := s.store.FindByID(ctx, kind, payload.ID)
	if err != nil {
		return err
	}

	if err := validator.Apply(
		validator.Required("password", newPassword),
		validator.StrongPassword("password", newPassword, s.passwordRules),
	); err != nil {
		return err
	}

	hash, err := s.hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.UpdatePasswordHash(ctx, kind, payload.ID, hash); err != nil {
		return err
	}

	s.sendBestEffort(ctx, principal.PrincipalEmail(), email.PasswordResetDoneLetter())
	return nil
}

// ChangePassword rotates a user password after proving the current one.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error {
	return s.changePassword(ctx, KindUser, userID, current, newPassword)
}

// ChangePasswordVendor rotates a vendor password.
func (s *Service) ChangePasswordVendor(ctx context.Context, vendorID uuid.UUID, current, newPassword string) error {
	return s.changePassword(ctx, KindVendor, vendorID, current, newPassword)
}

func (s *Service) changePassword(ctx context.Context, kind Kind, id uuid.UUID, current, newPassword string) error {
	principal, err := s.store.FindByID(ctx, kind, id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword(principal.creds().PasswordHash, []byte(current)) != nil {
		return ErrInvalidCurrentPassword
	}

	if err := validator.Apply(
		validator.Required("password", newPassword),
		validator.StrongPassword("password", newPassword, s.passwordRules),
	); err != nil {
		return err
	}

	hash, err := s.hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.UpdatePasswordHash(ctx, kind, id, hash); err != nil {
		return err
	}

	s.sendBestEffort(ctx, principal.PrincipalEmail(), email.PasswordChangedLetter())
	return nil
}
