package email

import "fmt"

// Letter is a subject/body pair for one credential lifecycle notification.
type Letter struct {
	Subject  string
	BodyHTML string
	Tag      string
}

// Params binds a letter to a recipient.
func (l Letter) Params(to string) SendEmailParams {
	return SendEmailParams{
		SendTo:   to,
		Subject:  l.Subject,
		BodyHTML: l.BodyHTML,
		Tag:      l.Tag,
	}
}

// VerificationCodeLetter carries the one-time code issued at registration
// and on every resend.
func VerificationCodeLetter(code string) Letter {
	return Letter{
		Subject:  "Verify your email address",
		BodyHTML: fmt.Sprintf(`<p>Your verification code is <strong>%s</strong>. It expires in 10 minutes.</p>`, code),
		Tag:      "email-verification",
	}
}

// AccountVerifiedLetter confirms a completed verification.
func AccountVerifiedLetter() Letter {
	return Letter{
		Subject:  "Your account has been verified",
		BodyHTML: `<p>Your account has been verified. Please log in.</p>`,
		Tag:      "account-verified",
	}
}

// ResetPasswordLetter carries the time-boxed reset link.
func ResetPasswordLetter(link string) Letter {
	return Letter{
		Subject:  "Reset Your Password",
		BodyHTML: fmt.Sprintf(`<p>Click <a href="%s">here</a> to reset your password. The link expires in 1 hour.</p>`, link),
		Tag:      "password-reset",
	}
}

// PasswordResetDoneLetter confirms a completed reset.
func PasswordResetDoneLetter() Letter {
	return Letter{
		Subject:  "Your password has been reset",
		BodyHTML: `<p>Your password has been reset. Please log in.</p>`,
		Tag:      "password-reset-done",
	}
}

// PasswordChangedLetter confirms an authenticated password change.
func PasswordChangedLetter() Letter {
	return Letter{
		Subject:  "Your password has been changed",
		BodyHTML: `<p>Your password has been changed. If this was not you, contact support immediately.</p>`,
		Tag:      "password-changed",
	}
}
