package logger

import "log/slog"

// Error records a single error under the key "error". Nil errors produce an
// empty attr that slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// PrincipalID records the acting principal's identifier.
func PrincipalID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("principal_id", id)
}

// Email records an email address. Call sites are expected to pass already
// normalized addresses.
func Email(email string) slog.Attr {
	return slog.String("email", email)
}
