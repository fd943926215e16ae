// Package validator provides rule-based input validation.
//
// Rules are plain values pairing a check with the error reported when the
// check fails, so callers can compose exactly the checks a flow needs:
//
//	if err := validator.Apply(
//	    validator.ValidEmail("email", email),
//	    validator.StrongPassword("password", password, validator.DefaultPasswordStrength()),
//	); err != nil {
//	    return err
//	}
//
// Apply returns ValidationErrors, which collects every failed rule rather
// than stopping at the first one.
package validator
